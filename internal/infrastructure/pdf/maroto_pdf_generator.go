// Package pdf implementa la generación del documento PDF de una cotización
// de beneficios grupales.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Employer + provincia/industria │ N° Cotización     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Cobertura | Beneficio | Prima            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: Prima mensual total                                 │
//	│  FOOTER: leyenda de validez de la cotización                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/cotizador-api/internal/application/quoting"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa quoting.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ quoting.QuotePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(
	_ context.Context,
	quote *entity.Quote,
	employer *entity.Employer,
	employees []*entity.Employee,
	lines []*entity.QuoteLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización de Beneficios Grupales", true).
		WithAuthor(employer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote, employer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	byID := make(map[string]*entity.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	m.AddRows(tableHeaderRow())
	for _, l := range lines {
		m.AddRows(tableLineRow(l, byID[l.EmployeeID]))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(quote))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: Employer + provincia/industria (izq) y N° de cotización + fecha (der).
func headerRow(quote *entity.Quote, employer *entity.Employer) core.Row {
	fecha := quote.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(employer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Provincia: %s · Industria: %s", employer.Province, employer.IndustryCode), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN DE BENEFICIOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quote.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(7).Add(
		col.New(5).Add(text.New("Empleado", header)),
		col.New(2).Add(text.New("Cobertura", header)),
		col.New(3).Add(text.New("Beneficio", header)),
		col.New(2).Add(text.New("Prima", headerRight)),
	)
}

func tableLineRow(l *entity.QuoteLine, employee *entity.Employee) core.Row {
	name := l.EmployeeID // fallback si el empleado no se pudo cargar
	tier := ""
	if employee != nil {
		name = employee.FirstName + " " + employee.LastName
		tier = employee.CoverageTier
	}
	cell := props.Text{Size: 8, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(6).Add(
		col.New(5).Add(text.New(name, cell)),
		col.New(2).Add(text.New(tier, cell)),
		col.New(3).Add(text.New(l.BenefitCode, cell)),
		col.New(2).Add(text.New(l.Premium.StringFixed(2), cellRight)),
	)
}

func totalRow(quote *entity.Quote) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
		col.New(2).Add(text.New("$"+quote.PremiumTotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
	)
}

func footerRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Cotización válida por 30 días a partir de su emisión. Las primas son mensuales en CAD.", props.Text{
				Size: 7, Color: colorGray, Align: align.Center,
			}),
		),
	)
}
