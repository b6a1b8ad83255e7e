package quoting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/pricing"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
	"github.com/jhoicas/cotizador-api/pkg/validator"
)

// birthDateLayout formato ISO de fecha de nacimiento en el request.
const birthDateLayout = "2006-01-02"

// CreateQuoteUseCase orquesta la generación de una cotización: valida el
// input, persiste employer y empleados, invoca el motor de tarifación y
// persiste la cotización con sus líneas — todo dentro de un solo unit of work.
type CreateQuoteUseCase struct {
	txRunner     QuoteTxRunner
	engine       pricing.Engine
	employerRepo repository.EmployerRepository
	quoteRepo    repository.QuoteRepository
	validate     *validator.Validator
}

// NewCreateQuoteUseCase construye el caso de uso. employerRepo y quoteRepo
// son los adaptadores atados al pool (rutas de lectura fuera de transacción).
func NewCreateQuoteUseCase(
	txRunner QuoteTxRunner,
	engine pricing.Engine,
	employerRepo repository.EmployerRepository,
	quoteRepo repository.QuoteRepository,
	validate *validator.Validator,
) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{
		txRunner:     txRunner,
		engine:       engine,
		employerRepo: employerRepo,
		quoteRepo:    quoteRepo,
		validate:     validate,
	}
}

// CreateQuote ejecuta el pipeline completo sobre una solicitud.
// requestedBy es la identidad opaca del caller (viene del middleware de auth);
// el orquestador no depende de internals de autenticación.
//
// Orden dentro de la transacción: Employer → Employees (en orden del input,
// reteniendo el mapeo posicional índice→ID) → tarifación → Quote → QuoteLines.
// Una falla de tarifación revierte también los empleados ya escritos: después
// de un error no existe ninguna fila de la solicitud.
func (uc *CreateQuoteUseCase) CreateQuote(ctx context.Context, requestedBy string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	birthDates := make([]time.Time, len(in.Employees))
	for i, emp := range in.Employees {
		bd, err := time.Parse(birthDateLayout, emp.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: empleado %d: birth_date inválida", domain.ErrInvalidInput, i)
		}
		birthDates[i] = bd
	}

	now := time.Now().UTC()
	var resp *dto.QuoteResponse

	err := uc.txRunner.RunQuoting(ctx, func(
		employerRepo repository.EmployerRepository,
		employeeRepo repository.EmployeeRepository,
		quoteRepo repository.QuoteRepository,
	) error {
		employer := &entity.Employer{
			ID:           uuid.New().String(),
			Name:         in.Name,
			Province:     in.Province,
			IndustryCode: in.IndustryCode,
			CreatedAt:    now,
		}
		if err := employerRepo.Create(ctx, employer); err != nil {
			return fmt.Errorf("persistir employer: %w", err)
		}

		// Empleados en el orden del input; employeeIDs[i] corresponde a
		// in.Employees[i] para el emparejamiento posicional con las líneas.
		employeeIDs := make([]string, len(in.Employees))
		for i, emp := range in.Employees {
			e := &entity.Employee{
				ID:           uuid.New().String(),
				EmployerID:   employer.ID,
				FirstName:    emp.FirstName,
				LastName:     emp.LastName,
				BirthDate:    birthDates[i],
				CoverageTier: emp.CoverageTier,
				AnnualSalary: emp.AnnualSalary,
				CreatedAt:    now,
			}
			if err := employeeRepo.Create(ctx, e); err != nil {
				return fmt.Errorf("persistir empleado %d: %w", i, err)
			}
			employeeIDs[i] = e.ID
		}

		// Tarifar con el input original, no con las filas persistidas, para
		// no duplicar la representación de los empleados.
		total, lines, err := uc.engine.Price(employer, in.Employees)
		if err != nil {
			if errors.Is(err, domain.ErrPricing) {
				return err
			}
			return fmt.Errorf("%w: %v", domain.ErrPricing, err)
		}
		if len(lines) != len(employeeIDs) {
			return fmt.Errorf("%w: el motor devolvió %d líneas para %d empleados", domain.ErrLineCountMismatch, len(lines), len(employeeIDs))
		}

		quote := &entity.Quote{
			ID:           uuid.New().String(),
			EmployerID:   employer.ID,
			PremiumTotal: total,
			RequestedBy:  requestedBy,
			CreatedAt:    now,
		}
		if err := quoteRepo.Create(ctx, quote); err != nil {
			return fmt.Errorf("persistir cotización: %w", err)
		}

		items := make([]dto.QuoteLineItemResponse, 0, len(lines))
		for i, li := range lines {
			line := &entity.QuoteLine{
				ID:          uuid.New().String(),
				QuoteID:     quote.ID,
				EmployeeID:  employeeIDs[i],
				BenefitCode: li.BenefitCode,
				Premium:     li.Premium,
			}
			if err := quoteRepo.CreateLine(ctx, line); err != nil {
				return fmt.Errorf("persistir línea %d: %w", i, err)
			}
			items = append(items, dto.QuoteLineItemResponse{
				EmployeeID:  line.EmployeeID,
				BenefitCode: line.BenefitCode,
				Premium:     line.Premium,
			})
		}

		resp = &dto.QuoteResponse{
			QuoteID:      quote.ID,
			EmployerID:   employer.ID,
			PremiumTotal: total,
			LineItems:    items,
			CreatedAt:    now.Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetQuote obtiene una cotización por ID con sus líneas.
func (uc *CreateQuoteUseCase) GetQuote(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.quoteRepo.GetLinesByQuoteID(ctx, id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteLineItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.QuoteLineItemResponse{
			EmployeeID:  l.EmployeeID,
			BenefitCode: l.BenefitCode,
			Premium:     l.Premium,
		})
	}
	return &dto.QuoteResponse{
		QuoteID:      quote.ID,
		EmployerID:   quote.EmployerID,
		PremiumTotal: quote.PremiumTotal,
		LineItems:    items,
		CreatedAt:    quote.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ListByEmployer es la ruta de lectura del gateway para colaboradores:
// todas las cotizaciones de un employer, sin líneas.
func (uc *CreateQuoteUseCase) ListByEmployer(ctx context.Context, employerID string) ([]dto.QuoteSummaryResponse, error) {
	employer, err := uc.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, domain.ErrNotFound
	}
	quotes, err := uc.quoteRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteSummaryResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.QuoteSummaryResponse{
			QuoteID:      q.ID,
			EmployerID:   q.EmployerID,
			PremiumTotal: q.PremiumTotal,
			CreatedAt:    q.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
