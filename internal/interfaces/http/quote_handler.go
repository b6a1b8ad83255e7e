package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/quoting"
	"github.com/jhoicas/cotizador-api/internal/domain"
)

// QuoteHandler maneja las peticiones HTTP de cotización (protegido).
type QuoteHandler struct {
	uc    *quoting.CreateQuoteUseCase
	pdfUC *quoting.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *quoting.CreateQuoteUseCase, pdfUC *quoting.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Generar cotización de beneficios
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "employer + empleados"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quote, err := h.uc.CreateQuote(c.Context(), userID, in)
	if err != nil {
		return quoteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// GetByID godoc
// @Summary      Obtener cotización con sus líneas
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "quote id"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	quote, err := h.uc.GetQuote(c.Context(), id)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(quote)
}

// DownloadPDF godoc
// @Summary      Descargar el documento PDF de la cotización
// @Tags         quotes
// @Produce      application/pdf
// @Param        id  path  string  true  "quote id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadQuotePDF(c.Context(), id)
	if err != nil {
		return quoteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ListByEmployer godoc
// @Summary      Listar cotizaciones de un employer
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "employer id"
// @Success      200  {array}  dto.QuoteSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employers/{id}/quotes [get]
func (h *QuoteHandler) ListByEmployer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	quotes, err := h.uc.ListByEmployer(c.Context(), id)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(quotes)
}

// quoteError mapea la taxonomía de errores del pipeline a códigos HTTP:
//
//	ErrInvalidInput      → 400 (corregir input y reenviar)
//	ErrPricing           → 422 (corregir input y reenviar; nada quedó escrito)
//	ErrNotFound          → 404
//	ErrLineCountMismatch → 500 (defecto de contrato entre componentes, nunca reintentable)
//	resto                → 503 (falla de persistencia, reintentable por el caller)
func quoteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrPricing):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PRICING", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización o employer no encontrado"})
	case errors.Is(err, domain.ErrLineCountMismatch):
		log.Error().Err(err).Msg("violación de contrato del motor de tarifación")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: "error interno del motor de tarifación"})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: "falla temporal de almacenamiento, reintente"})
	}
}
