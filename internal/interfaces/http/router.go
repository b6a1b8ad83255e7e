package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/auth"
	"github.com/jhoicas/cotizador-api/internal/application/quoting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CreateQuote *quoting.CreateQuoteUseCase
	QuotePDF    *quoting.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quotes (protegido)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.CreateQuote, deps.QuotePDF)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Get("/:id/pdf", quoteHandler.DownloadPDF)

	// Employers (protegido)
	employers := protected.Group("/employers")
	employers.Get("/:id/quotes", quoteHandler.ListByEmployer)
}
