package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/enterprise-brain-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-brain-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	NavigationUC *usecase.NavigationUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token y rol de consola)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RoleViewer))

	nav := protected.Group("/navigation")
	navHandler := NewNavigationHandler(deps.NavigationUC)
	nav.Get("/categories", navHandler.Categories)
	nav.Get("/:category/entries", navHandler.Entries)
	nav.Get("/:category/resolve", navHandler.Resolve)
	nav.Post("/:category/resolve", navHandler.ResolveBatch)
}
