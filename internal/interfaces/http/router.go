package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/commodities-api/internal/application/analytics"
	"github.com/jhoicas/commodities-api/internal/application/auth"
	"github.com/jhoicas/commodities-api/internal/application/usecase"
	"github.com/jhoicas/commodities-api/internal/domain/access"
	"github.com/jhoicas/commodities-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	DashboardUC *appanalytics.DashboardUseCase
	// EnforceAccess aplica sesión + política de acceso a productos y dashboard.
	// En false esas rutas quedan abiertas; /auth/logout y /auth/me siempre exigen sesión.
	EnforceAccess bool
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	session := AuthMiddleware(deps.AuthUC, log)

	// guard devuelve la cadena sesión + permiso para action, o nada si no se aplica la política.
	guard := func(action access.Action) []fiber.Handler {
		if !deps.EnforceAccess {
			return nil
		}
		return []fiber.Handler{session, RequireAction(action)}
	}
	with := func(action access.Action, h fiber.Handler) []fiber.Handler {
		return append(guard(action), h)
	}

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", session, authHandler.Logout)
	authGroup.Get("/me", session, authHandler.Me)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	products.Get("/export", with(access.ViewProducts, dashboardHandler.ExportProducts)...)
	products.Get("/", with(access.ViewProducts, productHandler.List)...)
	products.Get("/:id", with(access.ViewProducts, productHandler.Get)...)
	products.Post("/", with(access.AddOrEditProducts, productHandler.Create)...)
	products.Put("/", with(access.AddOrEditProducts, productHandler.Update)...)
	products.Put("/:id", with(access.AddOrEditProducts, productHandler.Update)...)
	products.Delete("/", with(access.AddOrEditProducts, productHandler.Delete)...)
	products.Delete("/:id", with(access.AddOrEditProducts, productHandler.Delete)...)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", with(access.ViewDashboard, dashboardHandler.GetSummary)...)
	dashboard.Get("/report", with(access.ViewDashboard, dashboardHandler.GetReport)...)
}
