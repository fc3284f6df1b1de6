package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/tienda-api/internal/application/auth"
	"github.com/jcamargo/tienda-api/internal/application/usecase"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	"github.com/jcamargo/tienda-api/internal/infrastructure/oauth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC      *usecase.CRUDUseCase[*entity.Category]
	ProductUC       *usecase.CRUDUseCase[*entity.Product]
	AuthUC          *auth.UseCase
	ProfileUC       *usecase.ProfileUseCase
	Sessions        *Sessions
	Providers       []*oauth.Provider
	APIKey          string
	StateSecret     string
	StateExpMinutes int
}

// Router registra las rutas del API. Toda petición pasa por la carga de
// sesión; los recursos CRUD van además tras los gates de API key y login.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(deps.Sessions.Load())

	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	oauthHandler := NewOAuthHandler(deps.AuthUC, deps.Sessions, deps.Providers, deps.StateSecret, deps.StateExpMinutes)
	profileHandler := NewProfileHandler(deps.ProfileUC, deps.Sessions)

	// Auth local
	app.Post("/auth/signup", authHandler.Signup)
	app.Post("/auth/signin", authHandler.Signin)
	app.Get("/auth/signout", RequiresLogin(), authHandler.Signout)

	// OAuth (signout se registra antes y gana sobre :provider)
	app.Get("/auth/:provider", oauthHandler.Redirect)
	app.Get("/auth/:provider/callback", oauthHandler.Callback)

	// Perfil
	app.Get("/users/me", profileHandler.Me)
	app.Get("/users", profileHandler.Get)
	app.Put("/users", profileHandler.Update)
	app.Delete("/users/accounts", oauthHandler.RemoveProvider)

	// Recursos CRUD: API key + sesión activa, con precarga de :id
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := app.Group("/categories", APIKeyAuth(deps.APIKey), RequiresLogin())
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categoryItem := categories.Group("/:id", categoryHandler.Preload())
	categoryItem.Get("/", categoryHandler.Read)
	categoryItem.Put("/", categoryHandler.Update)
	categoryItem.Delete("/", categoryHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/products", APIKeyAuth(deps.APIKey), RequiresLogin())
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	productItem := products.Group("/:id", productHandler.Preload())
	productItem.Get("/", productHandler.Read)
	productItem.Put("/", productHandler.Update)
	productItem.Delete("/", productHandler.Delete)
}
