package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/jcamargo/tienda-api/internal/application/auth"
	"github.com/jcamargo/tienda-api/internal/application/usecase"
	infraoauth "github.com/jcamargo/tienda-api/internal/infrastructure/oauth"
	"github.com/jcamargo/tienda-api/internal/infrastructure/postgres"
	"github.com/jcamargo/tienda-api/internal/infrastructure/session"
	httpRouter "github.com/jcamargo/tienda-api/internal/interfaces/http"
	"github.com/jcamargo/tienda-api/pkg/config"
	"github.com/jcamargo/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	sessionStore, err := session.NewRedisStore(cfg.Session.RedisURL, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	authUC := appauth.NewUseCase(userRepo)
	profileUC := usecase.NewProfileUseCase(userRepo)
	categoryUC := usecase.NewCRUDUseCase(categoryRepo)
	productUC := usecase.NewCRUDUseCase(productRepo)

	providers := []*infraoauth.Provider{
		infraoauth.NewGoogle(cfg.OAuth.Google.ClientID, cfg.OAuth.Google.ClientSecret, cfg.OAuth.CallbackURL("google")),
		infraoauth.NewFacebook(cfg.OAuth.Facebook.ClientID, cfg.OAuth.Facebook.ClientSecret, cfg.OAuth.CallbackURL("facebook")),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		AuthUC:          authUC,
		ProfileUC:       profileUC,
		Sessions:        httpRouter.NewSessions(sessionStore, cfg.Session.CookieName, time.Duration(cfg.Session.TTLMinutes)*time.Minute),
		Providers:       providers,
		APIKey:          cfg.API.Key,
		StateSecret:     cfg.OAuth.StateSecret,
		StateExpMinutes: cfg.OAuth.StateExpMinutes,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
