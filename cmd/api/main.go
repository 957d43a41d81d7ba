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
	_ "github.com/jhoicas/enterprise-brain-api/docs"
	"github.com/jhoicas/enterprise-brain-api/internal/application/usecase"
	httpRouter "github.com/jhoicas/enterprise-brain-api/internal/interfaces/http"
	"github.com/jhoicas/enterprise-brain-api/pkg/config"
	"github.com/jhoicas/enterprise-brain-api/pkg/logger"
)

// @title                       Enterprise Brain API
// @version                     1.0
// @description                 Resolución nombre → ID de la consola Enterprise Brain.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: las rutas /api/navigation responderán 401")
	}

	navigationUC := usecase.NewNavigationUseCase()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New entra en pánico si el archivo no existe.
	if cfg.Docs.Enabled {
		if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.SwaggerFile,
				Path:     "docs",
				Title:    "Enterprise Brain API",
			}))
		} else {
			log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, UI deshabilitada")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		NavigationUC: navigationUC,
		JWTSecret:    cfg.JWT.Secret,
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
