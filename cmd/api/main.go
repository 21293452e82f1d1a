package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/mongodb"
	gqlapi "github.com/jhoicas/Ventas-api/internal/interfaces/graphql"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
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
	db, err := mongodb.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("crear índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: cfg.JWT.Secret})
	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, orderRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, clientRepo, productRepo)
	reportUC := usecase.NewReportUseCase(orderRepo)

	resolver := gqlapi.NewResolver(authUC, productUC, clientUC, orderUC, reportUC, log)
	schema, err := gqlapi.NewSchema(resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}
	handler := gqlapi.NewHandler(schema, cfg.JWT.Secret, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(gqlapi.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Post("/graphql", handler.Serve)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("GraphQL listo en /graphql")

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
