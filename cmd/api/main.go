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

	"github.com/kraya/platform-api/internal/application/auth"
	"github.com/kraya/platform-api/internal/application/statement"
	"github.com/kraya/platform-api/internal/application/usecase"
	infrapdf "github.com/kraya/platform-api/internal/infrastructure/pdf"
	"github.com/kraya/platform-api/internal/infrastructure/postgres"
	httpRouter "github.com/kraya/platform-api/internal/interfaces/http"
	"github.com/kraya/platform-api/pkg/config"
	"github.com/kraya/platform-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	debtRepo := postgres.NewDebtRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	planRepo := postgres.NewPaymentPlanRepository(pool)
	transferRepo := postgres.NewDebtTransferRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	recommendationRepo := postgres.NewRecommendationRepository(pool)
	voteRepo := postgres.NewVoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	userUC := usecase.NewUserUseCase(userRepo, roleRepo, txRunner, cfg.Auth.BcryptCost)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	debtUC := usecase.NewDebtUseCase(debtRepo, userRepo)
	paymentUC := usecase.NewPaymentUseCase(txRunner, paymentRepo, debtRepo)
	planUC := usecase.NewPaymentPlanUseCase(planRepo, debtRepo)
	transferUC := usecase.NewTransferUseCase(txRunner, transferRepo, debtRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo, userRepo)
	feedbackUC := usecase.NewFeedbackUseCase(recommendationRepo, voteRepo, userRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: estado de cuenta de la deuda
	pdfGenerator := infrapdf.NewMarotoStatementGenerator()
	statementUC := statement.NewUseCase(debtRepo, userRepo, paymentRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kraya Platform API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:      userUC,
		RoleUC:      roleUC,
		DebtUC:      debtUC,
		PaymentUC:   paymentUC,
		PlanUC:      planUC,
		TransferUC:  transferUC,
		DocumentUC:  documentUC,
		FeedbackUC:  feedbackUC,
		AuthUC:      authUC,
		StatementUC: statementUC,
		JWTSecret:   cfg.JWT.Secret,
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
