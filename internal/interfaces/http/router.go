package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kraya/platform-api/internal/application/auth"
	"github.com/kraya/platform-api/internal/application/statement"
	"github.com/kraya/platform-api/internal/application/usecase"
	"github.com/kraya/platform-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC      *usecase.UserUseCase
	RoleUC      *usecase.RoleUseCase
	DebtUC      *usecase.DebtUseCase
	PaymentUC   *usecase.PaymentUseCase
	PlanUC      *usecase.PaymentPlanUseCase
	TransferUC  *usecase.TransferUseCase
	DocumentUC  *usecase.DocumentUseCase
	FeedbackUC  *usecase.FeedbackUseCase
	AuthUC      *auth.AuthUseCase
	StatementUC *statement.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	userHandler := NewUserHandler(deps.UserUC)
	authHandler := NewAuthHandler(deps.AuthUC)

	// Registro y login (público)
	api.Post("/users/register", userHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido)
	protected.Get("/users", userHandler.List)
	protected.Get("/users/:id", userHandler.GetByID)
	protected.Put("/users/:id", userHandler.Update)
	protected.Delete("/users/:id", userHandler.Delete)

	// Roles (protegido, solo ADMIN)
	roles := protected.Group("/roles", RequireRole(entity.RoleAdmin))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Debts (protegido)
	debtHandler := NewDebtHandler(deps.DebtUC, deps.StatementUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.PlanUC, deps.TransferUC)
	protected.Post("/debts", debtHandler.Create)
	protected.Get("/debts", debtHandler.List)
	protected.Get("/debts/:id", debtHandler.GetByID)
	protected.Patch("/debts/:id/status", debtHandler.UpdateStatus)
	protected.Get("/debts/:id/statement", debtHandler.Statement)

	// Payments / Transfers anidados bajo la deuda
	protected.Post("/debts/:id/payments", paymentHandler.RecordPayment)
	protected.Get("/debts/:id/payments", paymentHandler.ListPayments)
	protected.Post("/debts/:id/transfers", paymentHandler.Transfer)
	protected.Get("/debts/:id/transfers", paymentHandler.ListTransfers)

	// Payment plans
	protected.Post("/payment-plans", paymentHandler.CreatePlan)
	protected.Get("/payment-plans", paymentHandler.ListPlans)

	// Documents / Recommendations / Votes
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.FeedbackUC)
	protected.Post("/documents", documentHandler.CreateDocument)
	protected.Get("/documents", documentHandler.ListDocuments)
	protected.Post("/recommendations", documentHandler.CreateRecommendation)
	protected.Get("/recommendations", documentHandler.ListRecommendations)
	protected.Post("/votes", documentHandler.CreateVote)
	protected.Get("/votes", documentHandler.ListVotes)
}
