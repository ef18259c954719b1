// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"starfund/internal/delivery/http/middleware"
	"starfund/internal/delivery/http/router/handler"
	"starfund/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProjectHandler     *handler.ProjectHandler
	InvestmentHandler  *handler.InvestmentHandler
	UserHandler        *handler.UserHandler
	TransactionHandler *handler.TransactionHandler
	StatisticsHandler  *handler.StatisticsHandler
	PaymentHandler     *handler.PaymentHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.GET("/me", p.AuthHandler.Me, authed)
	}

	projectGroup := e.Group("/projects")
	{
		projectGroup.GET("/approved", p.ProjectHandler.ListApproved)
		projectGroup.GET("/search", p.ProjectHandler.Search)
		projectGroup.GET("/pending", p.ProjectHandler.ListPending,
			authed, p.AuthMiddleware.RequireRole(entity.RoleCVA))
		projectGroup.GET("/founder/:id", p.ProjectHandler.ListByFounder, authed)
		projectGroup.GET("/:id", p.ProjectHandler.Get)
		projectGroup.POST("", p.ProjectHandler.Create,
			authed, p.AuthMiddleware.RequireRole(entity.RoleStartup))
		projectGroup.PUT("/:id", p.ProjectHandler.Update,
			authed, p.AuthMiddleware.RequireRole(entity.RoleStartup, entity.RoleAdmin))
		projectGroup.POST("/:id/approve", p.ProjectHandler.Approve,
			authed, p.AuthMiddleware.RequireRole(entity.RoleCVA))
		projectGroup.POST("/:id/reject", p.ProjectHandler.Reject,
			authed, p.AuthMiddleware.RequireRole(entity.RoleCVA))
		projectGroup.DELETE("/:id", p.ProjectHandler.Delete,
			authed, p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	}

	investmentGroup := e.Group("/investments", authed)
	{
		investmentGroup.POST("", p.InvestmentHandler.Create,
			p.AuthMiddleware.RequireRole(entity.RoleInvestor))
		investmentGroup.GET("/investor/:id", p.InvestmentHandler.ListByInvestor)
		investmentGroup.GET("/project/:id", p.InvestmentHandler.ListByProject)
		investmentGroup.GET("/:id", p.InvestmentHandler.Get)
	}

	transactionGroup := e.Group("/transactions", authed)
	{
		transactionGroup.GET("", p.TransactionHandler.List,
			p.AuthMiddleware.RequireRole(entity.RoleAdmin))
		transactionGroup.GET("/user/:id", p.TransactionHandler.ListByUser)
		transactionGroup.GET("/:id", p.TransactionHandler.Get)
	}

	userGroup := e.Group("/users", authed, p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", p.UserHandler.List)
		userGroup.GET("/:id", p.UserHandler.Get)
		userGroup.PUT("/:id/status", p.UserHandler.UpdateStatus)
		userGroup.DELETE("/:id", p.UserHandler.Delete)
	}

	statisticsGroup := e.Group("/statistics", authed)
	{
		statisticsGroup.GET("/overall", p.StatisticsHandler.Overall)
		statisticsGroup.GET("/investor/:id", p.StatisticsHandler.Investor)
		statisticsGroup.GET("/startup/:id", p.StatisticsHandler.Startup)
	}

	paymentGroup := e.Group("/payment/vnpay", authed)
	{
		paymentGroup.POST("/create", p.PaymentHandler.Create)
		paymentGroup.GET("/callback", p.PaymentHandler.Callback)
	}
}
