// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"contacthub/config"
	"contacthub/internal/delivery/api/middleware"
	"contacthub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContactHandler *handler.ContactHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contactHandler: params.ContactHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes are rate limited per client IP to slow down credential
	// stuffing and token guessing.
	authGroup := api.Group("/auth")
	authGroup.Use(echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(r.config.HTTP.AuthRateLimit)),
	))
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh_token", r.authHandler.RefreshToken)
		authGroup.POST("/request_email", r.authHandler.RequestEmail)
		authGroup.GET("/confirmed_email/:token", r.authHandler.ConfirmedEmail)
	}

	// User routes that require authentication
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.PUT("/avatar", r.userHandler.UpdateAvatar)
	}

	// Contact-book routes that require authentication
	contactGroup := api.Group("/contacts")
	contactGroup.Use(r.authMiddleware.Authenticate)
	{
		contactGroup.POST("", r.contactHandler.CreateContact)
		contactGroup.GET("", r.contactHandler.ListContacts)
		contactGroup.GET("/search", r.contactHandler.SearchContacts)
		contactGroup.GET("/birthdays", r.contactHandler.UpcomingBirthdays)
		contactGroup.GET("/:id", r.contactHandler.GetContact)
		contactGroup.PUT("/:id", r.contactHandler.UpdateContact)
		contactGroup.DELETE("/:id", r.contactHandler.DeleteContact)
	}
}
