// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gallery/internal/delivery/http/middleware"
	"gallery/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler           *handler.AccountHandler
	AuthMiddleware           *middleware.AuthMiddleware
	RequestContextMiddleware *middleware.RequestContextMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler           *handler.AccountHandler
	authMiddleware           *middleware.AuthMiddleware
	requestContextMiddleware *middleware.RequestContextMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:           params.AccountHandler,
		authMiddleware:           params.AuthMiddleware,
		requestContextMiddleware: params.RequestContextMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestContextMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/api/users")
	{
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/login", r.accountHandler.Login)

		// Public lookup by id. Echo prefers the static "profile" route
		// over the ":id" parameter, so the two do not collide.
		userGroup.GET("/:id", r.accountHandler.GetUserByID)
	}

	// Routes that require authentication
	profileGroup := e.Group("/api/users")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("/profile", r.accountHandler.GetProfile)
		profileGroup.PUT("/", r.accountHandler.UpdateProfile)
	}
}
