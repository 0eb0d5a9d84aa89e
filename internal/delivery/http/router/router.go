// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"photodeck/internal/delivery/http/middleware"
	"photodeck/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	PictureHandler *handler.PictureHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	pictureHandler *handler.PictureHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		pictureHandler: params.PictureHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/users", r.userHandler.Register)
		api.POST("/auth/login", r.authHandler.Login)
	}

	pictureGroup := api.Group("/pictures")
	{
		pictureGroup.GET("", r.pictureHandler.Search)
		pictureGroup.GET("/:id", r.pictureHandler.Get)

		// Uploading requires a valid bearer token.
		pictureGroup.POST("", r.pictureHandler.Add, r.authMiddleware.Authenticate)
	}
}
