// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatehouse/config"
	"gatehouse/internal/delivery/http/middleware"
	"gatehouse/internal/delivery/http/router/handler"
	"gatehouse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	JokeHandler    *handler.JokeHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	basePath       string
	userHandler    *handler.UserHandler
	jokeHandler    *handler.JokeHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		basePath:       params.Config.HTTP.BasePath,
		userHandler:    params.UserHandler,
		jokeHandler:    params.JokeHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group(r.basePath)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a valid access token.
	jokesGroup := api.Group("/jokes", r.authMiddleware.Authenticate)
	{
		jokesGroup.GET("", r.jokeHandler.List)
	}
}
