// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	WorkoutHandler     *handler.WorkoutHandler
	MeasurementHandler *handler.MeasurementHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimit          *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	workoutHandler     *handler.WorkoutHandler
	measurementHandler *handler.MeasurementHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimit          *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		userHandler:        params.UserHandler,
		workoutHandler:     params.WorkoutHandler,
		measurementHandler: params.MeasurementHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
		rateLimit:          params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. The public ones are rate limited per client IP.
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimit.Handle)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.PUT("/reset-password/:token", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PUT("/me", r.userHandler.UpdateProfile)
		userGroup.PUT("/me/preferences", r.userHandler.UpdatePreferences)
		userGroup.DELETE("/me", r.userHandler.DeleteAccount)
		userGroup.GET("/stats", r.userHandler.GetStats)
	}

	// Workout routes that require authentication
	workoutGroup := e.Group("/workouts")
	workoutGroup.Use(r.authMiddleware.Authenticate)
	{
		workoutGroup.POST("", r.workoutHandler.Create)
		workoutGroup.GET("", r.workoutHandler.List)
		workoutGroup.GET("/:id", r.workoutHandler.Get)
		workoutGroup.PUT("/:id", r.workoutHandler.Update)
		workoutGroup.DELETE("/:id", r.workoutHandler.Delete)
	}

	// Measurement routes that require authentication
	measurementGroup := e.Group("/measurements")
	measurementGroup.Use(r.authMiddleware.Authenticate)
	{
		measurementGroup.POST("", r.measurementHandler.Create)
		measurementGroup.GET("", r.measurementHandler.List)
		measurementGroup.GET("/:id", r.measurementHandler.Get)
		measurementGroup.PUT("/:id", r.measurementHandler.Update)
		measurementGroup.DELETE("/:id", r.measurementHandler.Delete)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the role
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id/suspend", r.adminHandler.SuspendUser)
		adminGroup.PUT("/users/:id/reinstate", r.adminHandler.ReinstateUser)
	}
}
