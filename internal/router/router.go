package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
	"restaurant_dashboard/internal/middleware"
	"restaurant_dashboard/internal/services"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	Auth      services.AuthService
	Users     services.UserService
	Dashboard services.DashboardService
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, svc Services) {
	authHandler := handlers.NewAuthHandler(svc.Auth)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	userHandler := handlers.NewUserHandler(svc.Users)

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := engine.Group("/api/v1")

	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware(svc.Auth))
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
		SetupUserRoutes(authenticated, userHandler)
	}
}
