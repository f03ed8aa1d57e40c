package router

import (
	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
	"restaurant_dashboard/internal/middleware"
	"restaurant_dashboard/internal/models"
)

// SetupPublicAuthRoutes sets up the routes reachable without a token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.LoginUser)
}

// SetupAuthenticatedAuthRoutes sets up the session routes for any signed-in user.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.LogoutUser)
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	dashboardRoutes.Use(middleware.RequireRole(models.RoleStaff))
	{
		dashboardRoutes.GET("", dashboardHandler.GetDashboard)
		dashboardRoutes.GET("/booking-capacity", dashboardHandler.GetBookingCapacity)
		dashboardRoutes.GET("/cover-tracker", dashboardHandler.GetCoverTracker)
		dashboardRoutes.GET("/financial-overview", dashboardHandler.GetFinancialOverview)
		dashboardRoutes.GET("/staff-scheduling", dashboardHandler.GetStaffScheduling)
		dashboardRoutes.GET("/stock-insight", dashboardHandler.GetStockInsight)
	}
}

// SetupUserRoutes sets up the user management routes.
// Admin only.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, userHandler *handlers.UserHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	userRoutes.Use(middleware.RequireRole(models.RoleAdmin))
	{
		userRoutes.GET("", userHandler.ListUsers)
		userRoutes.POST("", userHandler.AddUser)
		userRoutes.POST("/reset", userHandler.ResetUsers)
		userRoutes.PUT("/:id", userHandler.UpdateUser)
		userRoutes.DELETE("/:id", userHandler.RemoveUser)
	}
}
