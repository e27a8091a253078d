package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursedesk/internal/app/controllers"
	"github.com/yigit/coursedesk/internal/app/models/dto"
	"github.com/yigit/coursedesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
	requireAuth bool,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(dto.HealthResponse{Status: "ok"}))
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Public user routes: registration and credential lookup issue the token
	users := router.Group("/users")
	{
		users.GET("", userController.FindUser)
		users.POST("", userController.RegisterUser)
	}

	courses := router.Group("/courses")
	if requireAuth {
		courses.Use(authMiddleware.RequireAuth())
	} else {
		courses.Use(authMiddleware.OptionalAuth())
	}
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.ListCourses)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}
}
