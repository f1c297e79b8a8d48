package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/controllers"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	enrollmentController *controllers.EnrollmentController,
	catalogController *controllers.CatalogController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Health probe, no auth.
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	// Auth surface: one route, dispatched by the action query parameter.
	v1.POST("/auth", authController.HandlePost)
	v1.GET("/auth", authController.HandleGet)

	// Public catalog reads.
	v1.GET("/courses", catalogController.ListCourses)
	v1.GET("/departments", catalogController.ListDepartments)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		// Registration ledger. Controllers enforce that students only touch
		// their own rows.
		authenticated.POST("/registrations", enrollmentController.Register)
		authenticated.DELETE("/registrations", enrollmentController.Drop)
		authenticated.GET("/enrollments", enrollmentController.List)

		// Admin-only routes.
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.GET("/students", catalogController.ListStudents)

			adminProtected.POST("/crud", adminController.Handle)
			adminProtected.PUT("/crud", adminController.Handle)
			adminProtected.DELETE("/crud", adminController.Handle)
		}
	}
}
