package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapi/studenttrack/internal/app/controllers"
	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	recordsController *controllers.RecordsController,
	staffController *controllers.StaffController,
	authMiddleware *middleware.AuthMiddleware,
	pool *pgxpool.Pool,
) {
	router.GET("/health", healthHandler(pool))

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register/student", authController.RegisterStudent)
		auth.POST("/register/staff", authController.RegisterStaff)
		auth.POST("/login", authController.Login)
	}

	// --- Student routes ---
	student := v1.Group("/student")
	student.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/portal", studentController.Portal)
		student.PUT("/profile", studentController.UpdateProfile)
		student.PUT("/academics", studentController.UpdateAcademics)

		student.POST("/skills", recordsController.AddSkill)
		student.DELETE("/skills/:id", recordsController.DeleteSkill)
		student.POST("/achievements", recordsController.AddAchievement)
		student.DELETE("/achievements/:id", recordsController.DeleteAchievement)
		student.POST("/certifications", recordsController.AddCertification)
		student.DELETE("/certifications/:id", recordsController.DeleteCertification)
	}

	// --- Staff routes ---
	staff := v1.Group("/staff")
	staff.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleStaff)))
	{
		staff.GET("/students", staffController.Directory)
		staff.GET("/students/:id", staffController.GetStudent)
		staff.PUT("/students/:id", staffController.EditStudent)
		staff.POST("/students/:id/skills", staffController.AddStudentSkill)
		staff.DELETE("/students/:id/skills/:skillId", staffController.DeleteStudentSkill)
	}
}

// healthHandler reports liveness and pings the database pool.
func healthHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		if err := pool.Ping(ctx); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, dto.APIResponse{
			Data:      gin.H{"status": status},
			Timestamp: time.Now(),
		})
	}
}
