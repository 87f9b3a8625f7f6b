package router

import (
	"time"

	"github.com/gestor-dev/gestor/internal/auth"
	"github.com/gestor-dev/gestor/internal/handlers"
	"github.com/gestor-dev/gestor/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New assembles the API. Login and register are the only unauthenticated
// routes besides the health check; everything else sits behind the bearer
// token middleware.
func New(h *handlers.Handler, tokens *auth.Manager, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Register)
			authRoutes.POST("/login", h.Login)
		}

		projects := api.Group("/projects", middleware.AuthRequired(tokens))
		{
			projects.GET("", h.ListProjects)
			projects.POST("", h.CreateProject)
			projects.GET("/dashboard", h.Dashboard)
			projects.PUT("/:projectId", h.UpdateProject)
			projects.DELETE("/:projectId", h.DeleteProject)

			projects.GET("/:projectId/users", h.ListProjectUsers)
			projects.POST("/:projectId/users", h.LinkUser)
			projects.DELETE("/:projectId/users/:userId", h.UnlinkUser)

			projects.GET("/user/:userId", h.ListUserProjects)
			projects.POST("/upload-project-file", h.UploadProjects)
		}

		users := api.Group("/users", middleware.AuthRequired(tokens))
		{
			users.GET("", h.ListUsers)
		}
	}

	return r
}
