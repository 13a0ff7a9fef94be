package routes

import (
	"github.com/Spacespixel/ppsasset-new/controllers"
	"github.com/Spacespixel/ppsasset-new/monitor"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "PPS Asset API is running",
			})
		})

		// Projects
		projects := v1.Group("/projects")
		{
			projects.GET("", controllers.GetProjects)
			projects.GET("/:slug", controllers.GetProject)

			// เปลี่ยนสถานะและดูประวัติ ต้องใช้ admin token
			projects.PUT("/:slug/status", controllers.UpdateProjectStatus)
			projects.GET("/:slug/status-history", controllers.GetProjectStatusHistory)
		}

		// Registration
		v1.POST("/register", controllers.RegisterInterest)

		// Service status
		v1.GET("/status", monitor.ServiceStatus)
	}

	// Legacy marketing URLs (type/name/location) from externally indexed pages
	router.GET("/Home/Detail/:type/:name/:location", controllers.GetProjectByLegacyURL)
}
