package routes

import (
	"ethno-platform-api/controllers"
	"ethno-platform-api/middleware"
	"ethno-platform-api/utils"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Ethno Platform API is running",
		})
	})

	// Static serving of the upload directory
	router.Static("/uploads", utils.UploadRoot())

	// Authentication
	auth := router.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		authed := auth.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/profile", controllers.GetProfile)
			authed.PUT("/change-password", controllers.ChangePassword)
		}
	}

	// Research submissions
	research := router.Group("/research")
	{
		research.POST("/submit", controllers.SubmitResearch)
		research.GET("/public", controllers.GetPublicResearch)

		reviewers := research.Group("")
		reviewers.Use(middleware.AuthMiddleware(), middleware.RequireReviewer())
		{
			reviewers.GET("/admin", controllers.GetAdminResearch)
			reviewers.GET("/admin/stats", controllers.GetResearchStats)
			reviewers.PATCH("/:id/status", controllers.UpdateResearchStatus)
		}
	}

	// Documentaries
	docs := router.Group("/docs")
	{
		docs.GET("", controllers.GetDocumentaries)

		authed := docs.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/upload", controllers.UploadDocumentary)
		}

		reviewers := docs.Group("")
		reviewers.Use(middleware.AuthMiddleware(), middleware.RequireReviewer())
		{
			reviewers.GET("/admin", controllers.GetAdminDocumentaries)
			reviewers.PATCH("/:id/status", controllers.UpdateDocumentaryStatus)
		}
	}

	// Communities
	communities := router.Group("/communities")
	{
		communities.GET("", controllers.GetCommunities)
		communities.GET("/:slug", controllers.GetCommunity)

		admins := communities.Group("")
		admins.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			admins.POST("", controllers.CreateCommunity)
			admins.PUT("/:slug", controllers.UpdateCommunity)
		}
	}

	// Field data
	fieldData := router.Group("/field-data")
	{
		fieldData.POST("/submit", controllers.SubmitFieldData)
		fieldData.GET("/public", controllers.GetPublicFieldData)

		reviewers := fieldData.Group("")
		reviewers.Use(middleware.AuthMiddleware(), middleware.RequireReviewer())
		{
			reviewers.GET("/admin", controllers.GetAdminFieldData)
			reviewers.PATCH("/:id/status", controllers.UpdateFieldDataStatus)
		}
	}

	// Stories
	stories := router.Group("/stories")
	{
		stories.GET("", controllers.GetStories)
		stories.GET("/:slug", controllers.GetStory)

		authed := stories.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("", controllers.CreateStory)
		}
	}
}
