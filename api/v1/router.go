package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/lib/storage"
	"github.com/limayamil/flowsync/middleware"
	"github.com/limayamil/flowsync/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, blobs storage.BlobStore) {
	fileService = services.NewFileService(blobs)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Provider endpoints - authenticated provider staff only
	provider := router.Group("")
	provider.Use(middleware.AuthMiddleware(), middleware.ProviderMiddleware())
	{
		provider.GET("/dashboard", GetDashboard)

		provider.GET("/clients", ListClients)
		provider.POST("/clients", CreateClient)

		projectGroup := provider.Group("/projects")
		{
			projectGroup.GET("", ListProjects)
			projectGroup.POST("", CreateProject)
			projectGroup.GET("/:id", GetProject)
			projectGroup.PUT("/:id/info", UpdateProjectInfo)
			projectGroup.PUT("/:id/dates", UpdateProjectDates)
			projectGroup.PUT("/:id/status", UpdateProjectStatus)
			projectGroup.GET("/:id/activity", ListActivity)

			projectGroup.PUT("/:id/stages/current", SetCurrentStage)
			projectGroup.POST("/:id/stages", AddStage)
			projectGroup.PUT("/:id/stages/:stageId", UpdateStage)
			projectGroup.DELETE("/:id/stages/:stageId", DeleteStage)
			projectGroup.POST("/:id/stages/:stageId/complete", CompleteStage)
			projectGroup.POST("/:id/stages/:stageId/request-materials", RequestMaterials)

			projectGroup.POST("/:id/stages/:stageId/components", AddComponent)
			projectGroup.PUT("/:id/stages/:stageId/components/:componentId", UpdateComponent)
			projectGroup.DELETE("/:id/stages/:stageId/components/:componentId", DeleteComponent)

			projectGroup.POST("/:id/stages/:stageId/approvals", RequestApproval)

			projectGroup.GET("/:id/members", ListMembers)
			projectGroup.POST("/:id/members", AddMember)
			projectGroup.PUT("/:id/members/:memberId", UpdateMember)
			projectGroup.DELETE("/:id/members/:memberId", RemoveMember)

			projectGroup.GET("/:id/comments", ListComments)
			projectGroup.POST("/:id/comments", AddComment)

			projectGroup.GET("/:id/files", ListFiles)
			projectGroup.POST("/:id/files", UploadFile)
			projectGroup.GET("/:id/files/:fileId", DownloadFile)
			projectGroup.DELETE("/:id/files/:fileId", DeleteFile)

			projectGroup.POST("/:id/links", AddLink)
			projectGroup.PUT("/:id/links/:linkId", UpdateLink)
			projectGroup.DELETE("/:id/links/:linkId", DeleteLink)

			projectGroup.GET("/:id/minutes", ListMinutes)
			projectGroup.POST("/:id/minutes", AddMinute)
			projectGroup.PUT("/:id/minutes/:minuteId", UpdateMinute)
			projectGroup.DELETE("/:id/minutes/:minuteId", DeleteMinute)
		}
	}

	// Client namespace - authenticated, slug-scoped. Clients reaching a
	// foreign slug are redirected to their own.
	clientArea := router.Group("/c/:slug")
	clientArea.Use(middleware.AuthMiddleware(), middleware.ClientScopeMiddleware())
	{
		clientArea.GET("/projects", ClientOverview)

		// every project-scoped route verifies the project belongs to
		// this namespace's client
		clientProject := clientArea.Group("/projects/:id", ClientProjectScope)
		{
			clientProject.GET("", ClientProjectDetail)
			clientProject.POST("/comments", AddComment)
			clientProject.POST("/files", UploadFile)
			clientProject.GET("/files/:fileId", DownloadFile)
			clientProject.POST("/stages/:stageId/approvals/respond", RespondApproval)
		}
	}

	// Admin endpoints
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/settings", GetSettings)
		adminGroup.PUT("/settings", UpdateSetting)
	}
}
