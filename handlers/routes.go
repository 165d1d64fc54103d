package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hireflow/backend/auth"
	"github.com/hireflow/backend/mcp"
)

// Routes groups every handler served under the router
type Routes struct {
	Screening  *ScreeningHandler
	Candidates *CandidateHandler
	System     *SystemHandler
	MCP        *mcp.Server
	APISecret  string
}

// Register mounts all endpoints. The public v1 API, the MCP endpoints and
// tool introspection require the x-api-key header.
func (r *Routes) Register(router gin.IRouter) {
	router.GET("/health", r.System.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/parsing", r.Screening.ParseResume)
		api.POST("/scoring", r.Screening.Score)
		api.POST("/scoring/batch", r.Screening.BatchScore)
		api.POST("/recommendations", r.Screening.Recommend)
		api.POST("/chat", r.Screening.Chat)
		api.POST("/chat/candidate", r.Screening.CandidateChat)
		api.GET("/chat/candidate/:id/history", r.Screening.TranscriptHistory)
		api.POST("/generate/jd", r.Screening.GenerateJD)
		api.POST("/outreach", r.Screening.Outreach)
		api.POST("/predict/salary", r.Screening.PredictSalary)
		api.POST("/analyze/onboarding", r.Screening.AnalyzeOnboarding)
		api.POST("/analyze/portfolio", r.Screening.AnalyzePortfolio)
		api.POST("/analyze/role-architect", r.Screening.RoleArchitect)
		api.POST("/analyze/video", r.Screening.AnalyzeVideo)
		api.POST("/interview/addon", r.Screening.InterviewAddon)
		api.POST("/embeddings", r.Screening.Embeddings)

		candidates := api.Group("/candidates")
		{
			candidates.GET("", r.Candidates.List)
			candidates.POST("", r.Candidates.Create)
			candidates.POST("/upload", r.Candidates.Upload)
			candidates.POST("/rescore", r.Candidates.RescoreAll)
			candidates.GET("/stats", r.Candidates.Stats)
			candidates.GET("/export", r.Candidates.Export)
			candidates.GET("/:id", r.Candidates.Get)
			candidates.DELETE("/:id", r.Candidates.Delete)
			candidates.PATCH("/:id/status", r.Candidates.UpdateStatus)
			candidates.POST("/:id/accept", r.Candidates.Accept)
			candidates.POST("/:id/reject", r.Candidates.Reject)
			candidates.POST("/:id/rescore", r.Candidates.Rescore)
			candidates.POST("/:id/avatar", r.Candidates.UploadAvatar)
			candidates.GET("/:id/resume", r.Candidates.ResumeLink)
		}

		protected := api.Group("")
		protected.Use(auth.APIKeyMiddleware(r.APISecret))
		{
			protected.POST("/v1/analyze", r.Screening.V1Analyze)
			protected.GET("/tools", r.System.GetTools)
			r.MCP.RegisterRoutes(protected)
		}
	}
}
