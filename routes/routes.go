package routes

import (
	"net/http"
	"time"

	"enersense/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAIRoutes registers the chatbot endpoint.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/chat", hb.AIChatHandler)
	}
}

// RegisterConsultationRoutes registers the direct slot-book endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultations")
	{
		api.POST("", hb.ScheduleConsultationHandler)
		api.GET("/slots/:date", hb.GetAvailableSlotsHandler)
	}
}

// RegisterDeskRoutes registers the capture-log endpoints.
func RegisterDeskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/desk")
	{
		api.POST("/leads", hb.RecordLeadHandler)
		api.POST("/feedback", hb.RecordFeedbackHandler)
		api.POST("/monitoring", hb.RecordMonitoringRequestHandler)
		api.POST("/reports", hb.RecordReportRequestHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm EnerSense"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAIRoutes(r, hb)
	RegisterConsultationRoutes(r, hb)
	RegisterDeskRoutes(r, hb)
	RegisterHealthRoute(r)
}
