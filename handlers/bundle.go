package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// AI endpoints.
	AIChatHandler gin.HandlerFunc

	// Consultation endpoints.
	ScheduleConsultationHandler gin.HandlerFunc
	GetAvailableSlotsHandler    gin.HandlerFunc

	// Desk capture endpoints.
	RecordLeadHandler              gin.HandlerFunc
	RecordFeedbackHandler          gin.HandlerFunc
	RecordMonitoringRequestHandler gin.HandlerFunc
	RecordReportRequestHandler     gin.HandlerFunc
}
