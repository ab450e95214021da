package handlers

import (
	"net/http"

	"enersense/models"
	"enersense/services/desk"
	"enersense/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeskHandler exposes the four capture logs directly.
type DeskHandler struct {
	Svc    desk.DeskService
	Logger *zap.Logger
}

func NewDeskHandler(svc desk.DeskService, logger *zap.Logger) *DeskHandler {
	return &DeskHandler{Svc: svc, Logger: logger}
}

func (h *DeskHandler) respond(c *gin.Context, msg string, err error, what string) {
	if err != nil {
		h.Logger.Error("Failed to "+what, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to "+what, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *DeskHandler) RecordLead(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid lead payload", err.Error())
		return
	}
	msg, err := h.Svc.RecordLead(c.Request.Context(), lead)
	h.respond(c, msg, err, "record lead")
}

func (h *DeskHandler) RecordFeedback(c *gin.Context) {
	var feedback models.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid feedback payload", err.Error())
		return
	}
	msg, err := h.Svc.RecordFeedback(c.Request.Context(), feedback)
	h.respond(c, msg, err, "record feedback")
}

func (h *DeskHandler) RecordMonitoringRequest(c *gin.Context) {
	var req models.MonitoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid monitoring request payload", err.Error())
		return
	}
	msg, err := h.Svc.RecordMonitoringRequest(c.Request.Context(), req)
	h.respond(c, msg, err, "record monitoring request")
}

func (h *DeskHandler) RecordReportRequest(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid report request payload", err.Error())
		return
	}
	msg, err := h.Svc.RecordReportRequest(c.Request.Context(), req)
	h.respond(c, msg, err, "record report request")
}
