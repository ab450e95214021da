// File: enersense/handlers/consultation.go
package handlers

import (
	"errors"
	"net/http"

	"enersense/services/slotbook"
	"enersense/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsultationHandler exposes the slot book directly, bypassing the
// chatbot. The handler owns the human-readable wording; the service only
// returns structured results.
type ConsultationHandler struct {
	Svc    slotbook.SlotBookService
	Logger *zap.Logger
}

func NewConsultationHandler(svc slotbook.SlotBookService, logger *zap.Logger) *ConsultationHandler {
	return &ConsultationHandler{Svc: svc, Logger: logger}
}

// ScheduleConsultation books one slot.
func (h *ConsultationHandler) ScheduleConsultation(c *gin.Context) {
	var input struct {
		Date       string `json:"date" binding:"required"`
		Time       string `json:"time" binding:"required"`
		ClientName string `json:"client_name" binding:"required"`
		Topic      string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	booking, err := h.Svc.Schedule(c.Request.Context(), input.Date, input.Time, input.ClientName, input.Topic)
	if err != nil {
		var conflict *slotbook.SlotConflictError
		var badDate *slotbook.MalformedDateError
		var badTime *slotbook.InvalidTimeError
		switch {
		case errors.As(err, &conflict):
			utils.JSONError(c, http.StatusConflict, "Slot already booked",
				"That time slot on "+conflict.Date+" is already reserved. Please choose another time that day.")
		case errors.As(err, &badDate):
			utils.JSONError(c, http.StatusBadRequest, "Malformed date", err.Error())
		case errors.As(err, &badTime):
			utils.JSONError(c, http.StatusBadRequest, "Invalid time slot", err.Error())
		default:
			h.Logger.Error("Failed to schedule consultation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to schedule consultation", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetAvailableSlots lists the free hourly labels for a date.
func (h *ConsultationHandler) GetAvailableSlots(c *gin.Context) {
	date := c.Param("date")

	slots, err := h.Svc.ListAvailable(c.Request.Context(), date)
	if err != nil {
		var badDate *slotbook.MalformedDateError
		if errors.As(err, &badDate) {
			utils.JSONError(c, http.StatusBadRequest, "Malformed date", err.Error())
			return
		}
		h.Logger.Error("Failed to list available slots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list available slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "available": slots})
}
