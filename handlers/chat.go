package handlers

import (
	"net/http"

	"enersense/models"
	ai "enersense/services/intelligence"
	"enersense/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the chatbot endpoint.
type ChatHandler struct {
	Svc ai.ChatService
}

func NewChatHandler(svc ai.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// HandleChat forwards one user message through the dispatcher and returns
// the assistant's reply.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	resp, err := h.Svc.ProcessUserInput(c.Request.Context(), req)
	if err != nil {
		logger.Error("Chat processing failed", zap.Error(err), zap.String("userID", req.UserID))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
