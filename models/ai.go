package models

// ChatRequest is the payload coming from the frontend into /api/ai/chat.
type ChatRequest struct {
	UserID string `json:"user_id" binding:"required"` // unique user identifier
	Text   string `json:"text" binding:"required"`    // user's message
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	ResponseText string `json:"response"` // natural-language reply
}

// ChatMessage is one turn of a stored conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}
