// File: enersense/services/intelligence/interface.go
package ai

import (
	"context"
	"fmt"

	"enersense/models"
	"enersense/services/desk"
	"enersense/services/slotbook"
	"enersense/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// maxToolRounds bounds the tool-call loop per user message so a confused
// model cannot spin forever.
const maxToolRounds = 4

// ChatService is the LLM-driven dispatcher: it decides per user message
// which operation to invoke and extracts the arguments from free text.
type ChatService interface {
	ProcessUserInput(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type DefaultChatService struct {
	client   *GeminiClient
	ctxStore *RedisContextStore
	SlotBook slotbook.SlotBookService
	Desk     desk.DeskService
}

func NewDefaultChatService(
	apiKey string,
	ctxStore *RedisContextStore,
	slotBook slotbook.SlotBookService,
	deskSvc desk.DeskService,
) *DefaultChatService {
	return &DefaultChatService{
		client:   NewGeminiClient(apiKey),
		ctxStore: ctxStore,
		SlotBook: slotBook,
		Desk:     deskSvc,
	}
}

func toGenaiHistory(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  msg.Role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}
	return contents
}

func (s *DefaultChatService) ProcessUserInput(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	history, err := s.ctxStore.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	session := s.client.StartChat(toGenaiHistory(history))
	resp, err := session.SendMessage(ctx, genai.Text(req.Text))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	// Run any requested tool calls and feed the results back until the
	// model settles on a text reply.
	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}
		var parts []genai.Part
		for _, call := range calls {
			logger.Debug("Executing chatbot tool",
				zap.String("function", call.Name), zap.String("userID", req.UserID))
			result, err := s.executeTool(ctx, call)
			if err != nil {
				return nil, fmt.Errorf("tool %s: %w", call.Name, err)
			}
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: result,
			})
		}
		resp, err = session.SendMessage(ctx, parts...)
		if err != nil {
			return nil, fmt.Errorf("gemini generate error: %w", err)
		}
	}

	reply := responseText(resp)
	if reply == "" {
		reply = "I'm sorry, I didn't catch that. Could you rephrase?"
	}

	history = append(history,
		models.ChatMessage{Role: "user", Text: req.Text},
		models.ChatMessage{Role: "model", Text: reply},
	)
	if err := s.ctxStore.Set(ctx, req.UserID, history); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.ChatResponse{ResponseText: reply}, nil
}
