// File: enersense/services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps the generative model configured with the EnerSense
// persona and tool declarations.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.Tools = []*genai.Tool{chatbotTool()}
	return &GeminiClient{model: model}
}

// StartChat opens a session preloaded with the given history.
func (g *GeminiClient) StartChat(history []*genai.Content) *genai.ChatSession {
	cs := g.model.StartChat()
	cs.History = history
	return cs
}

// responseText concatenates the text parts of a model response.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

// functionCalls extracts the tool invocations from a model response.
func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return calls
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, fc)
		}
	}
	return calls
}
