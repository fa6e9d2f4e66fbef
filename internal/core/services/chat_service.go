package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/platform/config"
)

// FallbackResponse is the fixed user-facing text attached to every assistant
// failure.
const FallbackResponse = "I apologize, but I'm currently unavailable. Please try again later or contact your supervisor for assistance."

const generalSystemPrompt = `You are a helpful onboarding assistant for a company training program. You help new employees with:

- Company policies and procedures
- General workplace guidance
- Training program questions
- Basic HR information
- Safety protocols
- Common workplace scenarios

You should be friendly, professional, and helpful. Keep responses concise but informative. If you don't know something specific about the company, acknowledge that and suggest they contact their supervisor or HR department.

This is a general assistant (different from the department-specific assistants) - you handle general company and workplace questions.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type chatService struct {
	BaseService
	cfg    *config.Config
	client *resty.Client
}

// NewChatService creates the assistant relay service.
func NewChatService(cfg *config.Config) portssvc.ChatSvcFacade {
	client := resty.New().
		SetTimeout(30 * time.Second)
	return &chatService{cfg: cfg, client: client}
}

var _ portssvc.ChatSvcFacade = (*chatService)(nil)

func (s *chatService) GeneralReply(ctx context.Context, message string) (string, error) {
	if s.cfg.ChatAPIKey == "" {
		return "", errors.New("assistant API key not configured")
	}

	reqBody := chatCompletionRequest{
		Model: s.cfg.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: generalSystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}

	var respBody chatCompletionResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.cfg.ChatAPIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&respBody).
		SetError(&respBody).
		Post(s.cfg.ChatAPIURL)
	if err != nil {
		s.LogError(ctx, err, "Assistant upstream call failed")
		return "", fmt.Errorf("assistant upstream call failed: %w", err)
	}

	if resp.IsError() {
		msg := "assistant upstream error"
		if respBody.Error != nil && respBody.Error.Message != "" {
			msg = respBody.Error.Message
		}
		s.LogWarn(ctx, "Assistant upstream returned error", "status", resp.StatusCode(), "message", msg)
		return "", errors.New(msg)
	}

	if len(respBody.Choices) == 0 || respBody.Choices[0].Message.Content == "" {
		return "I apologize, but I couldn't generate a response. Please try again.", nil
	}
	return respBody.Choices[0].Message.Content, nil
}

// DepartmentReply is a templated acknowledgement. There is no per-department
// knowledge base to query yet, so the response says so instead of pretending.
func (s *chatService) DepartmentReply(ctx context.Context, department, message string) (string, error) {
	s.LogDebug(ctx, "Department assistant invoked", "department", department)
	return fmt.Sprintf(
		"Thanks for your question about the %s department. A dedicated %s assistant is not available yet; for department-specific topics, please ask your onboarding host or use the general assistant.",
		department, department,
	), nil
}
