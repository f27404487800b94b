package dto

import (
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	UserMessage models.ChatMessage `json:"user_message"`
	Reply       models.ChatMessage `json:"reply"`
	Intent      string             `json:"intent"`
	State       *store.State       `json:"state"`
}

type ChatHistoryResponse struct {
	Messages []models.ChatMessage `json:"messages"`
}
