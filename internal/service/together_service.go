package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hireflow/screening/internal/config"
	"github.com/hireflow/screening/internal/logger"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// TogetherServiceInterface is the chat-completion capability used by the
// summarization, matching, validation and parsing agents.
type TogetherServiceInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type TogetherService struct {
	client  *resty.Client
	apiKey  string
	model   string
	baseURL string
	log     *zap.Logger
}

func NewTogetherService(log *zap.Logger) *TogetherService {
	cfg := config.LoadTogetherConfig()
	return &TogetherService{
		client:  resty.New().SetTimeout(90 * time.Second),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		log:     log,
	}
}

// Complete sends a single-user-message chat completion and returns the
// assistant text.
func (s *TogetherService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(s.baseURL + "/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion returned status %d: %s",
			resp.StatusCode(), logger.Truncate(resp.String(), 200))
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no content in chat completion response")
	}

	s.log.Debug("together completion",
		zap.String("model", s.model),
		zap.Int("prompt_len", len(prompt)),
		zap.String("response", logger.Truncate(text, 200)),
	)
	return text, nil
}
