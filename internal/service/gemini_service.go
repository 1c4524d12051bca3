package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hireflow/screening/internal/config"
	"github.com/hireflow/screening/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiServiceInterface is the generation-style LLM capability used by the
// notification and fit-summary agents.
type GeminiServiceInterface interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

type GeminiService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
	log            *zap.Logger
}

func NewGeminiService(ctx context.Context, log *zap.Logger) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{
		Client:         client,
		Model:          geminiConfig.Model,
		RequestTimeout: 90 * time.Second,
		log:            log,
	}, nil
}

// Generate runs a single completion. Each call is bounded by RequestTimeout;
// expiry surfaces as a transport error to the caller. No retries: a failing
// call fails the whole screening request.
func (s *GeminiService) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}

	result, err := s.Client.Models.GenerateContent(
		timeoutCtx,
		s.Model,
		genai.Text(prompt),
		genConfig,
	)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}

	text := result.Text()
	s.log.Debug("gemini completion",
		zap.String("model", s.Model),
		zap.Int("prompt_len", len(prompt)),
		zap.String("response", logger.Truncate(text, 200)),
	)
	return text, nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
