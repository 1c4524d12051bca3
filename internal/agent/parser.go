package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireflow/screening/internal/prompts"
	"github.com/hireflow/screening/internal/service"
)

// ResumeParser turns raw resume text into a fixed-schema JSON document.
type ResumeParser struct {
	llm    service.TogetherServiceInterface
	prompt string
}

func NewResumeParser(llm service.TogetherServiceInterface) *ResumeParser {
	return &ResumeParser{
		llm:    llm,
		prompt: prompts.MustGet("parsing.json", "resume_schema"),
	}
}

// Parse returns the model's JSON output with any surrounding code fence
// stripped.
func (p *ResumeParser) Parse(ctx context.Context, cvText string) (string, error) {
	prompt := prompts.Format(p.prompt, map[string]string{"Text": cvText})

	out, err := p.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("parsing agent: %w", err)
	}
	return StripCodeFence(out), nil
}

// StripCodeFence removes a leading and trailing triple-backtick fence if the
// raw model output is fenced; otherwise the text passes through unchanged.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSpace(text)
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}
