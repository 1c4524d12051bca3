package agent

import (
	"context"
	"fmt"

	"github.com/hireflow/screening/internal/prompts"
	"github.com/hireflow/screening/internal/score"
	"github.com/hireflow/screening/internal/service"
)

// Matcher scores resume-to-job alignment on three fixed criteria and
// expects the model to answer with a bare "<digits>%".
type Matcher struct {
	llm    service.TogetherServiceInterface
	prompt string
}

func NewMatcher(llm service.TogetherServiceInterface) *Matcher {
	return &Matcher{
		llm:    llm,
		prompt: prompts.MustGet("matching.json", "fit_score"),
	}
}

// Match returns the fit score in [0,100]. An output without a parseable
// percentage yields score.ErrScoreNotFound, never zero.
func (m *Matcher) Match(ctx context.Context, jobSummary, resumeSummary string) (int, error) {
	prompt := prompts.Format(m.prompt, map[string]string{
		"JDSummary": jobSummary,
		"CVSummary": resumeSummary,
	})

	out, err := m.llm.Complete(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("matching agent: %w", err)
	}

	n, err := score.ParsePercentage(out)
	if err != nil {
		return 0, fmt.Errorf("matching agent: %w", err)
	}
	return n, nil
}
