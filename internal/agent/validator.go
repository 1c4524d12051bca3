package agent

import (
	"context"
	"fmt"

	"github.com/hireflow/screening/internal/prompts"
	"github.com/hireflow/screening/internal/score"
	"github.com/hireflow/screening/internal/service"
)

// Validator checks whether the skills a candidate claims are actually
// evidenced in the resume body. It asks twice over the same summary: once
// for a narrative report, once for a bare percentage. The two calls keep the
// report path and the machine-score path independently robust to prompt
// drift.
type Validator struct {
	llm          service.TogetherServiceInterface
	reportPrompt string
	scorePrompt  string
}

func NewValidator(llm service.TogetherServiceInterface) *Validator {
	return &Validator{
		llm:          llm,
		reportPrompt: prompts.MustGet("validation.json", "detailed_report"),
		scorePrompt:  prompts.MustGet("validation.json", "score_only"),
	}
}

// DetailedReport returns the tabular legitimacy report with its VALID / NOT
// VALID verdict line. Transport failures come back as error-tagged text.
func (v *Validator) DetailedReport(ctx context.Context, resumeSummary string) string {
	prompt := prompts.Format(v.reportPrompt, map[string]string{"CVSummary": resumeSummary})
	out, err := v.llm.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return out
}

// Score returns the legitimacy score in [0,100]. An unparseable output is a
// distinct error (score.ErrScoreNotFound) from a legitimate 0%.
func (v *Validator) Score(ctx context.Context, resumeSummary string) (int, error) {
	prompt := prompts.Format(v.scorePrompt, map[string]string{"CVSummary": resumeSummary})

	out, err := v.llm.Complete(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("validation agent: %w", err)
	}

	n, err := score.ParsePercentage(out)
	if err != nil {
		return 0, fmt.Errorf("validation agent: %w", err)
	}
	return n, nil
}
