package agent

import (
	"context"
	"fmt"

	"github.com/hireflow/screening/internal/prompts"
	"github.com/hireflow/screening/internal/service"
)

// FitSummarizer writes the short HR-style justification paragraph for a
// shortlisted candidate, drawing on the resume summary and the validation
// report.
type FitSummarizer struct {
	llm    service.GeminiServiceInterface
	prompt string
}

func NewFitSummarizer(llm service.GeminiServiceInterface) *FitSummarizer {
	return &FitSummarizer{
		llm:    llm,
		prompt: prompts.MustGet("fit_summary.json", "fit_summary"),
	}
}

// Summarize returns the fit summary paragraph, or an error-tagged string on
// transport failure. The tagged string is persisted as the summary so the
// analysis record keeps an audit trail of what went wrong.
func (f *FitSummarizer) Summarize(ctx context.Context, companyName, jobTitle, resumeSummary, validationReport string) string {
	prompt := prompts.Format(f.prompt, map[string]string{
		"CompanyName":      companyName,
		"JobTitle":         jobTitle,
		"CVSummary":        resumeSummary,
		"ValidationReport": validationReport,
	})

	out, err := f.llm.Generate(ctx, prompt, selectionTemperature)
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return out
}
