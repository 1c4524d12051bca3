package agent

import (
	"context"
	"fmt"

	"github.com/hireflow/screening/internal/model"
	"github.com/hireflow/screening/internal/prompts"
	"github.com/hireflow/screening/internal/service"
)

const (
	selectionTemperature = 0.8
	rejectionTemperature = 1.0
)

// Notifier generates candidate notification emails. The LLM produces only
// the bullet-point body; subject, greeting and closing are synthesized from
// the company and candidate names. On generation failure the record is
// exactly an {error, details} pair, which callers persist verbatim.
type Notifier struct {
	llm             service.GeminiServiceInterface
	selectionPrompt string
	rejInitPrompt   string
	rejFinalPrompt  string
}

func NewNotifier(llm service.GeminiServiceInterface) *Notifier {
	return &Notifier{
		llm:             llm,
		selectionPrompt: prompts.MustGet("notification.json", "selection_reasons"),
		rejInitPrompt:   prompts.MustGet("notification.json", "rejection_initial"),
		rejFinalPrompt:  prompts.MustGet("notification.json", "rejection_final"),
	}
}

// SelectionEmail generates exactly 5 bullet points of matched qualifications
// from the candidate fit summary.
func (n *Notifier) SelectionEmail(ctx context.Context, companyName, candidateName, jobTitle, fitSummary string) *model.Notification {
	prompt := prompts.Format(n.selectionPrompt, map[string]string{
		"CandidateName": candidateName,
		"JobTitle":      jobTitle,
		"FitSummary":    fitSummary,
	})
	return n.compose(ctx, prompt, selectionTemperature, companyName, candidateName)
}

// RejectionEmailInitial generates 4-5 bullet points of concrete mismatches
// between the job and resume summaries.
func (n *Notifier) RejectionEmailInitial(ctx context.Context, companyName, candidateName, jdSummary, cvSummary string) *model.Notification {
	prompt := prompts.Format(n.rejInitPrompt, map[string]string{
		"CandidateName": candidateName,
		"JDSummary":     jdSummary,
		"CVSummary":     cvSummary,
	})
	return n.compose(ctx, prompt, rejectionTemperature, companyName, candidateName)
}

// RejectionEmailFinal generates 4-5 bullet points drawn from the validation
// report's findings.
func (n *Notifier) RejectionEmailFinal(ctx context.Context, companyName, candidateName, validationReport string) *model.Notification {
	prompt := prompts.Format(n.rejFinalPrompt, map[string]string{
		"CandidateName":    candidateName,
		"ValidationReport": validationReport,
	})
	return n.compose(ctx, prompt, rejectionTemperature, companyName, candidateName)
}

func (n *Notifier) compose(ctx context.Context, prompt string, temperature float32, companyName, candidateName string) *model.Notification {
	body, err := n.llm.Generate(ctx, prompt, temperature)
	if err != nil {
		return &model.Notification{
			Error:   "Email generation failed",
			Details: err.Error(),
		}
	}

	return &model.Notification{
		Subject:  fmt.Sprintf("Update on Your Application for %s", companyName),
		Greeting: fmt.Sprintf("Dear %s,", candidateName),
		Body:     body,
		Closing:  fmt.Sprintf("Sincerely,\nHR Team at %s", companyName),
	}
}
