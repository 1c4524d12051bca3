// Package agent contains the prompt-level screening agents. Each agent pairs
// an externalized prompt template with an output convention (narrative text,
// a bare percentage, bullet points, or schema JSON) over one of the LLM
// transport services.
package agent

import (
	"context"
	"fmt"

	"github.com/hireflow/screening/internal/prompts"
	"github.com/hireflow/screening/internal/service"
)

// Summarizer produces narrative summaries of job descriptions and resumes.
// Transport failures are returned as error-tagged text rather than errors:
// the pipeline never aborts on this step, the error string propagates
// downstream as the "summary".
type Summarizer struct {
	llm      service.TogetherServiceInterface
	jdPrompt string
	cvPrompt string
}

func NewSummarizer(llm service.TogetherServiceInterface) *Summarizer {
	return &Summarizer{
		llm:      llm,
		jdPrompt: prompts.MustGet("summarize.json", "job_description"),
		cvPrompt: prompts.MustGet("summarize.json", "resume"),
	}
}

// SummarizeJob returns a heading-structured summary of a job description.
func (s *Summarizer) SummarizeJob(ctx context.Context, jdText string) string {
	prompt := prompts.Format(s.jdPrompt, map[string]string{"Text": jdText})
	out, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return out
}

// SummarizeResume returns a field-labeled summary of a resume.
func (s *Summarizer) SummarizeResume(ctx context.Context, cvText string) string {
	prompt := prompts.Format(s.cvPrompt, map[string]string{"Text": cvText})
	out, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return out
}
