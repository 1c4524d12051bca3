package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireflow/screening/internal/model"
	"github.com/hireflow/screening/internal/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Legitimacy score below this rejects the candidate in the final phase.
const shortlistCutoff = 70

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrJobNotFound       = errors.New("job description not found")
)

// TextExtractor retrieves a remote document as plain text.
type TextExtractor interface {
	FromURL(ctx context.Context, fileURL string) (string, error)
}

// Summarizer produces narrative summaries; failures come back embedded in
// the returned text, never as an error.
type Summarizer interface {
	SummarizeJob(ctx context.Context, jdText string) string
	SummarizeResume(ctx context.Context, cvText string) string
}

type Matcher interface {
	Match(ctx context.Context, jobSummary, resumeSummary string) (int, error)
}

type Validator interface {
	DetailedReport(ctx context.Context, resumeSummary string) string
	Score(ctx context.Context, resumeSummary string) (int, error)
}

type Notifier interface {
	SelectionEmail(ctx context.Context, companyName, candidateName, jobTitle, fitSummary string) *model.Notification
	RejectionEmailInitial(ctx context.Context, companyName, candidateName, jdSummary, cvSummary string) *model.Notification
	RejectionEmailFinal(ctx context.Context, companyName, candidateName, validationReport string) *model.Notification
}

type FitSummarizer interface {
	Summarize(ctx context.Context, companyName, jobTitle, resumeSummary, validationReport string) string
}

type ResumeParser interface {
	Parse(ctx context.Context, cvText string) (string, error)
}

type CandidateStore interface {
	FindByEmail(email string) (*model.Candidate, error)
	Update(c *model.Candidate) error
}

type JobStore interface {
	FindByID(id uuid.UUID) (*model.Job, error)
	FindByDescription(description string) (*model.Job, error)
	Update(j *model.Job) error
}

type CompanyStore interface {
	FindByID(id uuid.UUID) (*model.Company, error)
}

// ScreeningUsecase orchestrates the candidate evaluation pipeline and the
// two document flows built on the same extractor and agents.
type ScreeningUsecase struct {
	candidates CandidateStore
	jobs       JobStore
	companies  CompanyStore

	extractor  TextExtractor
	summarizer Summarizer
	matcher    Matcher
	validator  Validator
	notifier   Notifier
	fit        FitSummarizer
	parser     ResumeParser

	log *zap.Logger
}

func NewScreeningUsecase(
	candidates CandidateStore,
	jobs JobStore,
	companies CompanyStore,
	extractor TextExtractor,
	summarizer Summarizer,
	matcher Matcher,
	validator Validator,
	notifier Notifier,
	fit FitSummarizer,
	parser ResumeParser,
	log *zap.Logger,
) *ScreeningUsecase {
	return &ScreeningUsecase{
		candidates: candidates,
		jobs:       jobs,
		companies:  companies,
		extractor:  extractor,
		summarizer: summarizer,
		matcher:    matcher,
		validator:  validator,
		notifier:   notifier,
		fit:        fit,
		parser:     parser,
		log:        log,
	}
}

// ScreenCandidate runs the full evaluation pipeline for the candidate with
// the given email. All reads happen up front, every stage is a blocking call
// in sequence, and the candidate row is written exactly once, at the
// terminal state. Any upstream failure before that single commit leaves the
// row unmodified.
func (uc *ScreeningUsecase) ScreenCandidate(ctx context.Context, email string) (*response.ScreeningResult, error) {
	candidate, err := uc.candidates.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("lookup candidate: %w", err)
	}

	// Job and company are preconditions; their absence is a data integrity
	// failure, not a screening outcome.
	job, err := uc.jobs.FindByID(candidate.JobID)
	if err != nil {
		return nil, fmt.Errorf("lookup job %s: %w", candidate.JobID, err)
	}
	company, err := uc.companies.FindByID(job.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("lookup company %s: %w", job.CompanyID, err)
	}

	candidateName := candidate.FullName()
	st := stateStart
	advance := func(next screeningState) {
		uc.log.Info("screening transition",
			zap.String("email", email),
			zap.String("from", st.String()),
			zap.String("to", next.String()),
		)
		st = next
	}

	cvText, err := uc.extractor.FromURL(ctx, candidate.ResumeURL)
	if err != nil {
		return nil, fmt.Errorf("extract resume: %w", err)
	}
	advance(stateExtracted)

	cvSummary := uc.summarizer.SummarizeResume(ctx, cvText)
	advance(stateSummarized)

	matchingScore, err := uc.matcher.Match(ctx, job.JDSummary, cvSummary)
	if err != nil {
		return nil, err
	}
	advance(stateMatched)

	var notification *model.Notification

	if matchingScore < job.Threshold {
		advance(stateRejectedByMatch)
		notification = uc.notifier.RejectionEmailInitial(ctx, company.Name, candidateName, job.JDSummary, cvSummary)

		candidate.Status = model.StatusRejected
		candidate.Analysis = &model.Analysis{
			CVSummary:        cvSummary,
			MatchingScore:    matchingScore,
			AIRejectionEmail: notification.Body,
		}
	} else {
		advance(stateFinalCheck)
		finalCheckResult := uc.validator.DetailedReport(ctx, cvSummary)
		finalScore, err := uc.validator.Score(ctx, cvSummary)
		if err != nil {
			return nil, err
		}

		if finalScore >= shortlistCutoff {
			advance(stateShortlisted)
			fitSummary := uc.fit.Summarize(ctx, company.Name, job.Title, cvSummary, finalCheckResult)
			notification = uc.notifier.SelectionEmail(ctx, company.Name, candidateName, job.Title, fitSummary)

			candidate.Status = model.StatusShortlisted
			candidate.Analysis = &model.Analysis{
				CVSummary:           cvSummary,
				MatchingScore:       matchingScore,
				FinalScore:          &finalScore,
				FinalCheckResult:    finalCheckResult,
				CandidateFitSummary: fitSummary,
				AISelectionEmail:    notification.Body,
			}
		} else {
			advance(stateRejectedFinal)
			notification = uc.notifier.RejectionEmailFinal(ctx, company.Name, candidateName, finalCheckResult)

			candidate.Status = model.StatusRejected
			candidate.Analysis = &model.Analysis{
				CVSummary:        cvSummary,
				MatchingScore:    matchingScore,
				FinalScore:       &finalScore,
				FinalCheckResult: finalCheckResult,
				AIRejectionEmail: notification.Body,
			}
		}
	}

	// A failed notification is persisted verbatim as the record; there is no
	// retry and no rollback of the decision already made.
	candidate.Notification = notification

	if !st.terminal() {
		return nil, fmt.Errorf("screening ended in non-terminal state %s", st)
	}
	if err := uc.candidates.Update(candidate); err != nil {
		return nil, fmt.Errorf("persist screening outcome: %w", err)
	}

	uc.log.Info("screening complete",
		zap.String("email", email),
		zap.String("outcome", st.String()),
		zap.Int("matching_score", matchingScore),
	)

	switch st {
	case stateShortlisted:
		return &response.ScreeningResult{
			Message:             fmt.Sprintf("Candidate %s added to the database with status 'shortlisted'.", candidateName),
			Status:              "Shortlisted",
			Score:               matchingScore,
			CandidateFitSummary: candidate.Analysis.CandidateFitSummary,
		}, nil
	default:
		return &response.ScreeningResult{
			Message:        fmt.Sprintf("Candidate %s added to the database with status 'rejected'.", candidateName),
			Status:         "Rejected",
			Score:          matchingScore,
			RejectionEmail: notification,
		}, nil
	}
}

// SummarizeJD extracts a job description document, summarizes it, and caches
// the summary on the matching job row. The row is located by its raw
// description text; when nothing matches, no write occurs.
func (uc *ScreeningUsecase) SummarizeJD(ctx context.Context, fileURL string) (string, error) {
	jdText, err := uc.extractor.FromURL(ctx, fileURL)
	if err != nil {
		return "", fmt.Errorf("extract job description: %w", err)
	}

	summary := uc.summarizer.SummarizeJob(ctx, jdText)

	job, err := uc.jobs.FindByDescription(jdText)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrJobNotFound
		}
		return "", fmt.Errorf("lookup job by description: %w", err)
	}

	job.JDSummary = summary
	if err := uc.jobs.Update(job); err != nil {
		return "", fmt.Errorf("persist job summary: %w", err)
	}

	return summary, nil
}

// ParseResume extracts a resume document and returns the fixed-schema JSON
// produced by the parsing agent.
func (uc *ScreeningUsecase) ParseResume(ctx context.Context, fileURL string) (string, error) {
	cvText, err := uc.extractor.FromURL(ctx, fileURL)
	if err != nil {
		return "", fmt.Errorf("extract resume: %w", err)
	}
	return uc.parser.Parse(ctx, cvText)
}
