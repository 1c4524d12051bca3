package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Candidate statuses written by the screening pipeline.
const (
	StatusPending     = "pending"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

type Candidate struct {
	ID           uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName    string        `gorm:"type:text" json:"first_name"`
	LastName     string        `gorm:"type:text" json:"last_name"`
	Email        string        `gorm:"type:text;uniqueIndex" json:"email"`
	ResumeURL    string        `gorm:"type:text" json:"resume_url"`
	Status       string        `gorm:"type:varchar(50)" json:"status"` // pending, shortlisted, rejected
	Analysis     *Analysis     `gorm:"type:jsonb" json:"analysis"`
	Notification *Notification `gorm:"type:jsonb" json:"notification"`
	JobID        uuid.UUID     `gorm:"type:uuid" json:"job_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (c *Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Analysis is the screening outcome stored on the candidate row. Fields are
// populated only on the branch that actually ran: a below-threshold rejection
// carries just the summary and matching score, a final-phase decision adds the
// validation outputs, and only a shortlist carries the fit summary.
type Analysis struct {
	CVSummary           string `json:"cv_summary"`
	MatchingScore       int    `json:"matching_score"`
	FinalScore          *int   `json:"final_score,omitempty"`
	FinalCheckResult    string `json:"final_check_result,omitempty"`
	CandidateFitSummary string `json:"candidate_fit_summary,omitempty"`
	AISelectionEmail    string `json:"ai_selection_email,omitempty"`
	AIRejectionEmail    string `json:"ai_rejection_email,omitempty"`
}

func (a *Analysis) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *Analysis) Scan(value any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported jsonb source type %T", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, a)
}

// Notification is the generated candidate email. On success all four content
// fields are set; when generation fails the whole record is replaced by the
// Error/Details pair instead.
type Notification struct {
	Subject  string `json:"subject,omitempty"`
	Greeting string `json:"greeting,omitempty"`
	Body     string `json:"body,omitempty"`
	Closing  string `json:"closing,omitempty"`
	Error    string `json:"error,omitempty"`
	Details  string `json:"details,omitempty"`
}

func (n *Notification) Value() (driver.Value, error) {
	if n == nil {
		return nil, nil
	}
	return json.Marshal(n)
}

func (n *Notification) Scan(value any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported jsonb source type %T", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, n)
}

func (n *Notification) Failed() bool {
	return n != nil && n.Error != ""
}
