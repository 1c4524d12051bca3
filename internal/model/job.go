package model

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"type:text" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Role        string    `gorm:"type:text" json:"role"`
	Threshold   int       `json:"threshold"` // minimum matching score (0-100) to pass initial screening
	JDSummary   string    `gorm:"type:text" json:"jd_summary"`
	CompanyID   uuid.UUID `gorm:"type:uuid" json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
