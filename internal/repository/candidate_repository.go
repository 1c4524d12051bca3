package repository

import (
	"github.com/hireflow/screening/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) FindByEmail(email string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.First(&c, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update persists the candidate row. The screening pipeline calls this
// exactly once per request, at a terminal state.
func (r *CandidateRepository) Update(c *model.Candidate) error {
	return r.db.Save(c).Error
}
