package repository

import (
	"github.com/google/uuid"
	"github.com/hireflow/screening/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) FindByID(id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// FindByDescription matches a job by its raw description text, used by the
// JD summarization flow to locate the row the uploaded document belongs to.
func (r *JobRepository) FindByDescription(description string) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "description = ?", description).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) Update(j *model.Job) error {
	return r.db.Save(j).Error
}
