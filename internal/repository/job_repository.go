package repository

import (
	"github.com/pgvector/pgvector-go"
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// SearchJobs returns the topK jobs nearest to the embedding, using the
// pgvector <-> distance operator.
func (r *JobRepository) SearchJobs(embedding pgvector.Vector, topK int) ([]model.Job, error) {
	var jobs []model.Job

	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM jobs
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&jobs).Error

	return jobs, err
}

func (r *JobRepository) CreateJob(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) UpdateJob(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) FindJobByID(id string) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

// ListJobs returns one page of jobs ordered by recency plus the total count.
func (r *JobRepository) ListJobs(page, pageSize int) ([]model.Job, int64, error) {
	var jobs []model.Job
	var total int64

	if err := r.db.Model(&model.Job{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}
