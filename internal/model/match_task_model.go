package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusProcessing = "processing"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
)

type MatchTask struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ResumeText      string    `gorm:"type:text" json:"resume_text"`
	JobID           uuid.UUID `gorm:"type:uuid" json:"job_id"`
	Status          string    `gorm:"type:varchar(50)" json:"status"` // processing, completed, failed
	SimilarityScore float64   `gorm:"type:float" json:"similarity_score"`
	KeywordScore    float64   `gorm:"type:float" json:"keyword_score"`
	Category        string    `gorm:"type:varchar(50)" json:"category"`
	MatchedKeywords string    `gorm:"type:jsonb" json:"matched_keywords"`
	MissingKeywords string    `gorm:"type:jsonb" json:"missing_keywords"`
	FailReason      string    `gorm:"type:text" json:"fail_reason"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (t *MatchTask) TableName() string {
	return "match_tasks"
}
