package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchTaskDTO struct {
	ID              uuid.UUID       `json:"id"`
	JobID           uuid.UUID       `json:"job_id"`
	Status          string          `json:"status"` // processing, completed, failed
	SimilarityScore float64         `json:"similarity_score"`
	KeywordScore    float64         `json:"keyword_score"`
	Category        string          `json:"category"`
	MatchedKeywords json.RawMessage `json:"matched_keywords"`
	MissingKeywords json.RawMessage `json:"missing_keywords"`
	FailReason      string          `json:"fail_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
