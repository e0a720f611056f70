package service

import (
	"context"
	"fmt"

	"github.com/rahuldohare007/resume-matcher/internal/config"
)

// EmbeddingServiceInterface produces sentence embeddings for similarity
// scoring. Implementations must return vectors of a fixed dimension.
type EmbeddingServiceInterface interface {
	Name() string
	Dimension() int
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// NewEmbeddingService builds the provider selected by EMBEDDING_PROVIDER.
func NewEmbeddingService(ctx context.Context) (EmbeddingServiceInterface, error) {
	cfg := config.LoadEmbeddingConfig()
	switch cfg.Provider {
	case "sbert":
		return NewSbertService(), nil
	case "gemini":
		return NewGeminiService(ctx)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
}
