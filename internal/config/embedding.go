package config

import (
	"os"
	"sync"
)

type EmbeddingConfig struct {
	Provider string // "sbert" or "gemini"
	OCR      bool
}

var (
	embeddingConfig *EmbeddingConfig
	embeddingOnce   sync.Once
)

func LoadEmbeddingConfig() *EmbeddingConfig {
	embeddingOnce.Do(func() {
		provider := os.Getenv("EMBEDDING_PROVIDER")
		if provider == "" {
			provider = "sbert"
		}
		embeddingConfig = &EmbeddingConfig{
			Provider: provider,
			OCR:      os.Getenv("EXTRACT_OCR_FALLBACK") == "true",
		}
	})
	return embeddingConfig
}
