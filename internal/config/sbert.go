package config

import (
	"os"
	"sync"
)

type SbertConfig struct {
	URL   string
	Model string
}

var (
	sbertConfig *SbertConfig
	sbertOnce   sync.Once
)

func LoadSbertConfig() *SbertConfig {
	sbertOnce.Do(func() {
		url := os.Getenv("SBERT_URL")
		if url == "" {
			url = "http://localhost:8080"
		}
		model := os.Getenv("SBERT_MODEL")
		if model == "" {
			model = "all-MiniLM-L6-v2"
		}
		sbertConfig = &SbertConfig{
			URL:   url,
			Model: model,
		}
	})
	return sbertConfig
}
