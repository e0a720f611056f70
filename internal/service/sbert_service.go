package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rahuldohare007/resume-matcher/internal/config"
	"github.com/tidwall/gjson"
)

// defaultSbertDimension matches all-MiniLM-L6-v2.
const defaultSbertDimension = 384

// SbertService embeds text through a sentence-transformers inference server
// (POST /embed with {"inputs": [...]}, response [[f32...], ...]).
type SbertService struct {
	client *resty.Client
	url    string
	model  string
	// dimension is learned from the first response and read concurrently
	// by the health endpoint.
	dimension  atomic.Int32
	MaxRetries int
	BaseDelay  time.Duration
}

func NewSbertService() *SbertService {
	cfg := config.LoadSbertConfig()
	client := resty.New().
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json")
	s := &SbertService{
		client:     client,
		url:        cfg.URL,
		model:      cfg.Model,
		MaxRetries: 3,
		BaseDelay:  time.Second,
	}
	s.dimension.Store(defaultSbertDimension)
	return s
}

func (s *SbertService) Name() string {
	return "sbert/" + s.model
}

func (s *SbertService) Dimension() int {
	return int(s.dimension.Load())
}

func (s *SbertService) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (s *SbertService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts to embed")
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("text at index %d is empty", i)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.BaseDelay * time.Duration(1<<(attempt-1))
			log.Printf("Retry attempt %d/%d for SBERT embed after %v", attempt, s.MaxRetries, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("context done during retry: %w", ctx.Err())
			}
		}

		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(map[string]any{
				"inputs": texts,
				"model":  s.model,
			}).
			Post(s.url + "/embed")
		if err != nil {
			lastErr = err
			continue
		}

		code := resp.StatusCode()
		if code == 429 || code >= 500 {
			lastErr = fmt.Errorf("embedding server returned status %d: %s", code, resp.String())
			continue
		}
		if code != 200 {
			return nil, fmt.Errorf("embedding server returned status %d: %s", code, resp.String())
		}

		vectors, err := parseEmbeddings(resp.String(), len(texts))
		if err != nil {
			return nil, err
		}
		s.dimension.Store(int32(len(vectors[0])))
		return vectors, nil
	}
	return nil, fmt.Errorf("max retries (%d) exceeded for SBERT embed: %w", s.MaxRetries, lastErr)
}

func parseEmbeddings(body string, want int) ([][]float32, error) {
	root := gjson.Parse(body)
	// Some servers wrap the matrix as {"embeddings": [...]}.
	if e := root.Get("embeddings"); e.Exists() {
		root = e
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("unexpected embedding response shape")
	}

	rows := root.Array()
	if len(rows) != want {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(rows), want)
	}

	vectors := make([][]float32, 0, len(rows))
	for i, row := range rows {
		if !row.IsArray() {
			return nil, fmt.Errorf("embedding %d is not an array", i)
		}
		values := row.Array()
		if len(values) == 0 {
			return nil, fmt.Errorf("embedding %d is empty", i)
		}
		vec := make([]float32, len(values))
		for j, v := range values {
			vec[j] = float32(v.Float())
		}
		vectors = append(vectors, vec)
	}
	return vectors, nil
}
