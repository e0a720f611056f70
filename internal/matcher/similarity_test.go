package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0.0},
		{"empty", nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-6)
		})
	}
}

func TestCosineSimilarity_ScaleInvariant(t *testing.T) {
	a := []float32{0.5, 1.5, -2.0}
	b := []float32{1.0, 3.0, -4.0} // a scaled by 2

	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-6)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.42, Clamp01(0.42))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "Excellent Match"},
		{0.8, "Excellent Match"},
		{0.79, "Good Match"},
		{0.6, "Good Match"},
		{0.45, "Fair Match"},
		{0.4, "Fair Match"},
		{0.1, "Poor Match"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Category(tt.score), "score %v", tt.score)
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, "high", Confidence(0.7))
	assert.Equal(t, "medium", Confidence(0.5))
	assert.Equal(t, "low", Confidence(0.2))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "87.65%", FormatScore(0.8765, true))
	assert.Equal(t, "0.8765", FormatScore(0.8765, false))
}
