package matcher

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between two embedding
// vectors. Mismatched lengths and zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Clamp01 bounds a score to the [0, 1] range.
func Clamp01(score float64) float64 {
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

// Category buckets a similarity score into a match quality label.
func Category(score float64) string {
	switch {
	case score >= 0.8:
		return "Excellent Match"
	case score >= 0.6:
		return "Good Match"
	case score >= 0.4:
		return "Fair Match"
	default:
		return "Poor Match"
	}
}

// Confidence labels how reliable the score is considered.
func Confidence(score float64) string {
	switch {
	case score >= 0.7:
		return "high"
	case score >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

// FormatScore renders a score either as a percentage or a raw value.
func FormatScore(score float64, asPercentage bool) string {
	if asPercentage {
		return fmt.Sprintf("%.2f%%", score*100)
	}
	return fmt.Sprintf("%.4f", score)
}
