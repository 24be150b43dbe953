package app

import (
	"math"

	"quiz-trainer/internal/domain"
)

// Percentage returns correct/total as a percentage rounded to two decimals.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	raw := float64(correct) / float64(total) * 100
	return math.Round(raw*100) / 100
}

// Classify maps a rounded score to its feedback tier.
func Classify(score float64) domain.Tier {
	switch {
	case score >= 100:
		return domain.TierTop
	case score >= 80:
		return domain.TierHigh
	case score >= 50:
		return domain.TierMid
	default:
		return domain.TierLow
	}
}

// Grade classifies a finished attempt. Only an attempt with every answer
// correct reaches the top tier, even when rounding shows 100.00.
func Grade(correct, total int) domain.Tier {
	if total > 0 && correct == total {
		return domain.TierTop
	}
	if tier := Classify(Percentage(correct, total)); tier != domain.TierTop {
		return tier
	}
	return domain.TierHigh
}
