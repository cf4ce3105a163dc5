package services

import (
	"math"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
)

// Tier thresholds in loyalty points.
const (
	TierSilverThreshold = 500
	TierGoldThreshold   = 1500
)

// Points earned per currency unit spent.
const PointsPerUnit = 10

// ComputeTier maps a loyalty point total to a membership tier. Pure;
// must be re-run after every point mutation so the stored tier never
// drifts from the total it was derived from.
func ComputeTier(points int64) string {
	switch {
	case points >= TierGoldThreshold:
		return models.TierGold
	case points >= TierSilverThreshold:
		return models.TierSilver
	default:
		return models.TierBronze
	}
}

// TierDiscountPercent returns the discount rate a tier is entitled to.
func TierDiscountPercent(tier string) float64 {
	switch tier {
	case models.TierGold:
		return 20
	case models.TierSilver:
		return 10
	default:
		return 0
	}
}

// PointsForTotal converts an order total into earned points.
func PointsForTotal(total float64) int64 {
	if total <= 0 {
		return 0
	}
	return int64(math.Floor(total * PointsPerUnit))
}
