package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
)

func TestComputeTier(t *testing.T) {
	tests := []struct {
		name   string
		points int64
		want   string
	}{
		{"zero points", 0, models.TierBronze},
		{"just below silver", 499, models.TierBronze},
		{"silver boundary", 500, models.TierSilver},
		{"mid silver", 1000, models.TierSilver},
		{"just below gold", 1499, models.TierSilver},
		{"gold boundary", 1500, models.TierGold},
		{"well above gold", 100000, models.TierGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTier(tt.points))
		})
	}
}

func TestTierDiscountPercent(t *testing.T) {
	assert.Equal(t, float64(20), TierDiscountPercent(models.TierGold))
	assert.Equal(t, float64(10), TierDiscountPercent(models.TierSilver))
	assert.Equal(t, float64(0), TierDiscountPercent(models.TierBronze))
	assert.Equal(t, float64(0), TierDiscountPercent("unknown"))
}

func TestPointsForTotal(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  int64
	}{
		{"hundred dollars", 100.00, 1000},
		{"fractional total floors", 10.07, 100},
		{"ten cents", 0.10, 1},
		{"zero", 0, 0},
		{"negative", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsForTotal(tt.total))
		})
	}
}
