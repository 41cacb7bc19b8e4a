package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Tier
		want int
	}{
		{"low below high", Low, High, -1},
		{"high above low", High, Low, 1},
		{"medium equals medium", Medium, Medium, 0},
		{"low below medium", Low, Medium, -1},
		{"high above medium", High, Medium, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	all := Tiers()
	for _, a := range all {
		for _, b := range all {
			assert.Equal(t, -Compare(b, a), Compare(a, b), "antisymmetry for %s,%s", a, b)
			for _, c := range all {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "transitivity for %s,%s,%s", a, b, c)
				}
			}
		}
	}
}

func TestRank(t *testing.T) {
	assert.Equal(t, 1, Low.Rank())
	assert.Equal(t, 2, Medium.Rank())
	assert.Equal(t, 3, High.Rank())
	assert.Equal(t, 0, Tier("ultra").Rank())
	assert.False(t, Tier("").Valid())
}

func TestParse(t *testing.T) {
	tier, err := Parse(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, High, tier)

	_, err = Parse("ultra")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestMax(t *testing.T) {
	assert.Equal(t, High, Max(Low, High))
	assert.Equal(t, Medium, Max(Medium, Low))
	assert.Equal(t, Low, Max(Low, Low))
}
