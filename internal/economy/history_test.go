package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCapped(t *testing.T) {
	m, clk := newTestMarket()
	p := Pair{"village", "grain"}

	for i := 0; i < 80; i++ {
		clk.minutes = uint64(i)
		m.recordHistory(p, 10+i)
	}

	points := m.state.History[p]
	require.Len(t, points, maxHistoryEntries)
	assert.Equal(t, 10+30, points[0].Price, "oldest entries dropped first")
	assert.Equal(t, 10+79, points[len(points)-1].Price)
}

func TestPriceTrendRising(t *testing.T) {
	m, clk := newTestMarket()
	p := Pair{"village", "grain"}

	for i, price := range []int{10, 11, 12, 13} {
		clk.minutes = uint64(i * 60)
		m.recordHistory(p, price)
	}

	assert.Equal(t, TrendRising, m.PriceTrend("village", "grain", 7))
}

func TestPriceTrendFalling(t *testing.T) {
	m, clk := newTestMarket()
	p := Pair{"village", "grain"}

	for i, price := range []int{13, 12, 11, 10} {
		clk.minutes = uint64(i * 60)
		m.recordHistory(p, price)
	}

	assert.Equal(t, TrendFalling, m.PriceTrend("village", "grain", 7))
}

func TestPriceTrendStable(t *testing.T) {
	m, clk := newTestMarket()
	p := Pair{"village", "grain"}

	for i, price := range []int{10, 10, 10, 10} {
		clk.minutes = uint64(i * 60)
		m.recordHistory(p, price)
	}

	assert.Equal(t, TrendStable, m.PriceTrend("village", "grain", 7))
}

func TestPriceTrendIgnoresOldEntries(t *testing.T) {
	m, clk := newTestMarket()
	p := Pair{"village", "grain"}

	// An ancient spike outside the window must not count.
	clk.minutes = 0
	m.recordHistory(p, 100)
	clk.minutes = 20 * 1440
	m.recordHistory(p, 10)
	clk.minutes = 20*1440 + 60
	m.recordHistory(p, 10)

	assert.Equal(t, TrendStable, m.PriceTrend("village", "grain", 7))
}

func TestPriceTrendTooLittleData(t *testing.T) {
	m, _ := newTestMarket()

	assert.Equal(t, TrendStable, m.PriceTrend("village", "grain", 7))

	m.recordHistory(Pair{"village", "grain"}, 10)
	assert.Equal(t, TrendStable, m.PriceTrend("village", "grain", 7))
}

func TestPriceStats(t *testing.T) {
	m, clk := newTestMarket()
	p := Pair{"village", "grain"}

	for i, price := range []int{10, 14, 8, 12} {
		clk.minutes = uint64(i * 60)
		m.recordHistory(p, price)
	}

	stats, ok := m.PriceStatsFor("village", "grain")
	require.True(t, ok)
	assert.Equal(t, 8, stats.Min)
	assert.Equal(t, 14, stats.Max)
	assert.Equal(t, 12, stats.Current)
	assert.InDelta(t, 11.0, stats.Avg, 1e-9)

	_, ok = m.PriceStatsFor("village", "silk")
	assert.False(t, ok)
}
