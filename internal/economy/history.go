package economy

import (
	"math"

	"github.com/talgya/tradewinds/internal/clock"
)

// maxHistoryEntries caps the per-pair price history ring.
const maxHistoryEntries = 50

// Trend classifies recent price movement for a pair.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// PriceStats summarizes a pair's recorded price history.
type PriceStats struct {
	Min     int
	Max     int
	Current int
	Avg     float64
}

// recordHistory appends a price observation, dropping the oldest entries
// beyond the cap.
func (m *Market) recordHistory(p Pair, price int) {
	points := append(m.state.History[p], PricePoint{Price: price, Minute: m.clock.Minutes()})
	if len(points) > maxHistoryEntries {
		points = points[len(points)-maxHistoryEntries:]
	}
	m.state.History[p] = points
}

// PriceTrend classifies the price movement for a pair over the last given
// number of sim-days. With fewer than two recent observations the trend is
// stable.
func (m *Market) PriceTrend(locationID, itemID string, days int) Trend {
	points := m.state.History[Pair{locationID, itemID}]
	if len(points) < 2 {
		return TrendStable
	}

	now := m.clock.Minutes()
	window := uint64(days) * clock.MinutesPerDay
	var recent []PricePoint
	for _, pt := range points {
		if pt.Minute > now || now-pt.Minute <= window {
			recent = append(recent, pt)
		}
	}
	if len(recent) < 2 {
		return TrendStable
	}

	first := float64(recent[0].Price)
	last := float64(recent[len(recent)-1].Price)
	sum := 0.0
	for _, pt := range recent {
		sum += float64(pt.Price)
	}
	avg := sum / float64(len(recent))

	switch {
	case last > first*1.05:
		return TrendRising
	case last < first*0.95:
		return TrendFalling
	case math.Abs(last-avg) < avg*0.02:
		return TrendStable
	case last > avg:
		return TrendRising
	default:
		return TrendFalling
	}
}

// PriceStatsFor returns min/max/average/current over a pair's recorded
// history. The second return is false when no history exists.
func (m *Market) PriceStatsFor(locationID, itemID string) (PriceStats, bool) {
	points := m.state.History[Pair{locationID, itemID}]
	if len(points) == 0 {
		return PriceStats{}, false
	}

	stats := PriceStats{Min: points[0].Price, Max: points[0].Price}
	sum := 0
	for _, pt := range points {
		if pt.Price < stats.Min {
			stats.Min = pt.Price
		}
		if pt.Price > stats.Max {
			stats.Max = pt.Price
		}
		sum += pt.Price
	}
	stats.Current = points[len(points)-1].Price
	stats.Avg = float64(sum) / float64(len(points))
	return stats, true
}
