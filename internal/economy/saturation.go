package economy

import (
	"math"

	"github.com/talgya/tradewinds/internal/clock"
)

// Saturation pressure decays by 5% per idle sim-day, floored at half weight.
// A heavily traded good halves its effective pressure in roughly ten quiet
// days but never forgets entirely.
const (
	pressureDecayPerDay = 0.05
	pressureDecayFloor  = 0.5
)

// RecordTrade accumulates trade volume for a pair. Positive quantity is a
// player purchase, negative a player sale; both add churn. The record is
// created lazily and never removed. A zero quantity is a no-op.
func (m *Market) RecordTrade(locationID, itemID string, quantity int) {
	if quantity == 0 {
		return
	}
	p := Pair{locationID, itemID}
	rec := m.state.Saturation[p]
	if rec == nil {
		rec = &SaturationRecord{}
		m.state.Saturation[p] = rec
	}
	if quantity > 0 {
		rec.BuyVolume += quantity
	} else {
		rec.SellVolume += -quantity
	}
	rec.LastUpdate = m.clock.Minutes()
}

// Pressure returns the decayed market pressure for a pair: lifetime buy+sell
// volume scaled down as sim-days pass without trading.
func (m *Market) Pressure(locationID, itemID string) float64 {
	rec := m.state.Saturation[Pair{locationID, itemID}]
	if rec == nil {
		return 0
	}

	total := float64(rec.BuyVolume + rec.SellVolume)

	// A restored save can position the clock before the stamp; treat that
	// as no elapsed time rather than underflowing.
	var elapsed uint64
	if now := m.clock.Minutes(); now > rec.LastUpdate {
		elapsed = now - rec.LastUpdate
	}
	days := float64(elapsed) / float64(clock.MinutesPerDay)
	decay := math.Max(pressureDecayFloor, 1-days*pressureDecayPerDay)

	return total * decay
}
