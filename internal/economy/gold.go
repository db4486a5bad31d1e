package economy

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/talgya/tradewinds/internal/catalog"
)

// Daily merchant gold capacity by market size.
var goldCapacityBySize = map[catalog.MarketSize]int{
	catalog.SizeTiny:   500,
	catalog.SizeSmall:  1500,
	catalog.SizeMedium: 4000,
	catalog.SizeLarge:  10000,
	catalog.SizeGrand:  25000,
}

// GoldCapacity returns the daily gold capacity for a market size, defaulting
// to the small-market figure for unknown sizes.
func GoldCapacity(size catalog.MarketSize) int {
	if v, ok := goldCapacityBySize[size]; ok {
		return v
	}
	return goldCapacityBySize[catalog.SizeSmall]
}

// fundsBand classifies a gold balance for notification purposes. The market
// notifies only on band transitions, never twice for the same state.
type fundsBand int

const (
	bandNormal fundsBand = iota
	bandLow              // Below 25% of capacity, still above zero
	bandEmpty
)

func bandFor(gold, capacity int) fundsBand {
	switch {
	case gold <= 0:
		return bandEmpty
	case gold*4 < capacity:
		return bandLow
	default:
		return bandNormal
	}
}

// ensureGold lazily materializes a location's gold reserve at full capacity
// and returns the balance.
func (m *Market) ensureGold(locationID string) int {
	if gold, ok := m.state.Gold[locationID]; ok {
		return gold
	}
	gold := GoldCapacity(m.sizeOf(locationID))
	m.state.Gold[locationID] = gold
	return gold
}

// Gold returns how much the location's merchant can still pay out today,
// polling the gold day-boundary detector first.
func (m *Market) Gold(locationID string) int {
	m.maybeResetGold()
	return m.ensureGold(locationID)
}

// CanAfford reports whether the merchant can pay the given price.
func (m *Market) CanAfford(locationID string, price int) bool {
	return m.Gold(locationID) >= price
}

// DeductGold drains the merchant's reserve, clamped at zero. Crossing into
// the low-funds band emits one warning; reaching zero emits one out-of-funds
// warning.
func (m *Market) DeductGold(locationID string, amount int) {
	m.maybeResetGold()
	if amount <= 0 {
		return
	}

	current := m.ensureGold(locationID)
	capacity := GoldCapacity(m.sizeOf(locationID))

	next := current - amount
	if next < 0 {
		next = 0
	}
	m.state.Gold[locationID] = next

	before, after := bandFor(current, capacity), bandFor(next, capacity)
	if after == before {
		return
	}
	name := m.locationName(locationID)
	switch after {
	case bandLow:
		m.notify(fmt.Sprintf("%s is running low on gold (%s crowns remaining today)",
			name, humanize.Comma(int64(next))), SeverityWarning)
	case bandEmpty:
		m.notify(fmt.Sprintf("%s has no more gold to spend today", name), SeverityWarning)
	}
}

// CreditGold refills the merchant's reserve, capped at capacity. Excess is
// lost, not banked.
func (m *Market) CreditGold(locationID string, amount int) {
	m.maybeResetGold()
	if amount <= 0 {
		return
	}
	gold := m.ensureGold(locationID) + amount
	if capacity := GoldCapacity(m.sizeOf(locationID)); gold > capacity {
		gold = capacity
	}
	m.state.Gold[locationID] = gold
}

// maybeResetGold is the gold day-boundary detector. Fires once per simulated
// day; same-day re-runs are no-ops.
func (m *Market) maybeResetGold() {
	day := m.clock.Day()
	if day == m.state.LastGoldResetDay {
		return
	}
	m.resetDailyGold()
	m.state.LastGoldResetDay = day
}

// resetDailyGold refills every tracked merchant to full capacity.
func (m *Market) resetDailyGold() {
	for locationID := range m.state.Gold {
		m.state.Gold[locationID] = GoldCapacity(m.sizeOf(locationID))
	}
}
