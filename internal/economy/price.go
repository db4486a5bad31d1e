package economy

import "math"

// Price band: the computed sale price never leaves [0.5×base, 2×base],
// whatever the saturation feedback does.
const (
	priceFloorRatio   = 0.5
	priceCeilingRatio = 2.0
)

// computePrice derives the current price for a pair from its base price,
// saturation pressure and volatility noise. Returns 0 when the item catalog
// is missing or does not know the item.
func (m *Market) computePrice(p Pair) int {
	if m.items == nil {
		return 0
	}
	base := m.items.BasePrice(p.Item)
	if base <= 0 {
		return 0
	}

	modifier := 1.0
	if pressure := m.Pressure(p.Location, p.Item); pressure > m.params.SaturationThreshold {
		modifier = math.Max(0.1, 1-((pressure-m.params.SaturationThreshold)/100)*0.3)
	}

	noise := 0.0
	if m.params.Volatility > 0 {
		noise = m.rand.Drift(pairChannel(p), m.clock.Minutes()) * m.params.Volatility
	}

	price := int(math.Round(float64(base) * modifier * (1 + noise)))

	floor := int(math.Round(float64(base) * priceFloorRatio))
	ceiling := int(math.Round(float64(base) * priceCeilingRatio))
	if price < floor {
		price = floor
	}
	if price > ceiling {
		price = ceiling
	}
	return price
}

// PriceFor returns the tracked saturation-adjusted price for a pair, starting
// tracking on first touch. Unknown items yield 0.
func (m *Market) PriceFor(locationID, itemID string) int {
	p := Pair{locationID, itemID}
	if price, ok := m.state.Prices[p]; ok {
		return price
	}
	price := m.computePrice(p)
	if price > 0 {
		m.state.Prices[p] = price
	}
	return price
}

// QuotePrice is the price actually shown and settled: the tracked price with
// the time-of-day modifier applied on top. The modifier is never baked into
// the stored price.
func (m *Market) QuotePrice(locationID, itemID string) int {
	return m.timeAdjusted(m.PriceFor(locationID, itemID), itemID)
}

// RefreshPrices recomputes every tracked pair. Runs on the price cadence from
// the session tick and is gated off while the clock is paused, so displayed
// prices stay live without a wall-clock timer.
func (m *Market) RefreshPrices() {
	if m.clock.Paused() {
		return
	}
	for p := range m.state.Prices {
		price := m.computePrice(p)
		if price <= 0 {
			continue
		}
		m.state.Prices[p] = price
		m.recordHistory(p, price)
	}
}

// TrackPrices starts price tracking for everything a location currently
// sells. Safe to call repeatedly; already-tracked pairs keep their price.
func (m *Market) TrackPrices(locationID string) {
	if m.world == nil {
		return
	}
	loc := m.world.Location(locationID)
	if loc == nil {
		return
	}
	for _, itemID := range loc.Sells {
		m.PriceFor(locationID, itemID)
	}
}

// TrackAllPrices starts price tracking for every location's sell list.
func (m *Market) TrackAllPrices() {
	if m.world == nil {
		return
	}
	for _, loc := range m.world.Locations() {
		m.TrackPrices(loc.ID)
	}
}
