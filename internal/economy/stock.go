package economy

import (
	"math"

	"github.com/talgya/tradewinds/internal/catalog"
)

// The market day runs 06:00 to midnight. Shelves decay linearly from full at
// opening to 25% by closing.
const (
	marketOpenHour = 6
	marketDayHours = 18
	stockDecayRate = 0.75
)

// Stock baselines by market size. First initialization, the nightly reset and
// the morning refresh intentionally use different tables; the morning restock
// runs a little richer than the midnight one.
var (
	initStockBaseline = map[catalog.MarketSize]int{
		catalog.SizeTiny:   12,
		catalog.SizeSmall:  25,
		catalog.SizeMedium: 45,
		catalog.SizeLarge:  65,
		catalog.SizeGrand:  90,
	}
	morningStockBaseline = map[catalog.MarketSize]int{
		catalog.SizeTiny:   15,
		catalog.SizeSmall:  28,
		catalog.SizeMedium: 50,
		catalog.SizeLarge:  70,
		catalog.SizeGrand:  100,
	}
	maxStockBySize = map[catalog.MarketSize]int{
		catalog.SizeTiny:   25,
		catalog.SizeSmall:  40,
		catalog.SizeMedium: 70,
		catalog.SizeLarge:  110,
		catalog.SizeGrand:  150,
	}
)

func initBaseline(size catalog.MarketSize) int {
	if v, ok := initStockBaseline[size]; ok {
		return v
	}
	return initStockBaseline[catalog.SizeSmall]
}

func morningBaseline(size catalog.MarketSize) int {
	if v, ok := morningStockBaseline[size]; ok {
		return v
	}
	return morningStockBaseline[catalog.SizeSmall]
}

func maxStock(size catalog.MarketSize) int {
	if v, ok := maxStockBySize[size]; ok {
		return v
	}
	return maxStockBySize[catalog.SizeSmall]
}

// ensureStock lazily materializes a pair's nominal stock at the first-contact
// baseline plus up to 50% variance, and returns the nominal value.
func (m *Market) ensureStock(p Pair) int {
	if nominal, ok := m.state.Stock[p]; ok {
		return nominal
	}
	base := initBaseline(m.sizeOf(p.Location))
	nominal := base + m.rand.Intn(base/2+1)
	m.state.Stock[p] = nominal
	return nominal
}

// decayedStock applies the intra-day decay curve to a nominal figure. The
// floor keeps a stocked shelf visibly non-empty; only purchases drain it to
// zero.
func decayedStock(nominal, hour int) int {
	if nominal <= 0 {
		return 0
	}
	hours := hour - marketOpenHour
	if hours < 0 {
		hours = 0
	}
	if hours > marketDayHours {
		hours = marketDayHours
	}
	progress := float64(hours) / marketDayHours
	multiplier := 1 - stockDecayRate*progress

	available := int(math.Floor(float64(nominal) * multiplier))
	if available < 1 {
		available = 1
	}
	return available
}

// AvailableStock returns the currently purchasable quantity for a pair,
// polling the stock day-boundary detector first. Zero only when the nominal
// stock is zero.
func (m *Market) AvailableStock(locationID, itemID string) int {
	m.maybeResetStock()
	nominal := m.ensureStock(Pair{locationID, itemID})
	return decayedStock(nominal, m.clock.Hour())
}

// ReduceStock removes purchased goods from the shelf, floored at zero.
// Non-positive amounts are no-ops.
func (m *Market) ReduceStock(locationID, itemID string, amount int) {
	if amount <= 0 {
		return
	}
	p := Pair{locationID, itemID}
	nominal := m.ensureStock(p) - amount
	if nominal < 0 {
		nominal = 0
	}
	m.state.Stock[p] = nominal
}

// AddStock returns goods the player sold to the merchant. Only half re-enter
// inventory (spoilage and resale loss), capped by market size.
func (m *Market) AddStock(locationID, itemID string, amount int) {
	if amount <= 0 {
		return
	}
	p := Pair{locationID, itemID}
	nominal := m.ensureStock(p) + amount/2
	if limit := maxStock(m.sizeOf(p.Location)); nominal > limit {
		nominal = limit
	}
	m.state.Stock[p] = nominal
}

// maybeResetStock is the stock day-boundary detector. It fires once per
// simulated day; re-running within the same day is a no-op.
func (m *Market) maybeResetStock() {
	day := m.clock.Day()
	if day == m.state.LastStockResetDay {
		return
	}
	m.resetDailyStock()
	m.state.LastStockResetDay = day
}

// resetDailyStock restocks every tracked pair overnight: a fresh baseline
// with up to 30% variance, plus a quarter of the leftover inventory.
func (m *Market) resetDailyStock() {
	for p, nominal := range m.state.Stock {
		base := initBaseline(m.sizeOf(p.Location))
		variance := m.rand.Intn(int(float64(base)*0.3) + 1)
		m.state.Stock[p] = base + variance + nominal/4
	}
}

// refreshAllStock is the richer 8 a.m. restock: every tracked pair goes to
// the morning baseline with up to 30% variance (no leftover carry), and every
// location gets seed stock for goods in the essential set.
func (m *Market) refreshAllStock() {
	for p := range m.state.Stock {
		base := morningBaseline(m.sizeOf(p.Location))
		variance := m.rand.Intn(int(float64(base)*0.3) + 1)
		m.state.Stock[p] = base + variance
	}

	if m.world == nil {
		return
	}
	for _, loc := range m.world.Locations() {
		base := morningBaseline(loc.Size)
		for _, itemID := range EssentialGoods {
			p := Pair{loc.ID, itemID}
			if m.state.Stock[p] == 0 {
				m.state.Stock[p] = base + m.rand.Intn(5)
			}
		}
	}
}
