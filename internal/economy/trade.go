package economy

// Receipt is the result of a settled trade. A zero receipt means nothing
// changed hands; trade paths never fail harder than that.
type Receipt struct {
	Filled    int // Units actually traded
	UnitPrice int // Quoted price per unit, time-of-day included
	Total     int // Crowns paid or received
}

// Buy settles a player purchase: quantity is clamped to the available stock,
// the shelf is drained, pressure rises, and the player's payment refills the
// merchant's purse.
func (m *Market) Buy(locationID, itemID string, quantity int) Receipt {
	if quantity <= 0 {
		return Receipt{}
	}

	available := m.AvailableStock(locationID, itemID)
	if available <= 0 {
		return Receipt{}
	}
	if quantity > available {
		quantity = available
	}

	unit := m.QuotePrice(locationID, itemID)
	if unit <= 0 {
		return Receipt{}
	}

	m.ReduceStock(locationID, itemID, quantity)
	m.RecordTrade(locationID, itemID, quantity)
	m.CreditGold(locationID, unit*quantity)
	m.recordHistory(Pair{locationID, itemID}, unit)

	return Receipt{Filled: quantity, UnitPrice: unit, Total: unit * quantity}
}

// Sell settles a player sale: quantity is clamped to what the merchant can
// still pay for, the merchant's gold drains, half the goods return to the
// shelf, and pressure rises on the sell side.
func (m *Market) Sell(locationID, itemID string, quantity int) Receipt {
	if quantity <= 0 {
		return Receipt{}
	}

	unit := m.QuotePrice(locationID, itemID)
	if unit <= 0 {
		return Receipt{}
	}

	affordable := m.Gold(locationID) / unit
	if affordable <= 0 {
		return Receipt{}
	}
	if quantity > affordable {
		quantity = affordable
	}

	m.DeductGold(locationID, unit*quantity)
	m.AddStock(locationID, itemID, quantity)
	m.RecordTrade(locationID, itemID, -quantity)
	m.recordHistory(Pair{locationID, itemID}, unit)

	return Receipt{Filled: quantity, UnitPrice: unit, Total: unit * quantity}
}
