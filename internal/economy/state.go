// Package economy provides the market simulation core: saturation-driven
// pricing, intra-day stock decay, the bounded merchant gold ledger,
// time-of-day modulation, the survival-goods guarantee, and the daily refresh
// orchestration.
package economy

import "sort"

// Pair keys per-(location, item) records. A struct key avoids the collision
// risk of concatenated string ids.
type Pair struct {
	Location string
	Item     string
}

// SaturationRecord accumulates lifetime trade volume for one pair.
// LastUpdate is in sim-minutes.
type SaturationRecord struct {
	BuyVolume  int
	SellVolume int
	LastUpdate uint64
}

// PricePoint is one entry in a pair's price history.
type PricePoint struct {
	Price  int    `json:"price"`
	Minute uint64 `json:"minute"`
}

// State is the complete mutable economy state for one save slot. It is
// created at new-game or load, owned by the session, and passed explicitly to
// every component; there is no package-level state.
type State struct {
	Saturation map[Pair]*SaturationRecord
	Stock      map[Pair]int // Nominal stock; available stock is derived
	Gold       map[string]int
	Prices     map[Pair]int
	History    map[Pair][]PricePoint

	// Boundary-detector counters. The gold and stock day resets are tracked
	// independently, as is the morning refresh hour.
	LastGoldResetDay  int
	LastStockResetDay int
	LastRefreshHour   int
}

// NewState returns an empty economy state.
func NewState() *State {
	return &State{
		Saturation:      make(map[Pair]*SaturationRecord),
		Stock:           make(map[Pair]int),
		Gold:            make(map[string]int),
		Prices:          make(map[Pair]int),
		History:         make(map[Pair][]PricePoint),
		LastRefreshHour: -1,
	}
}

// Reset wipes the state wholesale, as on a new game.
func (s *State) Reset() {
	s.Saturation = make(map[Pair]*SaturationRecord)
	s.Stock = make(map[Pair]int)
	s.Gold = make(map[string]int)
	s.Prices = make(map[Pair]int)
	s.History = make(map[Pair][]PricePoint)
	s.LastGoldResetDay = 0
	s.LastStockResetDay = 0
	s.LastRefreshHour = -1
}

// Snapshot is the serializable form of State. Pair-keyed maps flatten into
// slices with explicit location/item fields so the JSON stays readable and
// id contents never clash with a separator.
type Snapshot struct {
	Saturation []SaturationSnap `json:"saturation"`
	Stock      []StockSnap      `json:"stock"`
	Gold       map[string]int   `json:"gold"`
	Prices     []PriceSnap      `json:"prices"`
	History    []HistorySnap    `json:"history"`

	LastGoldResetDay  int `json:"last_gold_reset_day"`
	LastStockResetDay int `json:"last_stock_reset_day"`
	LastRefreshHour   int `json:"last_refresh_hour"`
}

type SaturationSnap struct {
	Location   string `json:"location"`
	Item       string `json:"item"`
	BuyVolume  int    `json:"buy_volume"`
	SellVolume int    `json:"sell_volume"`
	LastUpdate uint64 `json:"last_update"`
}

type StockSnap struct {
	Location string `json:"location"`
	Item     string `json:"item"`
	Nominal  int    `json:"nominal"`
}

type PriceSnap struct {
	Location string `json:"location"`
	Item     string `json:"item"`
	Price    int    `json:"price"`
}

type HistorySnap struct {
	Location string       `json:"location"`
	Item     string       `json:"item"`
	Points   []PricePoint `json:"points"`
}

// Snapshot converts the state into its serializable form. Entries are sorted
// so repeated saves of the same state produce identical blobs.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Gold:              make(map[string]int, len(s.Gold)),
		LastGoldResetDay:  s.LastGoldResetDay,
		LastStockResetDay: s.LastStockResetDay,
		LastRefreshHour:   s.LastRefreshHour,
	}

	for pair, rec := range s.Saturation {
		snap.Saturation = append(snap.Saturation, SaturationSnap{
			Location:   pair.Location,
			Item:       pair.Item,
			BuyVolume:  rec.BuyVolume,
			SellVolume: rec.SellVolume,
			LastUpdate: rec.LastUpdate,
		})
	}
	for pair, nominal := range s.Stock {
		snap.Stock = append(snap.Stock, StockSnap{
			Location: pair.Location,
			Item:     pair.Item,
			Nominal:  nominal,
		})
	}
	for loc, gold := range s.Gold {
		snap.Gold[loc] = gold
	}
	for pair, price := range s.Prices {
		snap.Prices = append(snap.Prices, PriceSnap{
			Location: pair.Location,
			Item:     pair.Item,
			Price:    price,
		})
	}
	for pair, points := range s.History {
		snap.History = append(snap.History, HistorySnap{
			Location: pair.Location,
			Item:     pair.Item,
			Points:   append([]PricePoint(nil), points...),
		})
	}

	sort.Slice(snap.Saturation, func(i, j int) bool {
		a, b := snap.Saturation[i], snap.Saturation[j]
		return a.Location < b.Location || (a.Location == b.Location && a.Item < b.Item)
	})
	sort.Slice(snap.Stock, func(i, j int) bool {
		a, b := snap.Stock[i], snap.Stock[j]
		return a.Location < b.Location || (a.Location == b.Location && a.Item < b.Item)
	})
	sort.Slice(snap.Prices, func(i, j int) bool {
		a, b := snap.Prices[i], snap.Prices[j]
		return a.Location < b.Location || (a.Location == b.Location && a.Item < b.Item)
	})
	sort.Slice(snap.History, func(i, j int) bool {
		a, b := snap.History[i], snap.History[j]
		return a.Location < b.Location || (a.Location == b.Location && a.Item < b.Item)
	})

	return snap
}

// FromSnapshot rebuilds a State from its serialized form. A nil snapshot
// yields a fresh state.
func FromSnapshot(snap *Snapshot) *State {
	s := NewState()
	if snap == nil {
		return s
	}

	for _, rec := range snap.Saturation {
		s.Saturation[Pair{rec.Location, rec.Item}] = &SaturationRecord{
			BuyVolume:  rec.BuyVolume,
			SellVolume: rec.SellVolume,
			LastUpdate: rec.LastUpdate,
		}
	}
	for _, rec := range snap.Stock {
		s.Stock[Pair{rec.Location, rec.Item}] = rec.Nominal
	}
	for loc, gold := range snap.Gold {
		s.Gold[loc] = gold
	}
	for _, rec := range snap.Prices {
		s.Prices[Pair{rec.Location, rec.Item}] = rec.Price
	}
	for _, rec := range snap.History {
		s.History[Pair{rec.Location, rec.Item}] = append([]PricePoint(nil), rec.Points...)
	}
	s.LastGoldResetDay = snap.LastGoldResetDay
	s.LastStockResetDay = snap.LastStockResetDay
	s.LastRefreshHour = snap.LastRefreshHour
	return s
}
