package engine

import (
	"log/slog"

	"github.com/talgya/tradewinds/internal/clock"
	"github.com/talgya/tradewinds/internal/economy"
	"github.com/talgya/tradewinds/internal/persistence"
)

// Session owns one save slot's economy for the lifetime of a game session:
// created at new-game or load, destroyed at session end. It serializes all
// economy mutation onto the engine's tick callbacks; the market itself does
// no locking.
type Session struct {
	Clock  *clock.SimClock
	Market *economy.Market
	DB     *persistence.DB // Optional; nil disables autosave
	SlotID string

	priceInterval uint64
}

// NewSession wires a session. priceInterval is the price refresh cadence in
// sim-minutes; values below 1 fall back to the default cadence.
func NewSession(clk *clock.SimClock, market *economy.Market, priceInterval int) *Session {
	if priceInterval < 1 {
		priceInterval = economy.DefaultParams().PriceInterval
	}
	return &Session{
		Clock:         clk,
		Market:        market,
		priceInterval: uint64(priceInterval),
	}
}

// Start runs the session-start guarantees: survival goods everywhere, then
// price tracking for every sell list.
func (s *Session) Start() {
	s.Market.EnsureAllSurvivalGoods()
	s.Market.TrackAllPrices()
}

// TickMinute runs every tick: advance the clock, poll the refresh detectors,
// and recompute prices on the cadence (skipped while paused).
func (s *Session) TickMinute(tick uint64) {
	s.Clock.SetTick(tick)
	s.Market.Tick()

	if !s.Clock.Paused() && tick%s.priceInterval == 0 {
		s.Market.RefreshPrices()
	}
}

// TickHour logs the hourly market pulse.
func (s *Session) TickHour(tick uint64) {
	slog.Debug("market pulse",
		"time", SimTime(tick),
		"period", economy.TimePeriodName(s.Clock.Hour()),
		"tracked_prices", len(s.Market.State().Prices),
	)
}

// TickDay logs the daily report and autosaves when a store is attached.
func (s *Session) TickDay(tick uint64) {
	st := s.Market.State()
	slog.Info("daily market report",
		"time", SimTime(tick),
		"day", s.Clock.Day(),
		"tracked_prices", len(st.Prices),
		"tracked_stock", len(st.Stock),
		"tracked_merchants", len(st.Gold),
		"saturation_records", len(st.Saturation),
	)

	if s.DB != nil && s.SlotID != "" {
		if err := s.DB.SaveState(s.SlotID, st, tick); err != nil {
			slog.Error("daily save failed", "slot", s.SlotID, "error", err)
		}
	}
}

// Save persists the session state immediately (shutdown path).
func (s *Session) Save(tick uint64) {
	if s.DB == nil || s.SlotID == "" {
		return
	}
	if err := s.DB.SaveState(s.SlotID, s.Market.State(), tick); err != nil {
		slog.Error("save failed", "slot", s.SlotID, "error", err)
	}
}
