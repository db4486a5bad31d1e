// Command tradesim runs the Tradewinds market simulation standalone: a host
// harness around the economy core, driving it with the tick engine and
// persisting to a save slot.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/clock"
	"github.com/talgya/tradewinds/internal/economy"
	"github.com/talgya/tradewinds/internal/engine"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/infra"
	"github.com/talgya/tradewinds/internal/persistence"
)

// slogNotifier routes merchant notifications into the structured log.
type slogNotifier struct{}

func (slogNotifier) Notify(message string, severity economy.Severity) {
	switch severity {
	case economy.SeverityWarning:
		slog.Warn(message)
	default:
		slog.Info(message)
	}
}

// slogBus logs outbound events; a real host would fan them out to NPC and
// inventory systems.
type slogBus struct{}

func (slogBus) Publish(topic string, payload any) {
	slog.Info("event published", "topic", topic, "payload", payload)
}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	slotName := flag.String("slot", "default", "save slot name")
	newGame := flag.Bool("new", false, "start a new game, wiping the slot")
	flag.Parse()

	cfg, err := infra.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	slog.SetDefault(infra.NewLogger(cfg))

	slog.Info("tradewinds market simulation starting",
		"seed", cfg.Sim.Seed,
		"speed", cfg.Sim.Speed,
	)

	// ── Save store ────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0755)
	db, err := persistence.Open(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open save store", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("save store opened", "path", cfg.Storage.Path)

	// ── Save slot ─────────────────────────────────────────────────────
	var slotID string
	slot, found, err := db.LatestSlot()
	if err != nil {
		slog.Error("failed to list save slots", "error", err)
		os.Exit(1)
	}
	if found && *newGame {
		slog.Info("wiping save slot", "slot", slot.ID, "name", slot.Name)
		if err := db.DeleteSlot(slot.ID); err != nil {
			slog.Error("failed to wipe slot", "error", err)
			os.Exit(1)
		}
		found = false
	}
	if found {
		slotID = slot.ID
		slog.Info("resuming save slot", "slot", slotID, "name", slot.Name)
	} else {
		slotID, err = db.CreateSlot(*slotName)
		if err != nil {
			slog.Error("failed to create save slot", "error", err)
			os.Exit(1)
		}
		slog.Info("created save slot", "slot", slotID, "name", *slotName)
	}

	state, startTick := db.LoadState(slotID)

	// ── Economy ───────────────────────────────────────────────────────
	items := catalog.DefaultItems()
	world := catalog.DefaultWorld()
	clk := clock.NewSimClock(startTick)
	rnd := entropy.New(cfg.Sim.Seed)

	params := economy.DefaultParams()
	params.Volatility = cfg.Economy.Volatility
	params.SaturationThreshold = cfg.Economy.SaturationThreshold
	params.RefreshHour = cfg.Economy.RefreshHour
	params.PriceInterval = cfg.Economy.PriceUpdateMinutes

	market := economy.NewMarket(state, items, world, clk, rnd, params)
	market.SetNotifier(slogNotifier{})
	market.SetEventBus(slogBus{})

	session := engine.NewSession(clk, market, params.PriceInterval)
	session.DB = db
	session.SlotID = slotID
	session.Start()

	slog.Info("market ready",
		"locations", len(world.Locations()),
		"tracked_prices", len(state.Prices),
		"sim_time", engine.SimTime(startTick),
	)

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.Tick = startTick
	eng.Speed = cfg.Sim.Speed
	eng.Interval = time.Duration(cfg.Sim.TickIntervalMS) * time.Millisecond

	eng.OnTick = session.TickMinute
	eng.OnHour = session.TickHour
	eng.OnDay = session.TickDay

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("\nTradewinds is open for business: %d markets on the trade road.\n", len(world.Locations()))
	if startTick > 0 {
		fmt.Printf("Resuming from tick %d (%s)\n", startTick, engine.SimTime(startTick))
	}
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	// Final save on shutdown.
	slog.Info("final save...")
	session.Save(eng.Tick)

	fmt.Println("Simulation stopped. Market state saved.")
}
