// Package clock provides the simulated game clock. Time is derived entirely
// from the tick counter (1 tick = 1 sim-minute), so day and hour never depend
// on wall-clock time.
package clock

// Time constants shared across the simulation.
const (
	MinutesPerHour = 60
	HoursPerDay    = 24
	MinutesPerDay  = MinutesPerHour * HoursPerDay
)

// Clock is the read-only time source the economy polls.
type Clock interface {
	// Day returns the current simulated day, starting at 1.
	Day() int
	// Hour returns the current hour of day in [0, 24).
	Hour() int
	// Minutes returns total elapsed sim-minutes since world start.
	Minutes() uint64
	// Paused reports whether the game clock is paused.
	Paused() bool
}

// SimClock derives simulated time from a monotonic tick counter.
type SimClock struct {
	tick   uint64
	paused bool
}

// NewSimClock creates a clock positioned at the given tick.
func NewSimClock(tick uint64) *SimClock {
	return &SimClock{tick: tick}
}

// SetTick moves the clock to an absolute tick. Used by the host loop, which
// owns the canonical tick counter.
func (c *SimClock) SetTick(tick uint64) { c.tick = tick }

// Advance moves the clock forward one sim-minute.
func (c *SimClock) Advance() { c.tick++ }

// SetPaused pauses or resumes the clock.
func (c *SimClock) SetPaused(paused bool) { c.paused = paused }

func (c *SimClock) Day() int        { return int(c.tick/MinutesPerDay) + 1 }
func (c *SimClock) Hour() int       { return int(c.tick / MinutesPerHour % HoursPerDay) }
func (c *SimClock) Minutes() uint64 { return c.tick }
func (c *SimClock) Paused() bool    { return c.paused }
