package economy

import (
	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/clock"
	"github.com/talgya/tradewinds/internal/entropy"
)

// stubClock is a hand-settable clock for tests.
type stubClock struct {
	day     int
	hour    int
	minutes uint64
	paused  bool
}

func (c *stubClock) Day() int        { return c.day }
func (c *stubClock) Hour() int       { return c.hour }
func (c *stubClock) Minutes() uint64 { return c.minutes }
func (c *stubClock) Paused() bool    { return c.paused }

// setTime positions the stub at a given day and hour, keeping the minute
// counter consistent so saturation decay math lines up.
func (c *stubClock) setTime(day, hour int) {
	c.day = day
	c.hour = hour
	c.minutes = uint64(day-1)*clock.MinutesPerDay + uint64(hour)*clock.MinutesPerHour
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	messages   []string
	severities []Severity
}

func (n *recordingNotifier) Notify(message string, severity Severity) {
	n.messages = append(n.messages, message)
	n.severities = append(n.severities, severity)
}

// recordingBus captures published events.
type recordingBus struct {
	topics   []string
	payloads []any
}

func (b *recordingBus) Publish(topic string, payload any) {
	b.topics = append(b.topics, topic)
	b.payloads = append(b.payloads, payload)
}

// testWorld returns a small fixed world: one location per size class.
func testWorld() *catalog.World {
	return catalog.NewWorld(
		&catalog.Location{ID: "hamlet", Name: "Hamlet", Size: catalog.SizeTiny, Sells: []string{"grain"}},
		&catalog.Location{ID: "village", Name: "Village", Size: catalog.SizeSmall, Sells: []string{"grain", "wool"}},
		&catalog.Location{ID: "town", Name: "Town", Size: catalog.SizeMedium, Sells: []string{"grain", "tools"}},
		&catalog.Location{ID: "city", Name: "City", Size: catalog.SizeLarge, Sells: []string{"tools", "cloth"}},
		&catalog.Location{ID: "capital", Name: "Capital", Size: catalog.SizeGrand, Sells: []string{"silk", "gems"}},
	)
}

func testItems() *catalog.Items {
	return catalog.NewItems([]catalog.Item{
		{ID: "grain", Name: "Grain", BasePrice: 10, Weight: 3},
		{ID: "wool", Name: "Wool", BasePrice: 12, Weight: 2.5},
		{ID: "tools", Name: "Tools", BasePrice: 35, Weight: 3},
		{ID: "cloth", Name: "Cloth", BasePrice: 20, Weight: 2},
		{ID: "silk", Name: "Silk", BasePrice: 120, Weight: 1},
		{ID: "gems", Name: "Gems", BasePrice: 200, Weight: 0.2},
		{ID: "water", Name: "Water", BasePrice: 2, Weight: 1},
		{ID: "bread", Name: "Bread", BasePrice: 3, Weight: 0.5},
		{ID: "food", Name: "Rations", BasePrice: 5, Weight: 1},
		{ID: "meat", Name: "Meat", BasePrice: 6, Weight: 1},
		{ID: "ale", Name: "Ale", BasePrice: 4, Weight: 1},
		{ID: "cheese", Name: "Cheese", BasePrice: 7, Weight: 1.5},
		{ID: "fish", Name: "Fish", BasePrice: 5, Weight: 0.8},
		{ID: "vegetables", Name: "Vegetables", BasePrice: 4, Weight: 1.2},
		{ID: "military_rations", Name: "Military Rations", BasePrice: 9, Weight: 1},
		{ID: "wine", Name: "Wine", BasePrice: 12, Weight: 1.2},
	})
}

// newTestMarket builds a market at day 1, 12:00 with zero volatility so
// price assertions are exact. Callers adjust params or clock as needed.
func newTestMarket() (*Market, *stubClock) {
	clk := &stubClock{}
	clk.setTime(1, 12)

	params := DefaultParams()
	params.Volatility = 0

	m := NewMarket(NewState(), testItems(), testWorld(), clk, entropy.New(1), params)

	// Detectors see day 1 as already handled; tests flip the day to trigger.
	m.state.LastGoldResetDay = 1
	m.state.LastStockResetDay = 1

	return m, clk
}
