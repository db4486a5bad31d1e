package economy

import (
	"hash/fnv"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/clock"
	"github.com/talgya/tradewinds/internal/entropy"
)

// ItemCatalog is the slice of the item database the economy consumes.
type ItemCatalog interface {
	BasePrice(itemID string) int
	Weight(itemID string) float64
}

// WorldCatalog is the slice of the world database the economy consumes. The
// economy appends to a location's Sells list but never removes entries.
type WorldCatalog interface {
	Location(id string) *catalog.Location
	Locations() []*catalog.Location
}

// Params holds the market tuning knobs.
type Params struct {
	// Volatility is the total width of the price noise band (0.10 means
	// prices wobble within ±5%). Zero disables noise.
	Volatility float64
	// SaturationThreshold is the pressure above which trading volume starts
	// suppressing prices.
	SaturationThreshold float64
	// RefreshHour is the hour of the full morning refresh.
	RefreshHour int
	// PriceInterval is how many sim-minutes pass between price refreshes.
	PriceInterval int
}

// DefaultParams returns the standard market tuning.
func DefaultParams() Params {
	return Params{
		Volatility:          0.10,
		SaturationThreshold: 10,
		RefreshHour:         8,
		PriceInterval:       5,
	}
}

// Market runs the economy simulation over one State. All mutation must happen
// on the single simulation goroutine; Market does no locking of its own.
//
// The item and world catalogs, notifier and event bus are optional
// collaborators: a nil catalog makes the affected operations degrade to safe
// defaults, a nil notifier or bus simply drops the outbound call.
type Market struct {
	state  *State
	items  ItemCatalog
	world  WorldCatalog
	clock  clock.Clock
	rand   *entropy.Source
	params Params

	notifier Notifier
	bus      EventBus
}

// NewMarket wires a market over the given state. clk and rnd must not be nil;
// items and world may be (operations then skip, per the degradation policy).
func NewMarket(state *State, items ItemCatalog, world WorldCatalog, clk clock.Clock, rnd *entropy.Source, params Params) *Market {
	return &Market{
		state:  state,
		items:  items,
		world:  world,
		clock:  clk,
		rand:   rnd,
		params: params,
	}
}

// SetNotifier attaches the optional notification sink.
func (m *Market) SetNotifier(n Notifier) { m.notifier = n }

// SetEventBus attaches the optional outbound event bus.
func (m *Market) SetEventBus(b EventBus) { m.bus = b }

// State exposes the underlying aggregate, primarily for persistence.
func (m *Market) State() *State { return m.state }

func (m *Market) notify(message string, severity Severity) {
	if m.notifier != nil {
		m.notifier.Notify(message, severity)
	}
}

func (m *Market) publish(topic string, payload any) {
	if m.bus != nil {
		m.bus.Publish(topic, payload)
	}
}

// sizeOf returns a location's market size, defaulting to small when the
// world catalog is missing or does not know the location.
func (m *Market) sizeOf(locationID string) catalog.MarketSize {
	if m.world != nil {
		if loc := m.world.Location(locationID); loc != nil {
			return loc.Size
		}
	}
	return catalog.SizeSmall
}

// locationName returns a location's display name, falling back to its id.
func (m *Market) locationName(locationID string) string {
	if m.world != nil {
		if loc := m.world.Location(locationID); loc != nil {
			return loc.Name
		}
	}
	return locationID
}

// pairChannel maps a pair onto a stable noise channel.
func pairChannel(p Pair) uint32 {
	h := fnv.New32a()
	h.Write([]byte(p.Location))
	h.Write([]byte{0})
	h.Write([]byte(p.Item))
	return h.Sum32()
}
