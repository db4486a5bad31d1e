package catalog

// MarketSize classes a location's market capacity. It drives merchant gold
// limits and stock baselines.
type MarketSize string

const (
	SizeTiny   MarketSize = "tiny"
	SizeSmall  MarketSize = "small"
	SizeMedium MarketSize = "medium"
	SizeLarge  MarketSize = "large"
	SizeGrand  MarketSize = "grand"
)

// Location is one market on the map. Sells is the list of goods the local
// merchant offers; the economy appends to it but never removes entries.
type Location struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Size        MarketSize `json:"size"`
	Sells       []string   `json:"sells"`
	Connections []string   `json:"connections"`
}

// World is an in-memory world catalog with stable iteration order.
type World struct {
	locations map[string]*Location
	order     []string
}

// NewWorld builds a world catalog from a list of locations.
func NewWorld(locations ...*Location) *World {
	w := &World{locations: make(map[string]*Location, len(locations))}
	for _, l := range locations {
		if _, ok := w.locations[l.ID]; ok {
			continue
		}
		w.locations[l.ID] = l
		w.order = append(w.order, l.ID)
	}
	return w
}

// Location returns the location with the given id, or nil if unknown.
func (w *World) Location(id string) *Location {
	return w.locations[id]
}

// Locations returns all locations in insertion order.
func (w *World) Locations() []*Location {
	out := make([]*Location, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.locations[id])
	}
	return out
}

// DefaultWorld returns the standard map: five markets along the trade road,
// one of each size class.
func DefaultWorld() *World {
	return NewWorld(
		&Location{
			ID:   "dustcross",
			Name: "Dustcross",
			Size: SizeTiny,
			Sells: []string{
				"grain", "timber",
			},
			Connections: []string{"elmsworth"},
		},
		&Location{
			ID:   "elmsworth",
			Name: "Elmsworth",
			Size: SizeSmall,
			Sells: []string{
				"grain", "wool", "salt", "timber",
			},
			Connections: []string{"dustcross", "greystone"},
		},
		&Location{
			ID:   "greystone",
			Name: "Greystone",
			Size: SizeMedium,
			Sells: []string{
				"iron_ore", "tools", "cloth", "salt", "herbs",
			},
			Connections: []string{"elmsworth", "varos"},
		},
		&Location{
			ID:   "varos",
			Name: "Varos",
			Size: SizeLarge,
			Sells: []string{
				"cloth", "tools", "weapons", "furs", "spices", "herbs",
			},
			Connections: []string{"greystone", "coronet"},
		},
		&Location{
			ID:   "coronet",
			Name: "Coronet City",
			Size: SizeGrand,
			Sells: []string{
				"silk", "spices", "gems", "weapons", "cloth", "wine",
			},
			Connections: []string{"varos"},
		},
	)
}
