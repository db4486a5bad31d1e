package economy

import (
	"slices"

	"github.com/talgya/tradewinds/internal/catalog"
)

// EssentialGoods is the subsistence set every market must sell, whatever its
// configured inventory.
var EssentialGoods = []string{"water", "bread", "food", "meat", "ale"}

// ExpandedGoods is the secondary set guaranteed only at large and grand
// markets.
var ExpandedGoods = []string{"cheese", "fish", "vegetables", "military_rations", "wine"}

// IsEssential reports whether an item is in the essential set.
func IsEssential(itemID string) bool {
	return slices.Contains(EssentialGoods, itemID)
}

// EnsureSurvivalGoods guarantees the essential set is present in a location's
// sell list, plus the expanded set at large and grand markets.
// Idempotent: goods already listed are left alone.
func (m *Market) EnsureSurvivalGoods(locationID string) {
	if m.world == nil {
		return
	}
	loc := m.world.Location(locationID)
	if loc == nil {
		return
	}

	for _, itemID := range EssentialGoods {
		if !slices.Contains(loc.Sells, itemID) {
			loc.Sells = append(loc.Sells, itemID)
		}
	}

	if loc.Size == catalog.SizeLarge || loc.Size == catalog.SizeGrand {
		for _, itemID := range ExpandedGoods {
			if !slices.Contains(loc.Sells, itemID) {
				loc.Sells = append(loc.Sells, itemID)
			}
		}
	}
}

// EnsureAllSurvivalGoods applies the survival-goods guarantee to every
// location. Run on session start and during the morning refresh.
func (m *Market) EnsureAllSurvivalGoods() {
	if m.world == nil {
		return
	}
	for _, loc := range m.world.Locations() {
		m.EnsureSurvivalGoods(loc.ID)
	}
}
