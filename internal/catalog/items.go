// Package catalog provides the item and world catalogs the economy consumes:
// base prices and weights per good, and per-location market metadata.
package catalog

// Item describes one tradable good.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice int     `json:"base_price"` // In crowns
	Weight    float64 `json:"weight"`     // In stone
}

// Items is an in-memory item catalog.
type Items struct {
	items map[string]Item
}

// NewItems builds an item catalog from a list of goods.
func NewItems(goods []Item) *Items {
	m := make(map[string]Item, len(goods))
	for _, it := range goods {
		m[it.ID] = it
	}
	return &Items{items: m}
}

// BasePrice returns the base price of an item in crowns, or 0 for unknown ids.
func (c *Items) BasePrice(itemID string) int {
	return c.items[itemID].BasePrice
}

// Weight returns the carry weight of an item, or 0 for unknown ids.
func (c *Items) Weight(itemID string) float64 {
	return c.items[itemID].Weight
}

// Known reports whether the catalog carries the item.
func (c *Items) Known(itemID string) bool {
	_, ok := c.items[itemID]
	return ok
}

// Name returns the display name of an item, falling back to its id.
func (c *Items) Name(itemID string) string {
	if it, ok := c.items[itemID]; ok {
		return it.Name
	}
	return itemID
}

// DefaultItems returns the standard goods catalog.
func DefaultItems() *Items {
	return NewItems([]Item{
		// Subsistence goods.
		{ID: "water", Name: "Water Skin", BasePrice: 2, Weight: 1.0},
		{ID: "bread", Name: "Bread Loaf", BasePrice: 3, Weight: 0.5},
		{ID: "food", Name: "Travel Rations", BasePrice: 5, Weight: 1.0},
		{ID: "meat", Name: "Salted Meat", BasePrice: 6, Weight: 1.0},
		{ID: "ale", Name: "Ale Flask", BasePrice: 4, Weight: 1.0},
		{ID: "cheese", Name: "Wheel of Cheese", BasePrice: 7, Weight: 1.5},
		{ID: "fish", Name: "Dried Fish", BasePrice: 5, Weight: 0.8},
		{ID: "vegetables", Name: "Fresh Vegetables", BasePrice: 4, Weight: 1.2},
		{ID: "military_rations", Name: "Military Rations", BasePrice: 9, Weight: 1.0},
		{ID: "wine", Name: "Bottle of Wine", BasePrice: 12, Weight: 1.2},

		// Trade goods.
		{ID: "grain", Name: "Sack of Grain", BasePrice: 10, Weight: 3.0},
		{ID: "salt", Name: "Salt Block", BasePrice: 15, Weight: 2.0},
		{ID: "wool", Name: "Wool Bundle", BasePrice: 12, Weight: 2.5},
		{ID: "cloth", Name: "Bolt of Cloth", BasePrice: 20, Weight: 2.0},
		{ID: "timber", Name: "Timber Load", BasePrice: 8, Weight: 6.0},
		{ID: "iron_ore", Name: "Iron Ore", BasePrice: 18, Weight: 5.0},
		{ID: "tools", Name: "Iron Tools", BasePrice: 35, Weight: 3.0},
		{ID: "weapons", Name: "Forged Weapons", BasePrice: 60, Weight: 4.0},
		{ID: "herbs", Name: "Healing Herbs", BasePrice: 25, Weight: 0.3},
		{ID: "furs", Name: "Fur Pelts", BasePrice: 30, Weight: 2.0},
		{ID: "spices", Name: "Rare Spices", BasePrice: 80, Weight: 0.5},
		{ID: "silk", Name: "Silk Bolt", BasePrice: 120, Weight: 1.0},
		{ID: "gems", Name: "Cut Gemstones", BasePrice: 200, Weight: 0.2},
	})
}
