package economy

import "math"

// TimeModifier returns the time-of-day price multiplier: cheap in the
// morning right after suppliers deliver, a premium for night-owl shopping.
func TimeModifier(hour int) float64 {
	switch {
	case hour >= 8 && hour < 11:
		return 0.85 // Morning market
	case hour >= 11 && hour < 15:
		return 1.0 // Midday trade
	case hour >= 15 && hour < 19:
		return 1.1 // Afternoon rush
	case hour >= 19 && hour < 22:
		return 1.2 // Evening trade
	default:
		return 1.35 // Night market, 22:00–08:00
	}
}

// TimePeriodName returns the market-period label for an hour.
func TimePeriodName(hour int) string {
	switch {
	case hour >= 8 && hour < 11:
		return "Morning Market"
	case hour >= 11 && hour < 15:
		return "Midday Trade"
	case hour >= 15 && hour < 19:
		return "Afternoon Rush"
	case hour >= 19 && hour < 22:
		return "Evening Trade"
	default:
		return "Night Market"
	}
}

// timeAdjusted applies the current time-of-day modifier to a price.
// Essential goods take only half the deviation from 1.0, so subsistence
// prices swing less than luxuries.
func (m *Market) timeAdjusted(price int, itemID string) int {
	if price <= 0 {
		return price
	}
	modifier := TimeModifier(m.clock.Hour())
	if IsEssential(itemID) {
		modifier = 1 + (modifier-1)*0.5
	}
	return int(math.Round(float64(price) * modifier))
}
