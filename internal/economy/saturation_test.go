package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTradeAccumulatesVolume(t *testing.T) {
	m, _ := newTestMarket()

	m.RecordTrade("village", "grain", 15)
	m.RecordTrade("village", "grain", 5)
	m.RecordTrade("village", "grain", -8)

	rec := m.state.Saturation[Pair{"village", "grain"}]
	require.NotNil(t, rec)
	assert.Equal(t, 20, rec.BuyVolume)
	assert.Equal(t, 8, rec.SellVolume)

	assert.InDelta(t, 28, m.Pressure("village", "grain"), 1e-9)
}

func TestRecordTradeZeroIsNoOp(t *testing.T) {
	m, _ := newTestMarket()

	m.RecordTrade("village", "grain", 0)

	assert.Empty(t, m.state.Saturation)
}

func TestPressureUnknownPairIsZero(t *testing.T) {
	m, _ := newTestMarket()

	assert.Zero(t, m.Pressure("village", "grain"))
}

func TestPressureDecaysOverIdleDays(t *testing.T) {
	m, clk := newTestMarket()

	m.RecordTrade("village", "grain", 40)

	// Five idle days: factor 1 − 5×0.05 = 0.75.
	clk.setTime(6, 12)
	assert.InDelta(t, 30, m.Pressure("village", "grain"), 1e-9)

	// Twenty idle days would give 0.0, but the floor holds at 0.5.
	clk.setTime(21, 12)
	assert.InDelta(t, 20, m.Pressure("village", "grain"), 1e-9)
}

func TestTradingRefreshesDecayStamp(t *testing.T) {
	m, clk := newTestMarket()

	m.RecordTrade("village", "grain", 40)
	clk.setTime(11, 12)
	m.RecordTrade("village", "grain", 10)

	// Fresh stamp: no decay at all, full 50 volume counts.
	assert.InDelta(t, 50, m.Pressure("village", "grain"), 1e-9)
}
