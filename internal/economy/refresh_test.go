package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickDetectsDayBoundary(t *testing.T) {
	m, clk := newTestMarket()
	m.DeductGold("village", 1000)
	m.state.Stock[Pair{"village", "grain"}] = 2

	clk.setTime(2, 0)
	m.Tick()

	assert.Equal(t, 1500, m.state.Gold["village"], "gold refilled at day boundary")
	assert.GreaterOrEqual(t, m.state.Stock[Pair{"village", "grain"}], 25, "stock restocked at day boundary")
	assert.Equal(t, 2, m.state.LastGoldResetDay)
	assert.Equal(t, 2, m.state.LastStockResetDay)
}

func TestMorningRefreshFiresOnTransitionIntoHourEight(t *testing.T) {
	m, clk := newTestMarket()
	sink := &recordingNotifier{}
	bus := &recordingBus{}
	m.SetNotifier(sink)
	m.SetEventBus(bus)
	m.state.Stock[Pair{"village", "grain"}] = 2

	clk.setTime(1, 7)
	m.Tick()
	require.Empty(t, bus.topics)

	clk.setTime(1, 8)
	m.Tick()

	require.Equal(t, []string{TopicDailyRefresh}, bus.topics)
	payload, ok := bus.payloads[0].(DailyRefresh)
	require.True(t, ok)
	assert.Equal(t, 8, payload.Hour)
	assert.Equal(t, 1, payload.Day)

	require.Len(t, sink.messages, 1)
	assert.Contains(t, sink.messages[0], "restocked")
	assert.Equal(t, SeverityInfo, sink.severities[0])

	// Morning table, not the nightly one.
	assert.GreaterOrEqual(t, m.state.Stock[Pair{"village", "grain"}], 28)
}

func TestMorningRefreshDoesNotRefireWithinHourEight(t *testing.T) {
	m, clk := newTestMarket()
	bus := &recordingBus{}
	m.SetEventBus(bus)

	clk.setTime(1, 7)
	m.Tick()
	clk.setTime(1, 8)
	m.Tick()
	m.Tick()
	m.Tick()
	clk.setTime(1, 9)
	m.Tick()

	assert.Len(t, bus.topics, 1, "one refresh per transition into hour 8")
}

func TestMorningRefreshFiresAgainNextDay(t *testing.T) {
	m, clk := newTestMarket()
	bus := &recordingBus{}
	m.SetEventBus(bus)

	clk.setTime(1, 8)
	m.Tick()
	clk.setTime(1, 9)
	m.Tick()
	clk.setTime(2, 8)
	m.Tick()

	assert.Len(t, bus.topics, 2)
}

func TestMorningRefreshGuaranteesSurvivalGoods(t *testing.T) {
	m, clk := newTestMarket()

	clk.setTime(1, 8)
	m.Tick()

	for _, loc := range m.world.Locations() {
		for _, itemID := range EssentialGoods {
			require.Contains(t, loc.Sells, itemID, loc.ID)
		}
	}
}

func TestMorningRefreshAfterLoadMidHourDoesNotFire(t *testing.T) {
	// A save taken at 8:30 has LastRefreshHour == 8; resuming inside the
	// same hour must not re-run the refresh.
	m, clk := newTestMarket()
	bus := &recordingBus{}
	m.SetEventBus(bus)
	m.state.LastRefreshHour = 8

	clk.setTime(1, 8)
	m.Tick()

	assert.Empty(t, bus.topics)
}

func TestRefreshWithoutCollaboratorsIsSilent(t *testing.T) {
	// No notifier, no bus, no world: the orchestrator skips quietly.
	m, clk := newTestMarket()
	m.world = nil

	clk.setTime(1, 8)
	assert.NotPanics(t, func() { m.Tick() })
}
