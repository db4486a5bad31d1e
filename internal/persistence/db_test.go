package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/tradewinds/internal/economy"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSlotLifecycle(t *testing.T) {
	db := openTestDB(t)

	_, found, err := db.LatestSlot()
	require.NoError(t, err)
	assert.False(t, found)

	id, err := db.CreateSlot("first")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	slot, found, err := db.LatestSlot()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, slot.ID)
	assert.Equal(t, "first", slot.Name)

	slots, err := db.Slots()
	require.NoError(t, err)
	assert.Len(t, slots, 1)

	require.NoError(t, db.DeleteSlot(id))
	_, found, err = db.LatestSlot()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateSlot("trader")
	require.NoError(t, err)

	state := economy.NewState()
	state.Saturation[economy.Pair{Location: "village", Item: "grain"}] =
		&economy.SaturationRecord{BuyVolume: 40, SellVolume: 8, LastUpdate: 720}
	state.Stock[economy.Pair{Location: "village", Item: "grain"}] = 31
	state.Gold["village"] = 300
	state.Prices[economy.Pair{Location: "village", Item: "grain"}] = 9
	state.LastGoldResetDay = 3
	state.LastStockResetDay = 2
	state.LastRefreshHour = 8

	require.NoError(t, db.SaveState(id, state, 4321))

	restored, tick := db.LoadState(id)
	assert.Equal(t, uint64(4321), tick)
	assert.Equal(t, state.Saturation, restored.Saturation)
	assert.Equal(t, state.Stock, restored.Stock)
	assert.Equal(t, state.Gold, restored.Gold)
	assert.Equal(t, state.Prices, restored.Prices)
	assert.Equal(t, 3, restored.LastGoldResetDay)
	assert.Equal(t, 2, restored.LastStockResetDay)
	assert.Equal(t, 8, restored.LastRefreshHour)
}

func TestSaveStateOverwrites(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateSlot("trader")
	require.NoError(t, err)

	state := economy.NewState()
	state.Gold["village"] = 100
	require.NoError(t, db.SaveState(id, state, 1))

	state.Gold["village"] = 200
	require.NoError(t, db.SaveState(id, state, 2))

	restored, tick := db.LoadState(id)
	assert.Equal(t, uint64(2), tick)
	assert.Equal(t, 200, restored.Gold["village"])
}

func TestLoadStateMissingSlotYieldsFreshState(t *testing.T) {
	db := openTestDB(t)

	state, tick := db.LoadState("no-such-slot")

	assert.Zero(t, tick)
	assert.Empty(t, state.Gold)
	assert.Equal(t, -1, state.LastRefreshHour)
}

func TestLoadStateCorruptBlobYieldsFreshState(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateSlot("trader")
	require.NoError(t, err)

	state := economy.NewState()
	state.Gold["village"] = 100
	require.NoError(t, db.SaveState(id, state, 1))

	_, err = db.conn.Exec("UPDATE economy_state SET blob = ? WHERE slot_id = ?", "{not json", id)
	require.NoError(t, err)

	restored, tick := db.LoadState(id)
	assert.Zero(t, tick)
	assert.Empty(t, restored.Gold, "corrupt save degrades to a fresh state")
}
