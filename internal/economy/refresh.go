package economy

// Refresh orchestration. Two independent day-boundary detectors (gold and
// stock, each with its own last-seen day) plus the hour-8 morning refresh.
// The overlap is intentional: the midnight resets keep the books sane even if
// nobody visits a market before 8, and the morning refresh restocks richer
// and tells the rest of the game about it.

// Tick polls every boundary detector. Called once per sim-minute by the
// session; every detector is idempotent, so re-running after a missed tick is
// harmless. Nothing in here can fail: a missing catalog just skips the
// affected work until the next tick.
func (m *Market) Tick() {
	m.maybeResetGold()
	m.maybeResetStock()
	m.checkMorningRefresh()
}

// checkMorningRefresh fires the full refresh on the transition into the
// refresh hour, not on every tick within it.
func (m *Market) checkMorningRefresh() {
	hour := m.clock.Hour()
	if hour == m.params.RefreshHour && m.state.LastRefreshHour != m.params.RefreshHour {
		m.performMorningRefresh()
	}
	m.state.LastRefreshHour = hour
}

// performMorningRefresh is the 8 a.m. restock: gold to full, shelves to
// morning levels, survival goods guaranteed, and one announcement each to the
// player and the event bus. Gold before stock, goods guarantee after stock
// structures exist.
func (m *Market) performMorningRefresh() {
	m.resetDailyGold()
	m.refreshAllStock()
	m.EnsureAllSurvivalGoods()

	m.notify("Morning has come! Merchants have restocked their wares.", SeverityInfo)
	m.publish(TopicDailyRefresh, DailyRefresh{
		Hour: m.params.RefreshHour,
		Day:  m.clock.Day(),
	})
}
