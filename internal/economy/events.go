package economy

// Severity classifies a notification for the presentation layer.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notifier is the fire-and-forget notification sink (low-funds warnings,
// restock announcements). Implementations must tolerate being called from the
// simulation goroutine; the market never calls it twice for one transition.
type Notifier interface {
	Notify(message string, severity Severity)
}

// EventBus carries outbound events to systems the economy has no dependency
// on (NPC inventory refresh and the like).
type EventBus interface {
	Publish(topic string, payload any)
}

// TopicDailyRefresh is published after the morning market refresh completes.
const TopicDailyRefresh = "market.dailyRefresh"

// DailyRefresh is the payload of TopicDailyRefresh.
type DailyRefresh struct {
	Hour int `json:"hour"`
	Day  int `json:"day"`
}
