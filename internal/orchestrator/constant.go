package orchestrator

// Log prefixes
const (
	LogPrefixProcessTurn = "internal.orchestrator.ProcessTurn"
	LogPrefixReset       = "internal.orchestrator.Reset"
)

// Session store defaults, used when config leaves them zero.
const (
	DefaultMaxSessions = 1024
	DefaultSessionTTL  = "30m"
)
