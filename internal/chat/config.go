package chat

// Config holds the session lifecycle knobs, sourced from environment
// variables. Durations are strings parsed with time.ParseDuration at
// startup.
type Config struct {
	// SweepInterval is how often the reaper scans for idle sessions.
	SweepInterval string `envconfig:"SESSION_SWEEP_INTERVAL" default:"30m"`
	// MaxIdle is how long a session may go untouched before eviction.
	MaxIdle string `envconfig:"SESSION_MAX_IDLE" default:"1h"`
	// RequestTimeout bounds a single engine call.
	RequestTimeout string `envconfig:"CHAT_REQUEST_TIMEOUT" default:"60s"`
}
