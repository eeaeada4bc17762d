package batchscan

// Config holds configuration for the batch scanner.
type Config struct {
	// Capacity is the default hard ceiling on accepted codes per session.
	Capacity int `mapstructure:"capacity" default:"50"`
	// AutoIntervalMs is the interval between synthetic auto-scan
	// submissions in milliseconds.
	AutoIntervalMs int `mapstructure:"auto_interval_ms" default:"2000"`
}

const (
	// DefaultCapacity is the accepted-code ceiling used when a session is
	// started without an explicit capacity.
	DefaultCapacity = 50
	// DefaultAutoIntervalMs is the auto-scan tick interval.
	DefaultAutoIntervalMs = 2000
)
