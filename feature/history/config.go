package history

// Config holds configuration for the scan history log.
type Config struct {
	// MaxSize is the capacity of the durable history log. Appends beyond
	// the capacity evict the oldest entry.
	MaxSize int `mapstructure:"max_size" default:"100"`
}

const (
	// DefaultMaxSize is the capacity of the general scan history log.
	DefaultMaxSize = 100
	// BatchLocalMaxSize is the capacity of the in-memory log used when a
	// batch controller runs without a shared history store.
	BatchLocalMaxSize = 50
)
