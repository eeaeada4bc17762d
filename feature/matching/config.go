package matching

// Config holds configuration for the matching feature.
type Config struct {
	// CacheTTLSeconds is how long a built reconciliation report stays
	// fresh. Zero disables report caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}
