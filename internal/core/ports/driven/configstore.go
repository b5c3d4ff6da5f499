package driven

import "time"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
// Keys use dot notation for nested tables ("catalog.source_url").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or can't be converted.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or can't be converted.
	GetInt(key string) int

	// GetFloat retrieves a floating point configuration value.
	GetFloat(key string) float64

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or can't be converted.
	GetBool(key string) bool

	// GetDuration retrieves a duration. Bare integers are read as seconds.
	GetDuration(key string) time.Duration

	// Set stores a configuration value in memory.
	Set(key string, value any) error

	// Keys returns all known keys, sorted.
	Keys() []string

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
