package file

import (
	"errors"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"

	"github.com/woodenlobby/storefront/internal/core/ports/driven"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "storefront.toml"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Environment variables override file values; Set overrides both for the
// life of the process and is never written back.
type ConfigStore struct {
	mu        sync.RWMutex
	filePath  string
	data      map[string]any
	overrides map[string]any
}

// NewConfigStore creates a TOML-based config store and loads it.
// If path is empty, DefaultPath is used. A missing file is not an error.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		path = DefaultPath
	}

	s := &ConfigStore{
		filePath:  path,
		data:      make(map[string]any),
		overrides: make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if val, ok := s.overrides[key]; ok {
		return val, true
	}
	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	return cast.ToString(val)
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	return cast.ToInt(val)
}

// GetFloat retrieves a floating point configuration value.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, _ := s.Get(key)
	return cast.ToFloat64(val)
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	return cast.ToBool(val)
}

// GetDuration retrieves a duration. Numbers, including numeric strings,
// are seconds; other strings use time.ParseDuration syntax.
func (s *ConfigStore) GetDuration(key string) time.Duration {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	return toDuration(val)
}

// Set stores an in-process override.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides[key] = value
	return nil
}

// Keys returns every known key, sorted.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.data)+len(s.overrides))
	for k := range s.data {
		seen[k] = struct{}{}
	}
	for k := range s.overrides {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads configuration from the TOML file and applies environment overrides.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := make(map[string]any)

	data, err := os.ReadFile(s.filePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No config file - environment and defaults only
	case err != nil:
		return err
	default:
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return err
		}
		if loaded == nil {
			loaded = make(map[string]any)
		}
	}

	// Flatten nested maps into dot-notation keys for easier access
	s.data = flattenMap(loaded, "")
	applyEnv(s.data, os.Environ())
	return nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

func toDuration(val any) time.Duration {
	if str, ok := val.(string); ok {
		if secs, err := strconv.ParseFloat(str, 64); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
		d, _ := time.ParseDuration(str)
		return d
	}
	if d, ok := val.(time.Duration); ok {
		return d
	}
	return time.Duration(cast.ToFloat64(val) * float64(time.Second))
}
