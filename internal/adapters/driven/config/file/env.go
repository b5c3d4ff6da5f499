package file

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix marks environment variables that override configuration keys.
// STOREFRONT_CATALOG_SOURCE_URL overrides catalog.source_url.
const EnvPrefix = "STOREFRONT_"

// envAliases maps deployment variable names to configuration keys.
var envAliases = map[string]string{
	"SHEET_CSV_URL":           "catalog.source_url",
	"GENERIC_CONTENT_CSV_URL": "content.source_url",
	"PORT":                    "server.addr",
}

// LoadDotEnv loads variables from the given files (".env" when none given)
// into the process environment. Variables already set are not replaced and
// missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// EnvKey returns the environment variable that overrides key.
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// applyEnv writes overrides from environ ("KEY=value" entries) into data.
// Prefixed variables win over aliases.
func applyEnv(data map[string]any, environ []string) {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	for name, key := range envAliases {
		v, ok := vars[name]
		if !ok || v == "" {
			continue
		}
		if name == "PORT" && !strings.Contains(v, ":") {
			v = ":" + v
		}
		data[key] = v
	}

	for name, v := range vars {
		rest, ok := strings.CutPrefix(name, EnvPrefix)
		if !ok || rest == "" {
			continue
		}
		section, field, ok := strings.Cut(strings.ToLower(rest), "_")
		if !ok || field == "" {
			continue
		}
		data[section+"."+field] = v
	}
}
