package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// OutputRoot, when set, confines output_dir and mappings to paths
	// below it. Relative paths are joined to it.
	OutputRoot string

	// URLPrefix overrides the site route prefix of the lookup table.
	URLPrefix string

	// MaxInlineSize is the largest inline spec content accepted, in bytes.
	MaxInlineSize int64

	// List tool defaults.
	ListLimit int
	MaxLimit  int

	// Generate tool defaults.
	GenerateClean bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASDOCS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		OutputRoot:    strings.TrimSpace(os.Getenv("OASDOCS_OUTPUT_ROOT")),
		URLPrefix:     envURLPrefix("OASDOCS_URL_PREFIX"),
		MaxInlineSize: int64(envInt("OASDOCS_MAX_INLINE_SIZE", 10*1024*1024)),
		ListLimit:     envInt("OASDOCS_LIST_LIMIT", 100),
		MaxLimit:      envInt("OASDOCS_MAX_LIMIT", 1000),
		GenerateClean: envBool("OASDOCS_GENERATE_CLEAN", false),
	}
}

// envValue parses the variable key with parse. Unset variables return
// fallback; unparsable or rejected values log a warning and return fallback.
func envValue[T any](key string, fallback T, parse func(string) (T, error), accept func(T) bool) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil || (accept != nil && !accept(v)) {
		slog.Warn("invalid environment value, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	return envValue(key, fallback, strconv.ParseBool, nil)
}

func envInt(key string, fallback int) int {
	return envValue(key, fallback, strconv.Atoi, func(n int) bool { return n > 0 })
}

// envURLPrefix reads a site route prefix. Prefixes not starting with "/"
// are ignored.
func envURLPrefix(key string) string {
	return envValue(key, "", func(s string) (string, error) { return s, nil },
		func(s string) bool { return strings.HasPrefix(s, "/") })
}
