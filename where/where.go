// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/couchpad-app/couchpad/constant"
	"github.com/couchpad-app/couchpad/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "COUCHPAD_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be explicitly overridden via the COUCHPAD_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Couchpad))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Couchpad))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// SkipSegments resolves the absolute path to the cached SponsorBlock segment registry.
func SkipSegments() string {
	return filepath.Join(Cache(), "skip_segments.json")
}

// DefaultPlayerSocket resolves the default mpv IPC socket path for the
// current user. mpv is launched by the session with
// --input-ipc-server pointing here.
func DefaultPlayerSocket() string {
	if runtime, ok := os.LookupEnv("XDG_RUNTIME_DIR"); ok {
		return filepath.Join(runtime, "mpv.sock")
	}
	return "/run/user/1000/mpv.sock"
}
