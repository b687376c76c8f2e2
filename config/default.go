package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/constant"
	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/where"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Couchpad + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Pretty returns a human-readable multi-line representation of the field.
func (f *Field) Pretty() string {
	return fmt.Sprintf("%s\n  %s\n  default: %v\n", f.Key, f.Description, f.Value)
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
	})
}

// EnvExposed lists the keys that may be set through environment variables.
var EnvExposed = []string{
	key.PlayerSocket,
	key.LogsWrite,
	key.LogsLevel,
	key.LogsJson,
	key.CliColored,
}

// Default is the registry of factory default values for every configuration field.
var Default = map[string]Field{
	key.PlayerSocket: {
		Key:         key.PlayerSocket,
		Value:       where.DefaultPlayerSocket(),
		Description: "Path to mpv's JSON IPC socket. mpv must already be running with --input-ipc-server pointing here.",
	},
	key.OverlaySeekBarHide: {
		Key:         key.OverlaySeekBarHide,
		Value:       5,
		Description: "Seconds of gamepad inactivity before the seek bar hides itself.",
	},
	key.OverlayMiniSeekHide: {
		Key:         key.OverlayMiniSeekHide,
		Value:       2,
		Description: "Seconds of gamepad inactivity before the mini seek indicator hides itself.",
	},
	key.OverlayStatelessSeek: {
		Key:         key.OverlayStatelessSeek,
		Value:       5,
		Description: "Seconds moved by a stateless left/right seek outside a seek session.",
	},
	key.OverlaySubtitleReanchor: {
		Key:         key.OverlaySubtitleReanchor,
		Value:       true,
		Description: "Raise mpv subtitles while the overlay occupies the bottom edge of the screen.",
	},
	key.DlnaEnable: {
		Key:         key.DlnaEnable,
		Value:       true,
		Description: "Discover DLNA renderers on the local network and route volume commands to the first one.",
	},
	key.DlnaVolumeStep: {
		Key:         key.DlnaVolumeStep,
		Value:       5,
		Description: "Volume change applied per VolumeUp/VolumeDown press, in renderer volume units (0-100).",
	},
	key.SponsorblockEnable: {
		Key:         key.SponsorblockEnable,
		Value:       false,
		Description: "Fetch SponsorBlock skip segments for recognized videos.",
	},
	key.SponsorblockCategories: {
		Key:         key.SponsorblockCategories,
		Value:       []string{"sponsor", "selfpromo", "intro", "outro"},
		Description: "SponsorBlock categories to request.",
	},
	key.LogsWrite: {
		Key:         key.LogsWrite,
		Value:       false,
		Description: "Persist diagnostic logs to the logs directory.",
	},
	key.LogsLevel: {
		Key:         key.LogsLevel,
		Value:       "info",
		Description: "Minimum severity recorded when logging is enabled (trace, debug, info, warn, error).",
	},
	key.LogsJson: {
		Key:         key.LogsJson,
		Value:       false,
		Description: "Emit logs as pretty-printed JSON instead of text.",
	},
	key.CliColored: {
		Key:         key.CliColored,
		Value:       true,
		Description: "Colorize CLI help and command output.",
	},
}
