// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Player Connection - these keys locate and tune the mpv control socket.
const (
	PlayerSocket = "player.socket"
)

// Overlay Behavior - these keys govern view auto-hide and stateless seeking.
const (
	OverlaySeekBarHide      = "overlay.seekbar_hide"
	OverlayMiniSeekHide     = "overlay.miniseek_hide"
	OverlayStatelessSeek    = "overlay.stateless_seek"
	OverlaySubtitleReanchor = "overlay.subtitle_reanchor"
)

// DLNA Renderer Control - these keys configure network volume control.
const (
	DlnaEnable     = "dlna.enable"
	DlnaVolumeStep = "dlna.volume_step"
)

// SponsorBlock Integration - these keys configure skip-segment retrieval.
const (
	SponsorblockEnable     = "sponsorblock.enable"
	SponsorblockCategories = "sponsorblock.categories"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored = "cli.colored"
)
