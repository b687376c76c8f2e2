package mini

import (
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/overlay"
	"github.com/couchpad-app/couchpad/util"
)

// surface collects focus commands issued during a tick. The model applies
// them afterwards, once it knows which menu rows the current view has.
type surface struct {
	moves     []overlay.FocusDirection
	activated bool
}

func (s *surface) MoveFocus(dir overlay.FocusDirection) {
	s.moves = append(s.moves, dir)
}

func (s *surface) Activate() {
	s.activated = true
}

func (s *surface) reset() {
	s.moves = s.moves[:0]
	s.activated = false
}

// menuRow is one focusable row of the current menu view.
type menuRow struct {
	label    string
	enabled  bool
	activate func(app *overlay.App)
	adjust   func(app *overlay.App, delta float64)
}

// menuRows returns the focusable rows for the current view, nil for views
// without focus.
func menuRows(app *overlay.App) []menuRow {
	switch view := app.View().(type) {
	case overlay.MediaMenuView:
		if sub, ok := view.Submenu.Get(); ok {
			return submenuRows(app, sub)
		}

		rows := make([]menuRow, 0, len(overlay.MediaSubmenus()))
		for _, sub := range overlay.MediaSubmenus() {
			sub := sub
			rows = append(rows, menuRow{
				label:   sub.Label(),
				enabled: sub.Enabled(app),
				activate: func(app *overlay.App) {
					app.ChangeView(overlay.MediaMenuView{Submenu: mo.Some(sub)})
				},
			})
		}
		return rows

	case overlay.HomeMenuView:
		if _, ok := view.Submenu.Get(); ok {
			return nil
		}

		rows := make([]menuRow, 0, len(overlay.HomeSubmenus()))
		for _, sub := range overlay.HomeSubmenus() {
			sub := sub
			rows = append(rows, menuRow{
				label:   sub.Label(),
				enabled: sub.Enabled(app),
				activate: func(app *overlay.App) {
					app.ChangeView(overlay.HomeMenuView{Submenu: mo.Some(sub)})
				},
			})
		}
		return rows
	}

	return nil
}

func submenuRows(app *overlay.App, sub overlay.MediaSubmenu) []menuRow {
	switch sub {
	case overlay.MediaPlaylist:
		playlist := app.Mpv.Playlist()
		rows := make([]menuRow, 0, len(playlist))
		for i, entry := range playlist {
			i := i
			rows = append(rows, menuRow{
				label:   entry.DisplayName(),
				enabled: true,
				activate: func(app *overlay.App) {
					if err := app.Mpv.SetProperty("playlist-pos", i); err != nil {
						log.Warnf("set playlist-pos: %v", err)
					}
				},
			})
		}
		return rows

	case overlay.MediaChapters:
		chapters := app.Mpv.Chapters()
		rows := make([]menuRow, 0, len(chapters))
		for i, chapter := range chapters {
			i := i
			rows = append(rows, menuRow{
				label:   chapter.Title,
				enabled: true,
				activate: func(app *overlay.App) {
					if err := app.Mpv.SetProperty("chapter", i); err != nil {
						log.Warnf("set chapter: %v", err)
					}
				},
			})
		}
		return rows

	case overlay.MediaTracks:
		var rows []menuRow
		for _, trackType := range []string{mpv.TrackAudio, mpv.TrackSubtitle} {
			property := "aid"
			if trackType == mpv.TrackSubtitle {
				property = "sid"
			}

			for _, track := range app.Mpv.TracksOfType(trackType) {
				track, property := track, property
				rows = append(rows, menuRow{
					label:   track.DisplayName(),
					enabled: true,
					activate: func(app *overlay.App) {
						if err := app.Mpv.SetProperty(property, track.ID); err != nil {
							log.Warnf("set %s: %v", property, err)
						}
					},
				})
			}
		}
		return rows

	case overlay.MediaVolume:
		rows := []menuRow{{
			label:   "mpv",
			enabled: true,
			adjust: func(app *overlay.App, delta float64) {
				if err := app.Mpv.AddProperty("volume", delta); err != nil {
					log.Warnf("add volume: %v", err)
				}
			},
		}}

		if app.Dlna != nil {
			for _, renderer := range app.Dlna.Renderers() {
				renderer := renderer
				rows = append(rows, menuRow{
					label:   renderer.Name(),
					enabled: true,
					adjust: func(_ *overlay.App, delta float64) {
						renderer.SetVolume(renderer.Volume() + int(delta))
					},
				})
			}
		}
		return rows
	}

	return nil
}

// applySurface replays the focus commands collected during the tick against
// the current menu rows.
func (m *model) applySurface() {
	rows := menuRows(m.app)
	if len(rows) == 0 {
		m.surface.reset()
		return
	}

	step := viper.GetFloat64(key.DlnaVolumeStep)

	for _, dir := range m.surface.moves {
		switch dir {
		case overlay.DirUp:
			m.focus--
		case overlay.DirDown:
			m.focus++
		case overlay.DirLeft:
			if adjust := rows[m.clampFocus(rows)].adjust; adjust != nil {
				adjust(m.app, -step)
			}
		case overlay.DirRight:
			if adjust := rows[m.clampFocus(rows)].adjust; adjust != nil {
				adjust(m.app, step)
			}
		}
	}

	m.focus = m.clampFocus(rows)

	if m.surface.activated {
		row := rows[m.focus]
		if row.enabled && row.activate != nil {
			row.activate(m.app)
			m.focus = 0
		}
	}

	m.surface.reset()
}

func (m *model) clampFocus(rows []menuRow) int {
	return util.Clamp(m.focus, 0, len(rows)-1)
}
