package mini

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/overlay"
	"github.com/couchpad-app/couchpad/style"
)

func (m *model) View() string {
	if m.err != nil {
		return style.Fg(lipgloss.Color("1"))(m.err.Error()) + "\n"
	}

	var sections []string

	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}

	if body := m.renderView(); body != "" {
		sections = append(sections, body)
	}

	if m.app.View().ShowPrompts() {
		sections = append(sections, m.renderPrompts())
	}

	content := strings.Join(sections, "\n")

	// Overlay chrome sits at the screen bottom, like on the TV.
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Bottom, content)
}

func (m *model) renderToasts() string {
	var lines []string
	for _, spawned := range m.app.Toasts() {
		lines = append(lines, style.Italic(spawned.Toast.Message()))
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderView() string {
	switch view := m.app.View().(type) {
	case overlay.HiddenView:
		return ""

	case overlay.MiniSeekView:
		return m.renderBar()

	case overlay.SeekBarView:
		return strings.Join([]string{
			style.Bold(m.mediaTitle()),
			m.renderTimes(),
			m.renderBar(),
		}, "\n")

	case overlay.SeekingView:
		indicator := ""
		if speed, ok := m.app.Mpv.SeekSpeed().Get(); ok {
			indicator = speed.Label()
			if m.app.Mpv.SeekExact() {
				indicator = style.Accent(indicator + " exact")
			}
		}

		return strings.Join([]string{
			indicator,
			m.renderTimes(),
			m.renderBar(),
		}, "\n")

	case overlay.MediaMenuView:
		if sub, ok := view.Submenu.Get(); ok {
			return m.renderMenu(sub.Label(), menuRows(m.app))
		}
		return m.renderMenu("Media Menu", menuRows(m.app))

	case overlay.HomeMenuView:
		if sub, ok := view.Submenu.Get(); ok {
			return m.renderMenu(sub.Label(), menuRows(m.app))
		}
		return m.renderMenu("Home Menu", menuRows(m.app))

	case overlay.CharactersView:
		// Terminal stand-in for the glyph table: show the prompt labels the
		// overlay would draw with its controller font.
		return style.Faint("A B X Y L1 L2 R1 R2 ↑ ↓ ← → Select Start Home")
	}

	return ""
}

func (m *model) renderBar() string {
	percent := mpv.PropertyCached[float64](m.app.Mpv, "percent-pos").OrElse(0)
	return m.progressC.ViewAs(percent / 100)
}

func (m *model) renderTimes() string {
	pos := m.app.Mpv.Position().MMSS()
	dur := m.app.Mpv.Duration().MMSS()

	gap := m.width - lipgloss.Width(pos) - lipgloss.Width(dur)
	if gap < 1 {
		gap = 1
	}
	return style.Faint(pos + strings.Repeat(" ", gap) + dur)
}

func (m *model) mediaTitle() string {
	return mpv.PropertyCached[string](m.app.Mpv, "media-title").OrElse("(no media)")
}

func (m *model) renderMenu(title string, rows []menuRow) string {
	lines := []string{style.Title(title)}

	for i, row := range rows {
		label := row.label
		if !row.enabled {
			label = style.Faint(label)
		}

		if i == m.focus {
			lines = append(lines, style.Accent("> "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}

	if len(rows) == 0 {
		lines = append(lines, style.Faint("  (empty)"))
	}

	return strings.Join(lines, "\n")
}

func (m *model) renderPrompts() string {
	var prompts []string

	for _, pair := range m.app.View().Actions().Iter() {
		if !pair.B.ShowPrompt() {
			continue
		}
		prompts = append(prompts,
			fmt.Sprintf("%s %s", style.Accent(pair.A.String()), pair.B.Label(m.app)))
	}

	return strings.Join(prompts, style.Faint(" · "))
}
