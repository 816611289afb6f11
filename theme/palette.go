package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the terminal styles of a theme.
type Palette struct {
	Title      lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Bead       lipgloss.Style // Inactive bead.
	BeadActive lipgloss.Style
	Cursor     lipgloss.Style
	Frame      lipgloss.Style
}

// Colours follow the portfolio site: a blue accent on slate.
var (
	colorAccentDark  = lipgloss.Color("#0EA5E9")
	colorAccentLight = lipgloss.Color("#2563EB")
	colorTextDark    = lipgloss.Color("#E2E8F0")
	colorTextLight   = lipgloss.Color("#1E293B")
	colorMutedDark   = lipgloss.Color("#64748B")
	colorMutedLight  = lipgloss.Color("#94A3B8")
	colorError       = lipgloss.Color("#E74C3C")
	colorBeadA       = lipgloss.Color("#E74C3C")
)

// PaletteFor returns the styles of t.
func PaletteFor(t Theme) (p Palette) {
	accent, text, muted := colorAccentDark, colorTextDark, colorMutedDark
	if t == LIGHT {
		accent, text, muted = colorAccentLight, colorTextLight, colorMutedLight
	}

	p = Palette{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Text:       lipgloss.NewStyle().Foreground(text),
		Muted:      lipgloss.NewStyle().Foreground(muted),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(colorError),
		Bead:       lipgloss.NewStyle().Foreground(muted),
		BeadActive: lipgloss.NewStyle().Bold(true).Foreground(colorBeadA),
		Cursor:     lipgloss.NewStyle().Underline(true).Foreground(accent),
		Frame:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
	}

	return
}
