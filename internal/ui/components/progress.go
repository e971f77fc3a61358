package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/ui/theme"
)

// ProgressBar displays a horizontal bar. Label is padded to LabelWidth so
// stacked bars line up.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Percent    float64
	Suffix     string
	Width      int
	Fill       lipgloss.Style
}

// NewProgressBar creates a bar filled with the theme's secondary color.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
		Fill:    lipgloss.NewStyle().Foreground(theme.Secondary),
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var out string
	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		out += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	suffix := p.Suffix
	if suffix == "" {
		suffix = fmt.Sprintf("%3d%%", int(p.Percent*100))
	}

	barWidth := max(p.Width-lipgloss.Width(out)-lipgloss.Width(suffix)-2, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	out += p.Fill.Render(strings.Repeat("█", filled))
	out += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))
	out += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	return out
}
