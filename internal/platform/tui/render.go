package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// DefaultColor is the lit pixel colour, an amber close to the LED panel.
const DefaultColor = "11"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("245"))
)

// panelStyle returns the bordered style the display is drawn in.
func panelStyle(color string) lipgloss.Style {
	if color == "" {
		color = DefaultColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color(color))
}

// RenderFrame draws f inside a rounded border, two pixel rows per line.
func RenderFrame(f *core.Frame, color string) string {
	return panelStyle(color).Render(f.String())
}

// PanelSize returns the terminal cells needed to show a rows x cols frame
// with its border.
func PanelSize(rows, cols int) (width, height int) {
	return cols + 2, (rows+1)/2 + 2
}

// renderLogs draws the last lines of the debug log under the display.
func renderLogs(lines []string, width int) string {
	if len(lines) == 0 {
		lines = []string{"(no log output)"}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if width > 0 && len(l) > width {
			l = l[:width]
		}
		out[i] = l
	}
	return logStyle.Render(strings.Join(out, "\n"))
}
