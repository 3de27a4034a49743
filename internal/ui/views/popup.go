package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centres a styled popup over greyed-out main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	return Overlay(desaturateANSI(mainContent), styledPopup, x, y)
}

const ansiReset = "\x1b[0m"

// Overlay places fg on top of bg with its top-left corner at (x, y).
// Cells of bg outside fg's bounding box are kept, styles included.
func Overlay(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, fgLine := range fgLines {
		row := y + i
		base := bgLines[row]
		baseWidth := ansi.StringWidth(base)

		left := ansi.Truncate(base, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		// Pad short popup lines so the box edge stays straight
		if w := ansi.StringWidth(fgLine); w < fgWidth {
			fgLine += strings.Repeat(" ", fgWidth-w)
		}

		right := ""
		if baseWidth > x+fgWidth {
			right = ansi.TruncateLeft(base, x+fgWidth, "")
		}
		if strings.Contains(base, "\x1b") {
			// Stop base styles bleeding into the popup
			left += ansiReset
			fgLine += ansiReset
		}
		bgLines[row] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(line)
	}
	return strings.Join(lines, "\n")
}
