package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpLines returns the help popup content, one entry per line
func HelpLines() []string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(13)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(k, desc string) string {
		return fmt.Sprintf("  %s%s", keyStyle.Render(k), descStyle.Render(desc))
	}

	return []string{
		titleStyle.Render("Pokemon Search Help"),
		"",
		sectionStyle.Render("Query field"),
		entry("type", "Edit the Pokemon name or ID"),
		entry("Enter", "Search"),
		entry("Esc", "Clear the query"),
		entry("Tab", "Focus the Search button"),
		"",
		sectionStyle.Render("Search button"),
		entry("Enter/Space", "Search (ignored while searching)"),
		entry("v", "View the raw JSON response"),
		entry("b", "Toggle the animated background"),
		entry("Tab", "Back to the query field"),
		"",
		sectionStyle.Render("Other"),
		entry("?/F1", "Toggle this help"),
		entry("↑/↓, j/k", "Scroll this help"),
		entry("q", "Quit (button focus)"),
		entry("Ctrl+C", "Quit"),
	}
}

// HelpMaxOffset is the furthest the help popup can scroll for a terminal height
func HelpMaxOffset(height int) int {
	return max(len(HelpLines())-helpVisibleHeight(height), 0)
}

func helpVisibleHeight(height int) int {
	// popup border and padding
	return max(height-6, 5)
}

// renderHelpContent renders the visible slice of the help popup
func (r *Renderer) renderHelpContent(height, scrollOffset int) string {
	lines := HelpLines()
	totalLines := len(lines)
	visibleHeight := helpVisibleHeight(height)

	if totalLines <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	maxOffset := totalLines - visibleHeight
	scrollOffset = min(max(scrollOffset, 0), maxOffset)

	endLine := scrollOffset + visibleHeight
	visible := append([]string(nil), lines[scrollOffset:endLine]...)

	if scrollOffset > 0 {
		visible[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visible[len(visible)-1] = r.styles.Scroll.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}
