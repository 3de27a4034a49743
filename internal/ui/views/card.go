package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pokesearch/internal/domain"
)

const (
	statLabelWidth = 16
	statValueWidth = 4
	minBarWidth    = 10
)

// CardRenderer draws a fetched record
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// Render lays the record out in a column of the given width
func (cr *CardRenderer) Render(rec *domain.Record, width int) string {
	if rec == nil {
		return ""
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		cr.styles.Artwork.Render(cr.artworkLine(rec, width)),
		cr.styles.Name.Render(domain.DisplayName(rec.Name)),
		cr.styles.Number.Render(fmt.Sprintf("#%d", rec.ID)),
	)
	header = lipgloss.PlaceHorizontal(width, lipgloss.Center, header)

	// Types and Physical share a row
	half := width/2 - 1
	types := cr.styles.TypesBox.Width(boxInner(half)).Render(cr.typesSection(rec))
	physical := cr.styles.PhysicalBox.Width(boxInner(width - half - 2)).Render(cr.physicalSection(rec))
	row := lipgloss.JoinHorizontal(lipgloss.Top, types, "  ", physical)

	inner := boxInner(width)
	stats := cr.styles.StatsBox.Width(inner).Render(cr.statsSection(rec, inner-2))
	abilities := cr.styles.AbilityBox.Width(inner).Render(cr.abilitiesSection(rec, inner-2))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", row, stats, abilities)
}

func (cr *CardRenderer) artworkLine(rec *domain.Record, width int) string {
	art := rec.DisplayArtwork()
	if art == "" {
		return "(no artwork)"
	}
	if over := ansi.StringWidth(art) - width; over > 0 {
		// Keep the tail of long URLs, it holds the file name
		return ansi.TruncateLeft(art, over+1, "…")
	}
	return art
}

func (cr *CardRenderer) typesSection(rec *domain.Record) string {
	chips := make([]string, 0, len(rec.Types))
	for _, t := range rec.Types {
		chips = append(chips, cr.styles.TypeChip.Render(domain.DisplayLabel(t.Name)))
	}
	return cr.styles.SectionHead.Render("Types") + "\n" + strings.Join(chips, " ")
}

func (cr *CardRenderer) physicalSection(rec *domain.Record) string {
	return strings.Join([]string{
		cr.styles.SectionHead.Render("Physical"),
		fmt.Sprintf("Height: %s m", rec.HeightMetres()),
		fmt.Sprintf("Weight: %s kg", rec.WeightKilograms()),
	}, "\n")
}

func (cr *CardRenderer) statsSection(rec *domain.Record, width int) string {
	barWidth := width - statLabelWidth - statValueWidth - 1
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	bar := progress.New(
		progress.WithSolidFill(colorPurple),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	lines := []string{cr.styles.SectionHead.Render("Stats")}
	for _, s := range rec.Stats {
		label := cr.styles.StatLabel.Width(statLabelWidth).Render(domain.DisplayLabel(s.Name))
		value := cr.styles.StatValue.Width(statValueWidth).Align(lipgloss.Right).Render(strconv.Itoa(s.Value))
		lines = append(lines, label+bar.ViewAs(domain.AttributeFraction(s.Value))+" "+value)
	}
	return strings.Join(lines, "\n")
}

func (cr *CardRenderer) abilitiesSection(rec *domain.Record, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, a := range rec.Abilities {
		chip := cr.styles.AbilityChip.Render(domain.DisplayLabel(a.Name))
		if a.Hidden {
			chip = cr.styles.HiddenChip.Render(domain.DisplayLabel(a.Name) + " (hidden)")
		}
		w := lipgloss.Width(chip) + 1
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return cr.styles.SectionHead.Render("Abilities") + "\n" + strings.Join(rows, "\n")
}

// boxInner converts an outer box width to lipgloss Width (border excluded)
func boxInner(outer int) int {
	if outer < 4 {
		return 4
	}
	return outer - 2
}
