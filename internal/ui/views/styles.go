package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Panel         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonBusy    lipgloss.Style
	ErrorBanner   lipgloss.Style
	Dim           lipgloss.Style
	Placeholder   lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	HelpBox       lipgloss.Style
	Scroll        lipgloss.Style

	// Record card
	Name        lipgloss.Style
	Number      lipgloss.Style
	Artwork     lipgloss.Style
	SectionHead lipgloss.Style
	TypesBox    lipgloss.Style
	PhysicalBox lipgloss.Style
	StatsBox    lipgloss.Style
	AbilityBox  lipgloss.Style
	TypeChip    lipgloss.Style
	AbilityChip lipgloss.Style
	HiddenChip  lipgloss.Style
	StatLabel   lipgloss.Style
	StatValue   lipgloss.Style
}

// Palette values shared with the stat bars
const (
	colorBlue   = "#3B82F6"
	colorGray   = "#9CA3AF"
	colorPurple = "#A855F7"
	colorYellow = "#FACC15"
	colorRed    = "#B91C1C"
	colorText   = "#1F2937"
	colorMuted  = "#6B7280"
	colorPanel  = "#F3F4F6"
)

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorText)).
			MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorGray)).
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#D1D5DB")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(colorBlue)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(colorBlue)).
			Foreground(lipgloss.Color(colorBlue)).
			Bold(true).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorBlue)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2),
		ButtonBusy: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(colorGray)).
			Foreground(lipgloss.Color(colorGray)).
			Padding(0, 2),
		ErrorBanner: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#F87171")).
			Foreground(lipgloss.Color(colorRed)).
			Padding(0, 2),
		Dim:         lipgloss.NewStyle().Faint(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).Align(lipgloss.Center),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),

		Name:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorText)),
		Number:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
		Artwork:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).Italic(true),
		SectionHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151")),
		TypesBox:    box.BorderForeground(lipgloss.Color("#BFDBFE")),
		PhysicalBox: box.BorderForeground(lipgloss.Color("#BBF7D0")),
		StatsBox:    box.BorderForeground(lipgloss.Color("#E9D5FF")),
		AbilityBox:  box.BorderForeground(lipgloss.Color("#FEF08A")),
		TypeChip: lipgloss.NewStyle().
			Background(lipgloss.Color(colorBlue)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),
		AbilityChip: lipgloss.NewStyle().
			Background(lipgloss.Color(colorYellow)).
			Foreground(lipgloss.Color(colorText)).
			Padding(0, 1),
		HiddenChip: lipgloss.NewStyle().
			Background(lipgloss.Color("#FEF9C3")).
			Foreground(lipgloss.Color(colorMuted)).
			Italic(true).
			Padding(0, 1),
		StatLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorText)),
	}
}
