package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokesearch/internal/domain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxPanelWidth = 72
	minPanelWidth = 36
)

// Placeholder copy shown before the first search
const (
	PlaceholderHeadline = "Search for a Pokemon to get started!"
	PlaceholderHint     = `Try "pikachu", "charizard", or any Pokemon name/ID`
)

// Button labels
const (
	ButtonLabel     = "Search"
	ButtonBusyLabel = "Searching..."
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	InputView        string // rendered query field
	InputFocused     bool
	ButtonFocused    bool
	Loading          bool
	SpinnerView      string
	Query            string // normalized query of the request in flight
	InFlight         int
	Record           *domain.Record
	ErrorMessage     string
	ShowPlaceholder  bool
	StatusMessage    string
	HelpView         string // one-line key hints
	ShowHelp         bool
	HelpScrollOffset int
	Background       string // pre-rendered backdrop, empty when disabled
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	panel := r.RenderPanel(state, PanelWidth(width))

	footer := r.renderFooter(state, width)
	footerHeight := 0
	if footer != "" {
		footerHeight = lipgloss.Height(footer)
	}

	var screen string
	if state.Background != "" {
		x := max((width-lipgloss.Width(panel))/2, 0)
		y := max((height-footerHeight-lipgloss.Height(panel))/2, 0)
		screen = Overlay(state.Background, panel, x, y)
		screen = Overlay(screen, footer, 0, max(height-footerHeight, 0))
	} else {
		body := lipgloss.Place(width, max(height-footerHeight, 0), lipgloss.Center, lipgloss.Center, panel)
		screen = lipgloss.JoinVertical(lipgloss.Left, body, footer)
	}

	if state.ShowHelp {
		helpContent := r.renderHelpContent(height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(screen, helpContent, height, width, r.styles.HelpBox)
	}
	return screen
}

// PanelWidth returns the outer width of the search panel for a terminal width
func PanelWidth(termWidth int) int {
	w := min(termWidth-4, maxPanelWidth)
	return max(w, minPanelWidth)
}

// RenderPanel draws the search panel without backdrop or footer
func (r *Renderer) RenderPanel(state ViewState, width int) string {
	// Panel border and padding
	inner := width - 6

	var sections []string

	title := r.styles.Title.Render("Pokemon Search")
	sections = append(sections, lipgloss.PlaceHorizontal(inner, lipgloss.Center, title))
	sections = append(sections, r.renderSearchRow(state, inner))

	if state.Loading {
		line := state.SpinnerView + " Searching"
		if state.Query != "" {
			line += " for " + state.Query
		}
		if state.InFlight > 1 {
			line += fmt.Sprintf(" (%d requests)", state.InFlight)
		}
		sections = append(sections, r.styles.Dim.Render(line))
	}

	if body := r.renderBody(state, inner); body != "" {
		sections = append(sections, body)
	}

	return r.styles.Panel.Width(width - 2).Render(strings.Join(sections, "\n"))
}

// RenderResult draws only the outcome of a search: the error banner, the
// record card or the placeholder.
func (r *Renderer) RenderResult(state ViewState, width int) string {
	return r.renderBody(state, width)
}

func (r *Renderer) renderBody(state ViewState, inner int) string {
	var sections []string

	if state.ErrorMessage != "" {
		sections = append(sections, r.styles.ErrorBanner.Width(inner-2).Render(state.ErrorMessage))
	}

	if state.Record != nil {
		sections = append(sections, r.cardRender.Render(state.Record, inner))
	}

	if state.ShowPlaceholder {
		placeholder := lipgloss.JoinVertical(lipgloss.Center,
			"",
			r.styles.Placeholder.Render(PlaceholderHeadline),
			r.styles.Placeholder.Render(PlaceholderHint),
			"",
		)
		sections = append(sections, lipgloss.PlaceHorizontal(inner, lipgloss.Center, placeholder))
	}

	return strings.Join(sections, "\n")
}

func (r *Renderer) renderSearchRow(state ViewState, inner int) string {
	label := ButtonLabel
	buttonStyle := r.styles.Button
	switch {
	case state.Loading:
		label = ButtonBusyLabel
		buttonStyle = r.styles.ButtonBusy
	case state.ButtonFocused:
		buttonStyle = r.styles.ButtonFocused
	}
	// Fixed width so the row does not jump when the label changes
	button := buttonStyle.Width(buttonWidth).Align(lipgloss.Center).Render(label)

	inputStyle := r.styles.Input
	if state.InputFocused {
		inputStyle = r.styles.InputFocused
	}
	input := inputStyle.Width(inputBoxWidth(inner)).Render(state.InputView)

	return lipgloss.JoinHorizontal(lipgloss.Center, input, " ", button)
}

// buttonWidth fits the longer label plus horizontal padding
var buttonWidth = lipgloss.Width(ButtonBusyLabel) + 4

// inputBoxWidth is the lipgloss width of the query box: the row minus the
// button, both borders and the gap.
func inputBoxWidth(inner int) int {
	return max(inner-(buttonWidth+2)-3, 8)
}

// QueryFieldWidth returns how many cells the text input may use for a
// terminal width.
func QueryFieldWidth(termWidth int) int {
	// box padding and the cursor cell
	return max(inputBoxWidth(PanelWidth(termWidth)-6)-3, 1)
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	var lines []string
	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	}
	if state.HelpView != "" && !state.ShowHelp {
		lines = append(lines, r.styles.Help.Render(state.HelpView))
	}
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}
