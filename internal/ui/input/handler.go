package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokesearch/internal/ui/input/modes"
	"pokesearch/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared query field
	help        *modes.HelpMode
	keys        KeyMap
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "Enter Pokemon name or ID"
	ti.Prompt = ""
	ti.CharLimit = 0 // no limit; the query is only checked for blankness
	ti.Focus()

	keys := DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	// Register all mode handlers
	h.help = modes.NewHelpMode(keys.bindings())
	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput, keys.bindings())
	h.modes[types.ModeButton] = modes.NewButtonMode(keys.bindings())
	h.modes[types.ModeHelp] = h.help

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}

		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)

		if changeMode.Mode == types.ModeHelp {
			h.help.SetReturnMode(h.currentMode)
		}
		h.currentMode = changeMode.Mode
		allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		allActions = append(allActions, changeMode)

		if h.currentMode == types.ModeQuery {
			cmd = textinput.Blink
		}
	}

	// Unconsumed keys in the query field go to the text input
	if h.currentMode == types.ModeQuery && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateQueryAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeQuery
	}
	return h.currentMode
}

// TextInput returns the shared query field
func (h *Handler) TextInput() *textinput.Model {
	if h == nil {
		return nil
	}
	return h.textInput
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// Update handles non-keyboard messages for the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
