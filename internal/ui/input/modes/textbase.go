package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokesearch/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
	keys      Bindings
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model, keys Bindings) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
		keys:      keys,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.TriggerSearchAction{Source: types.SourceEnter}}, true
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeButton}}, true
	case key.Matches(msg, m.keys.Clear):
		if m.textInput != nil {
			m.textInput.Reset()
		}
		return []types.Action{types.UpdateQueryAction{Text: ""}}, true
	case key.Matches(msg, m.keys.HelpAlt):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}
