package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"pokesearch/internal/search"
	"pokesearch/internal/silk"
	"pokesearch/internal/ui/input"
	"pokesearch/internal/ui/state"
	"pokesearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.AppState
	machine *search.Machine
	keys    input.KeyMap
	help    help.Model
	silk    silk.Params
	now     func() time.Time
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, machine *search.Machine, keys input.KeyMap, params silk.Params) *ViewModel {
	return &ViewModel{
		state:   appState,
		machine: machine,
		keys:    keys,
		help:    help.New(),
		silk:    params,
		now:     time.Now,
	}
}

// SetClock replaces the clock driving the background animation
func (vm *ViewModel) SetClock(now func() time.Time) {
	vm.now = now
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(ti textinput.Model, sp spinner.Model) views.ViewState {
	snap := vm.machine.Snapshot()
	loading := snap.Status == search.Loading
	buttonFocused := vm.state.Focus == state.FocusButton

	vs := views.ViewState{
		Width:            vm.state.Width,
		Height:           vm.state.Height,
		InputView:        ti.View(),
		InputFocused:     vm.state.Focus == state.FocusQuery && !vm.state.ShowHelp,
		ButtonFocused:    buttonFocused && !vm.state.ShowHelp,
		Loading:          loading,
		InFlight:         snap.InFlight,
		Record:           snap.Record,
		ErrorMessage:     snap.ErrorMessage,
		ShowPlaceholder:  snap.Status == search.Idle && snap.ErrorMessage == "",
		StatusMessage:    vm.state.StatusMessage,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
	}

	if loading {
		vs.SpinnerView = sp.View()
		vs.Query = vm.state.LastQuery
	}

	vm.help.Width = vm.state.Width
	vs.HelpView = vm.help.ShortHelpView(vm.keys.ShortHelpFor(buttonFocused))

	if vm.state.Background && vm.state.Width > 0 && vm.state.Height > 0 {
		vs.Background = silk.Render(vm.state.Width, vm.state.Height, vm.state.Elapsed(vm.now()), vm.silk)
	}

	return vs
}
