package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"pokesearch/internal/config"
	"pokesearch/internal/eventbus"
	"pokesearch/internal/pokeapi"
	"pokesearch/internal/search"
	"pokesearch/internal/ui/commands"
	"pokesearch/internal/ui/handlers"
	"pokesearch/internal/ui/input"
	inputtypes "pokesearch/internal/ui/input/types"
	"pokesearch/internal/ui/state"
	"pokesearch/internal/ui/viewmodels"
	"pokesearch/internal/ui/views"
)

const (
	frameInterval = 80 * time.Millisecond
	statusTTL     = 3 * time.Second
)

// Options wires the model to its collaborators
type Options struct {
	Config  *config.Config
	Bus     eventbus.EventBus
	Fetcher pokeapi.Fetcher
	Logger  *zap.Logger
	Context context.Context // cancels in-flight fetches on shutdown
	Pager   PagerFunc
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // centralized UI state
	machine *search.Machine // search lifecycle
	logger  *zap.Logger

	spinner spinner.Model
	pager   PagerFunc
	ticking bool // a tickMsg is scheduled
	inPager bool

	settingsRevision uint64 // bumped on every persisted setting change

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = pokeapi.NewClient(
			pokeapi.WithBaseURL(cfg.API.BaseURL),
			pokeapi.WithUserAgent(cfg.API.UserAgent),
			pokeapi.WithLogger(logger),
		)
	}
	pager := opts.Pager
	if pager == nil {
		pager = NewOvPager()
	}

	appState := state.NewAppState(cfg.UISettings.Background)
	machine := search.New(search.WithStaleGuard(cfg.Search.GuardStaleResults))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		state:        appState,
		machine:      machine,
		logger:       logger,
		spinner:      sp,
		pager:        pager,
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(),
	}
	m.cmdExecutor = commands.NewExecutor(opts.Context, appState, machine, fetcher, opts.Bus, logger)
	m.viewModel = viewmodels.NewViewModel(appState, machine, m.inputHandler.Keys(), cfg.UISettings.SilkParams())

	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.inputHandler.Init()}
	if m.state.Background {
		cmds = append(cmds, m.startTicking())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.inputHandler.TextInput().Width = views.QueryFieldWidth(msg.Width)
		if m.state.ShowHelp {
			m.state.ScrollHelp(0, views.HelpMaxOffset(msg.Height))
		}
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Machine: m.machine}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink and friends
		inputCmd := m.inputHandler.Update(msg)
		cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	vs := m.viewModel.BuildViewState(*m.inputHandler.TextInput(), m.spinner)
	return m.renderer.Render(vs)
}

// Snapshot exposes the search state for the status line and tests
func (m *Model) Snapshot() search.State {
	return m.machine.Snapshot()
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateQueryAction:
		m.machine.SetQuery(a.Text)

	case inputtypes.TriggerSearchAction:
		cmd := m.cmdExecutor.ExecuteSearch(a.Source)
		if cmd == nil {
			return nil
		}
		return tea.Batch(cmd, m.spinner.Tick)

	case inputtypes.ChangeModeAction:
		switch a.Mode {
		case inputtypes.ModeQuery:
			m.state.Focus = state.FocusQuery
		case inputtypes.ModeButton:
			m.state.Focus = state.FocusButton
		}

	case inputtypes.ToggleHelpAction:
		m.state.ToggleHelp()

	case inputtypes.ScrollHelpAction:
		m.state.ScrollHelp(a.Delta, views.HelpMaxOffset(m.state.Height))

	case inputtypes.ToggleBackgroundAction:
		on := m.state.ToggleBackground()
		m.config.UISettings.Background = on
		m.settingsRevision++
		if m.bus != nil {
			m.bus.Publish(eventbus.ConfigChangedEvent{Revision: m.settingsRevision, Background: on})
		}
		label := "off"
		if on {
			label = "on"
		}
		cmds := []tea.Cmd{m.setStatus(fmt.Sprintf("Background %s", label))}
		if on && !m.ticking {
			cmds = append(cmds, m.startTicking())
		}
		return tea.Batch(cmds...)

	case inputtypes.OpenRawAction:
		rec := m.machine.Snapshot().Record
		if rec == nil || len(rec.Raw) == 0 {
			return m.setStatus("Nothing to show yet")
		}
		m.inPager = true
		return tea.Exec(m.pager(formatRaw(rec.Raw)), func(err error) tea.Msg {
			return pagerClosedMsg{err: err}
		})

	case inputtypes.StatusAction:
		return m.setStatus(a.Message)

	case inputtypes.QuitAction:
		m.logger.Debug("quit requested", zap.Bool("force", a.Force))
		return tea.Quit
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.SearchResultMsg:
		m.cmdExecutor.ApplyResult(msg)
		return nil

	case spinner.TickMsg:
		// Let the spinner loop die once nothing is loading
		if m.machine.Status() != search.Loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tickMsg:
		if !m.state.Background || m.inPager {
			m.ticking = false
			return nil
		}
		return tick()

	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case pagerClosedMsg:
		m.inPager = false
		var cmds []tea.Cmd
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err)))
		}
		if m.state.Background && !m.ticking {
			cmds = append(cmds, m.startTicking())
		}
		return tea.Batch(cmds...)

	case clearStatusMsg:
		if m.state.StatusMessage == msg.text {
			m.state.StatusMessage = ""
		}
		return nil
	}

	return nil
}

// setStatus shows a transient status line message
func (m *Model) setStatus(text string) tea.Cmd {
	m.state.StatusMessage = text
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{text: text}
	})
}

func (m *Model) startTicking() tea.Cmd {
	m.ticking = true
	return tick()
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
