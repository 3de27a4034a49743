package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pokesearch/internal/config"
	"pokesearch/internal/eventbus"
	"pokesearch/internal/logging"
	"pokesearch/internal/pokeapi"
	"pokesearch/internal/ui"
)

// options holds the global flags
type options struct {
	configPath   string
	apiURL       string
	logFile      string
	noBackground bool
	guardStale   bool
	verbose      bool
}

// app is what every subcommand needs after flags are parsed
type app struct {
	cfg       *config.Config
	configSvc config.ConfigService
	settings  *config.Updater
	bus       eventbus.EventBus
	logger    *zap.Logger
	logCloser io.Closer
}

// newRootCmd builds the CLI. The app created by the pre-run hook is stored
// in *a so the caller can release it after Execute returns.
func newRootCmd(a **app) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pokesearch",
		Short: "Look up Pokemon from the terminal",
		Long: `pokesearch is a terminal UI for the public PokeAPI.

Type a Pokemon name or National Dex number and press Enter to see its
artwork link, types, size, base stats and abilities.

Run without arguments to start the interactive interface.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			*a, err = setup(cmd, opts)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), *a)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: user config dir/pokesearch/config.toml)")
	flags.StringVar(&opts.apiURL, "api-url", "", "API base URL (default: "+pokeapi.DefaultBaseURL+")")
	flags.StringVar(&opts.logFile, "log-file", logging.DefaultFile, "Log file path")
	flags.BoolVar(&opts.noBackground, "no-background", false, "Disable the animated background")
	flags.BoolVar(&opts.guardStale, "guard-stale", false, "Ignore results from searches superseded by a newer one")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newLookupCmd(func() *app { return *a }))
	return rootCmd
}

// setup loads config, applies flag overrides and starts the event bus
func setup(cmd *cobra.Command, opts *options) (*app, error) {
	logger, logCloser := logging.New(logging.Options{Path: opts.logFile, Verbose: opts.verbose})
	bus := eventbus.New(logger)

	configSvc := config.NewConfigService(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		// A broken file should not stop the program
		logger.Warn("using default config", zap.String("path", configSvc.Path()), zap.Error(err))
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.BaseURL = opts.apiURL
	}
	if flags.Changed("guard-stale") {
		cfg.Search.GuardStaleResults = opts.guardStale
	}

	a := &app{
		cfg:       cfg,
		configSvc: configSvc,
		settings:  config.NewUpdater(configSvc),
		bus:       bus,
		logger:    logger,
		logCloser: logCloser,
	}
	a.subscribe()

	// --no-background is for this run only; don't persist it
	if opts.noBackground {
		cfg.UISettings.Background = false
	}
	return a, nil
}

// subscribe wires logging and persistence to the event bus
func (a *app) subscribe() {
	logSearch := func(e eventbus.DomainEvent) {
		switch ev := e.(type) {
		case eventbus.SearchStartedEvent:
			a.logger.Info("search started",
				zap.String("request_id", ev.RequestID),
				zap.Uint64("generation", ev.Generation),
				zap.String("query", ev.Query))
		case eventbus.SearchSucceededEvent:
			a.logger.Info("search succeeded",
				zap.String("request_id", ev.RequestID),
				zap.Uint64("generation", ev.Generation),
				zap.Int("id", ev.RecordID),
				zap.String("name", ev.Name))
		case eventbus.SearchFailedEvent:
			a.logger.Info("search failed",
				zap.String("request_id", ev.RequestID),
				zap.Uint64("generation", ev.Generation),
				zap.String("query", ev.Query),
				zap.String("message", ev.Message),
				zap.Error(ev.Err))
		case eventbus.SearchDroppedEvent:
			a.logger.Info("stale result dropped",
				zap.String("request_id", ev.RequestID),
				zap.Uint64("generation", ev.Generation),
				zap.Uint64("latest", ev.Latest))
		case eventbus.ErrorEvent:
			a.logger.Error(ev.Message, zap.Error(ev.Err))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventSearchSucceeded,
		eventbus.EventSearchFailed,
		eventbus.EventSearchDropped,
		eventbus.EventError,
	} {
		a.bus.Subscribe(t, logSearch)
	}

	a.bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			a.logger.Info("config loaded", zap.String("path", ev.Path))
		}
	})

	// Save config automatically when the UI changes a setting. The saved
	// copy carries only the toggled field so run-only flags stay out of the file.
	// Handlers run concurrently, so the updater orders the writes by revision.
	a.bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		written, err := a.settings.Apply(ev.Revision, func(c *config.Config) {
			c.UISettings.Background = ev.Background
		})
		if err != nil {
			a.logger.Error("failed to save config", zap.Error(err))
			a.bus.Publish(eventbus.ErrorEvent{Message: "failed to save config", Err: err})
			return
		}
		if !written {
			a.logger.Debug("skipped superseded config change", zap.Uint64("revision", ev.Revision))
			return
		}
		a.logger.Info("config saved",
			zap.String("path", a.configSvc.Path()),
			zap.Uint64("revision", ev.Revision),
			zap.Bool("background", ev.Background))
	})
}

func (a *app) close() {
	a.bus.Close()
	_ = a.logger.Sync()
	_ = a.logCloser.Close()
}

func (a *app) newFetcher() pokeapi.Fetcher {
	return pokeapi.NewClient(
		pokeapi.WithBaseURL(a.cfg.API.BaseURL),
		pokeapi.WithUserAgent(a.cfg.API.UserAgent),
		pokeapi.WithLogger(a.logger),
	)
}

// runInteractive starts the TUI and blocks until it exits
func runInteractive(ctx context.Context, a *app) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	model := ui.NewModel(ui.Options{
		Config:  a.cfg,
		Bus:     a.bus,
		Fetcher: a.newFetcher(),
		Logger:  a.logger,
		Context: ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Forward events the status line reacts to
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchSucceeded,
		eventbus.EventSearchDropped,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		unsubscribe := a.bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	a.logger.Info("starting ui",
		zap.String("api", a.cfg.API.BaseURL),
		zap.Bool("background", a.cfg.UISettings.Background),
		zap.Bool("guard_stale", a.cfg.Search.GuardStaleResults))

	if _, err := p.Run(); err != nil {
		// Ctrl+C through the context is a normal exit
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

// execute runs the CLI with args and releases everything it started
func execute(ctx context.Context, args []string, stdout io.Writer) error {
	var a *app
	rootCmd := newRootCmd(&a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	defer func() {
		if a != nil {
			a.close()
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errLookupFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
