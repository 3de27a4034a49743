package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pokesearch/internal/search"
	"pokesearch/internal/ui/commands"
	"pokesearch/internal/ui/views"
)

// errLookupFailed reports a Failed search whose message was already printed
var errLookupFailed = errors.New("lookup failed")

const lookupWidth = 64

func newLookupCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name|id>",
		Short: "Search once and print the result",
		Long: `Runs a single search through the same lifecycle as the interactive UI
and prints the resulting card. Exits with status 1 when the search fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			machine := search.New(search.WithStaleGuard(a.cfg.Search.GuardStaleResults))
			executor := commands.NewExecutor(cmd.Context(), nil, machine, a.newFetcher(), a.bus, a.logger)

			snap, err := executor.RunSync(args[0])
			if err != nil {
				return err
			}

			renderer := views.NewRenderer()
			out := renderer.RenderResult(views.ViewState{
				Record:       snap.Record,
				ErrorMessage: snap.ErrorMessage,
			}, lookupWidth)
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if snap.Status == search.Failed {
				return errLookupFailed
			}
			return nil
		},
	}
}
