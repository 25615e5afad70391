package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"

	"my_trip/internal/app"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string

	// NewApp builds the wired stores. Tests replace it.
	NewApp func(ctx context.Context) (*app.App, error)
}

var ValidFormats = []string{"text", "json", "yaml"}

func defaultNewApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, app.LoadConfig())
}

// NewRootCommand creates the tripctl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{NewApp: defaultNewApp})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tripctl",
		Short:         "tripctl - My Trip local store operator",
		Long:          "Inspect and operate the local order and favorites stores of the My Trip booking app.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (store logs on stderr)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	return cmd
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// withApp builds the application, runs fn and closes it.
func (o *RootOptions) withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := o.NewApp(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open stores", err)
	}
	defer a.Close()
	return fn(a)
}
