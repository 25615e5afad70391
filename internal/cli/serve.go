package cli

import (
	"fmt"
	"log"

	"my_trip/internal/adapter/http/routes"
	"my_trip/internal/app"

	"github.com/spf13/cobra"
)

// NewServeCommand starts the local HTTP API on top of the same stores.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				if port <= 0 {
					port = a.Config.Port
				}
				addr := fmt.Sprintf(":%d", port)
				log.SetOutput(cmd.ErrOrStderr())
				log.Printf("[cli][serve] listening addr=%s backend=%s", addr, a.Config.KVBackend)
				if err := routes.NewRouter(a).Run(addr); err != nil {
					return WrapExitError(ExitCommandError, "server stopped", err)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default: PORT or 8080)")
	return cmd
}
