package cli

import (
	"github.com/spf13/cobra"

	"github.com/menuforge/menuforge/pkg/config"
	"github.com/menuforge/menuforge/pkg/server"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <project.json>",
		Short: "Serve the menu's rendering surfaces over HTTP",
		Long: `Serve starts a local HTTP server rendering the project.

Routes:
  /             static HTML document
  /print        print variant (triggers the print dialog)
  /menu.png     bitmap snapshot
  /outline.svg  document structure diagram
  /project.json raw document`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := loadProject(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.LoadDefault()
			if err != nil {
				logger.Warn("config unreadable, using defaults", "err", err)
				cfg = config.Default()
			}

			printInfo("Serving %s at http://%s", p.Name, addr)
			srv := server.New(p,
				server.WithLogger(logger),
				server.WithCurrencyFlag(cfg.CurrencyFlag))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	return cmd
}
