package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/menuforge/menuforge/pkg/config"
	"github.com/menuforge/menuforge/pkg/export"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var (
		formats string
		outDir  string
		noFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "export <project.json>",
		Short: "Export a menu to one or more formats",
		Long: `Export renders a menu project into artifacts.

Formats:
  html   self-contained static HTML document
  png    fixed-size 800x1200 bitmap snapshot
  print  HTML print variant, opened in the browser for the print dialog
  svg    document structure outline diagram`,
		Example: `  menuforge export menu.json
  menuforge export menu.json -f html,png -o ./dist
  menuforge export menu.json -f print`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := loadProject(args[0])
			if err != nil {
				return err
			}

			fs, err := export.ParseFormats(formats)
			if err != nil {
				return err
			}

			cfg, err := config.LoadDefault()
			if err != nil {
				logger.Warn("config unreadable, using defaults", "err", err)
				cfg = config.Default()
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			showFlag := cfg.CurrencyFlag && !noFlag

			e := export.New(outDir,
				export.WithLogger(logger),
				export.WithCurrencyFlag(showFlag),
				export.WithFont(cfg.Font))

			prog := newProgress(logger)
			var written []string
			for _, f := range fs {
				path, err := e.Export(cmd.Context(), p, f)
				if err != nil {
					printError("export %s failed: %v", f, err)
					return err
				}
				written = append(written, path)
			}
			prog.done(fmt.Sprintf("Exported %d artifact(s)", len(written)))

			printSuccess("Exported %s (%s)", p.Name, strings.Join(formatNames(fs), ", "))
			for _, path := range written {
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formats, "formats", "f", "html", "comma-separated formats: html,png,print,svg")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&noFlag, "no-currency-flag", false, "omit the currency flag prefix on prices")

	return cmd
}

func formatNames(fs []export.Format) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
