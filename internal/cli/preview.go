package cli

import (
	"github.com/spf13/cobra"

	"github.com/menuforge/menuforge/internal/tui"
	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/templates"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <project.json>",
		Short: "Preview a menu interactively in the terminal",
		Long: `Preview renders a menu project in the terminal and keeps it live.

In the custom layout mode items can be manipulated directly: click an item
to select it, drag to move it, +/- to scale, r to reset. Manipulation state
is transient and never written back to the project file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := loadProject(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded project", "name", p.Name, "categories", len(p.Categories))

			return tui.Run(p)
		},
	}
}

// loadProject reads a project file and reconciles a dangling template
// reference (for example a custom template deleted after the project was
// saved) against the known catalog.
func loadProject(path string) (*menu.MenuProject, error) {
	p, err := menu.Load(path)
	if err != nil {
		return nil, err
	}
	p.Template = templates.Resolve(p.Template, customTemplates())
	return p, nil
}

// customTemplates lists the user's stored templates. Failures degrade to an
// empty catalog; template resolution then falls back to the built-ins.
func customTemplates() []menu.MenuTemplate {
	m, err := templates.NewManager(templatesDir())
	if err != nil {
		return nil
	}
	ts, err := m.List()
	if err != nil {
		return nil
	}
	return ts
}
