package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/menuforge/menuforge/pkg/config"
	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/store"
	"github.com/menuforge/menuforge/pkg/templates"
)

// newProjectCmd creates the project command group.
func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage stored menu projects",
	}
	cmd.AddCommand(newProjectNewCmd())
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	return cmd
}

// openStore constructs the project store selected by the config.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{Addr: cfg.Store.RedisAddr})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{URI: cfg.Store.MongoURI})
	default:
		return store.NewFileStore(cfg.Store.Dir)
	}
}

func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.LoadDefault()
	if err != nil {
		loggerFromContext(cmd.Context()).Warn("config unreadable, using defaults", "err", err)
		return config.Default()
	}
	return cfg
}

func newProjectNewCmd() *cobra.Command {
	var (
		restaurant string
		templateID string
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new project in the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tpl := templates.Default()
			if templateID != "" {
				found := false
				for _, t := range templates.Merge(customTemplates()) {
					if t.ID == templateID {
						tpl, found = t, true
						break
					}
				}
				if !found {
					return fmt.Errorf("unknown template %q", templateID)
				}
			}

			p := menu.NewProject(tpl)
			p.Name = args[0]
			if restaurant != "" {
				info := p.Restaurant
				info.Name = restaurant
				p.SetRestaurant(info)
			}

			s, err := openStore(ctx, loadConfig(cmd))
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Put(ctx, p); err != nil {
				return err
			}
			printSuccess("Created project %s", p.Name)
			printDetail("id: %s  template: %s", p.ID, tpl.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&restaurant, "restaurant", "", "restaurant name")
	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template id (default: the built-in default)")
	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openStore(ctx, loadConfig(cmd))
			if err != nil {
				return err
			}
			defer s.Close()

			all, err := s.List(ctx)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				printInfo("No stored projects")
				return nil
			}

			rows := make([][]string, 0, len(all))
			for _, p := range all {
				rows = append(rows, []string{
					p.ID, p.Name, p.Restaurant.Name,
					fmt.Sprintf("%d", len(p.Categories)),
					p.UpdatedAt.Format("2006-01-02 15:04"),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			tbl := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("ID", "Name", "Restaurant", "Categories", "Updated").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(StyleTitle.Render("Projects"))
			fmt.Println(tbl.Render())
			return nil
		},
	}
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openStore(ctx, loadConfig(cmd))
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted project %s", args[0])
			return nil
		},
	}
}
