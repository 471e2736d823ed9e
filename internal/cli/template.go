package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/menuforge/menuforge/pkg/templates"
)

// newTemplateCmd creates the template command group.
func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage menu templates",
	}
	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateDeleteCmd())
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := templates.Merge(customTemplates())

			rows := make([][]string, 0, len(all))
			for _, t := range all {
				kind := "built-in"
				if t.IsCustom {
					kind = "custom"
				}
				rows = append(rows, []string{
					t.ID, t.Name, string(t.Family), string(t.Style.Layout), kind,
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			tbl := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("ID", "Name", "Family", "Layout", "Kind").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(StyleTitle.Render("Templates"))
			fmt.Println(tbl.Render())
			printDetail("%d total", len(all))
			return nil
		},
	}
}

func newTemplateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom template",
		Long: `Delete removes a custom template by id. Built-in templates cannot be
deleted. Projects still referencing the deleted template fall back to the
default built-in the next time they are loaded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if _, ok := templates.BuiltinByID(id); ok {
				return fmt.Errorf("%q is a built-in template and cannot be deleted", id)
			}

			m, err := templates.NewManager(templatesDir())
			if err != nil {
				return err
			}
			if err := m.Delete(id); err != nil {
				return err
			}
			printSuccess("Deleted template %s", id)
			return nil
		},
	}
}
