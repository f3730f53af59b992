package commands

import (
	"github.com/spf13/cobra"
)

// GetTemplatesCmd returns the templates command with its subcommands
func GetTemplatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage VM templates",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered templates with usage statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, err := cmd.Flags().GetString("category")
			if err != nil {
				return err
			}
			return printJSON(templates.ListTemplates(category))
		},
	}
	listCmd.Flags().StringP("category", "c", "", "Only list templates of this category")
	templatesCmd.AddCommand(listCmd)

	templatesCmd.AddCommand(&cobra.Command{
		Use:   "show [name]",
		Short: "Show one template's full details and cost estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			details, err := templates.GetTemplateDetails(args[0])
			if err != nil {
				return err
			}
			return printJSON(details)
		},
	})

	templatesCmd.AddCommand(&cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a registered template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := templates.DeleteTemplate(args[0]); err != nil {
				return err
			}
			return printJSON(map[string]any{"deleted": args[0]})
		},
	})

	return templatesCmd
}
