package commands

import (
	"github.com/spf13/cobra"

	"github.com/skyforge/skyforge/internal/types"
)

// GetProvidersCmd returns the providers command
func GetProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the supported cloud providers",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printJSON(map[string]any{
				"providers": provisioner.SupportedProviders(),
			})
		},
	}
}

// GetCatalogCmd returns the catalog command
func GetCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the VM catalog for a provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, err := cmd.Flags().GetString(flagProvider)
			if err != nil {
				return err
			}

			configurations, err := construction.AvailableConfigurations(types.Provider(provider))
			if err != nil {
				return err
			}
			return printJSON(configurations)
		},
	}

	cmd.Flags().StringP(flagProvider, "p", "", "Provider name (aws, azure, gcp, onpremise)")
	if err := cmd.MarkFlagRequired(flagProvider); err != nil {
		panic(err)
	}
	return cmd
}
