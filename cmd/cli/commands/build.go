package commands

import (
	"github.com/spf13/cobra"

	"github.com/skyforge/skyforge/internal/types"
)

// buildFlags reads the shared provider/vm-type/region/flavor flag set
func buildFlags(cmd *cobra.Command) (types.Provider, types.VMType, string, string, error) {
	provider, err := cmd.Flags().GetString(flagProvider)
	if err != nil {
		return "", "", "", "", err
	}
	vmType, err := cmd.Flags().GetString(flagVMType)
	if err != nil {
		return "", "", "", "", err
	}
	region, err := cmd.Flags().GetString(flagRegion)
	if err != nil {
		return "", "", "", "", err
	}
	flavor, err := cmd.Flags().GetString(flagFlavor)
	if err != nil {
		return "", "", "", "", err
	}
	return types.Provider(provider), types.VMType(vmType), region, flavor, nil
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagProvider, "p", "", "Provider name (aws, azure, gcp, onpremise)")
	cmd.Flags().StringP(flagVMType, "t", "standard", "VM type (standard, memory_optimized, compute_optimized)")
	cmd.Flags().StringP(flagRegion, "r", "", "Target region")
	cmd.Flags().StringP(flagFlavor, "f", "", "Catalog flavor (small, medium, large); empty uses the default")

	for _, required := range []string{flagProvider, flagRegion} {
		if err := cmd.MarkFlagRequired(required); err != nil {
			panic(err)
		}
	}
}

// GetValidateCmd returns the validate command
func GetValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Dry-run a VM configuration and estimate its cost",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, vmType, region, flavor, err := buildFlags(cmd)
			if err != nil {
				return err
			}

			return printJSON(construction.ValidateConfiguration(&types.ValidateRequest{
				Provider: provider,
				VMType:   vmType,
				Region:   region,
				Flavor:   flavor,
			}))
		},
	}

	addBuildFlags(cmd)
	return cmd
}

// GetBuildCmd returns the build command
func GetBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a simulated VM with its network and storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, vmType, region, flavor, err := buildFlags(cmd)
			if err != nil {
				return err
			}

			spec, resources, err := construction.BuildVM(&types.BuildRequest{
				Provider: provider,
				VMType:   vmType,
				Region:   region,
				Flavor:   flavor,
			})
			if err != nil {
				return err
			}

			return printJSON(types.BuildResponse{
				Success:          true,
				VMSpecification:  spec,
				CreatedResources: resources,
			})
		},
	}

	addBuildFlags(cmd)
	return cmd
}
