// Package commands contains the skyforge CLI commands. The commands drive
// the provisioning services in-process; no server is required.
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/services"
)

// flag names
const (
	flagProvider = "provider"
	flagVMType   = "vm-type"
	flagRegion   = "region"
	flagFlavor   = "flavor"
)

var (
	factories    = compute.NewFactoryRegistry()
	director     = services.NewDirector()
	provisioner  = services.NewProvisioner(factories)
	construction = services.NewConstructionService(director, factories)
	templates    = services.NewTemplateService(services.NewPrototypeRegistry(), director, factories)
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "skyforge",
	Short: "Skyforge CLI - simulated multi-cloud VM provisioning",
	Long: `Skyforge CLI explores the provider catalog, validates VM configurations
and builds simulated resource families without touching any real cloud.`,
}

func init() {
	RootCmd.AddCommand(GetProvidersCmd())
	RootCmd.AddCommand(GetCatalogCmd())
	RootCmd.AddCommand(GetTemplatesCmd())
	RootCmd.AddCommand(GetValidateCmd())
	RootCmd.AddCommand(GetBuildCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// printJSON pretty-prints a payload to stdout
func printJSON(payload any) error {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
