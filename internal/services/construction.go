package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/logger"
	"github.com/skyforge/skyforge/internal/types"
)

// supportedRegions are the regions each provider advertises. They feed
// discovery and suggestions only; builds accept any region string.
var supportedRegions = map[types.Provider][]string{
	types.ProviderAWS:       {"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-1"},
	types.ProviderAzure:     {"eastus", "westus2", "westeurope", "southeastasia"},
	types.ProviderGCP:       {"us-central1", "us-west1", "europe-west1", "asia-southeast1"},
	types.ProviderOnPremise: {"datacenter-1", "datacenter-2", "edge-location-1"},
}

// vmHourlyRates are the per-vCPU hourly rates per VM type, in USD
var vmHourlyRates = map[types.VMType]float64{
	types.VMTypeStandard:         0.10,
	types.VMTypeMemoryOptimized:  0.20,
	types.VMTypeComputeOptimized: 0.15,
}

const (
	storageHourlyRatePerGB   = 0.001
	publicNetworkHourlyRate  = 0.05
	privateNetworkHourlyRate = 0.02
	hoursPerMonth            = 24 * 30
)

// ConstructionService drives complete VM builds: director-derived
// specifications, custom overrides, dry-run validation with cost estimates
// and catalog discovery.
type ConstructionService struct {
	director *Director
	registry *compute.FactoryRegistry
}

// NewConstructionService creates a construction service
func NewConstructionService(director *Director, registry *compute.FactoryRegistry) *ConstructionService {
	return &ConstructionService{director: director, registry: registry}
}

// BuildVM derives a specification from the catalog, applies the request's
// custom sections and materializes the resource family through the builder
func (s *ConstructionService) BuildVM(req *types.BuildRequest) (*types.VMSpecification, []types.ResourceInfo, error) {
	spec, err := s.director.VMSpecification(req.Provider, req.VMType, req.Region, req.Flavor, req.CustomVMConfig)
	if err != nil {
		return nil, nil, err
	}

	spec.NetworkConfig.Apply(req.CustomNetworkConfig)
	spec.StorageConfig.Apply(req.CustomStorageConfig)

	builder := NewVMBuilder(s.registry, req.Provider, req.VMType)
	spec, resources, err := builder.
		SetVMConfig(spec.VMConfig).
		SetNetworkConfig(spec.NetworkConfig).
		SetStorageConfig(spec.StorageConfig).
		Build()
	if err != nil {
		return nil, nil, err
	}

	logger.Infof("built %s %s VM in %s with %d resources", req.Provider, req.VMType, req.Region, len(resources))
	return spec, resources, nil
}

// ValidateConfiguration dry-runs a configuration through the director
// without creating anything. Any region string is accepted; the region
// lists inform discovery and suggestions only. Invalid requests come back
// with suggestions instead of an error return.
func (s *ConstructionService) ValidateConfiguration(req *types.ValidateRequest) *types.ValidationResult {
	spec, err := s.director.VMSpecification(req.Provider, req.VMType, req.Region, req.Flavor, nil)
	if err != nil {
		return &types.ValidationResult{
			Valid:       false,
			Error:       err.Error(),
			Suggestions: s.suggestions(req.Provider, req.VMType),
		}
	}

	return &types.ValidationResult{
		Valid:         true,
		Specification: spec,
		EstimatedCost: EstimateCost(spec),
		Warnings:      ConfigurationWarnings(spec),
	}
}

// AvailableConfigurations returns the full discovery view for one provider
func (s *ConstructionService) AvailableConfigurations(provider types.Provider) (*types.ProviderConfigurations, error) {
	if !provider.IsValid() {
		return nil, types.NewNotFoundError("unsupported provider '%s'", provider)
	}

	regions := supportedRegions[provider]
	sampleRegion := ""
	if len(regions) > 0 {
		sampleRegion = regions[0]
	}

	return &types.ProviderConfigurations{
		Provider:         provider,
		VMTypes:          s.director.AvailableVMTypes(provider),
		SupportedRegions: regions,
		DefaultConfigs: map[string]any{
			"network_config": types.DefaultNetworkConfig(sampleRegion),
			"storage_config": types.DefaultStorageConfig(sampleRegion, baseStorageSizes[types.VMTypeStandard]),
		},
	}, nil
}

// suggestions lists the valid neighboring choices for a failed validation
func (s *ConstructionService) suggestions(provider types.Provider, vmType types.VMType) []string {
	var out []string

	catalog := s.director.AvailableVMTypes(provider)
	if len(catalog) > 0 {
		vmTypes := make([]string, 0, len(catalog))
		for vt := range catalog {
			vmTypes = append(vmTypes, vt.String())
		}
		sort.Strings(vmTypes)
		out = append(out, fmt.Sprintf("available vm types for %s: %s", provider, strings.Join(vmTypes, ", ")))

		if entry, ok := catalog[vmType]; ok {
			out = append(out, fmt.Sprintf("available flavors for %s: %s", vmType, strings.Join(entry.Flavors, ", ")))
		}
	}

	if regions, ok := supportedRegions[provider]; ok {
		out = append(out, fmt.Sprintf("supported regions for %s: %s", provider, strings.Join(regions, ", ")))
	}
	return out
}

// EstimateCost projects the deterministic hourly and monthly cost of a
// specification. No external pricing source is consulted.
func EstimateCost(spec *types.VMSpecification) *types.CostEstimate {
	vmCost := vmHourlyRates[spec.VMType] * float64(spec.VMConfig.VCPUs)
	storageCost := float64(spec.StorageConfig.SizeGB) * storageHourlyRatePerGB

	networkCost := privateNetworkHourlyRate
	if spec.NetworkConfig.PublicIP {
		networkCost = publicNetworkHourlyRate
	}

	// hourly components keep 4 decimals; only the monthly total is
	// rounded to cents
	total := vmCost + storageCost + networkCost
	return &types.CostEstimate{
		Currency:          "USD",
		VMCostHourly:      round4(vmCost),
		StorageCostHourly: round4(storageCost),
		NetworkCostHourly: round4(networkCost),
		TotalHourly:       round4(total),
		EstimatedMonthly:  round2(total * hoursPerMonth),
	}
}

// ConfigurationWarnings flags configurations that are valid but likely
// wasteful or exposed
func ConfigurationWarnings(spec *types.VMSpecification) []string {
	var warnings []string
	if spec.VMConfig.MemoryGB > 32 {
		warnings = append(warnings, fmt.Sprintf("high memory allocation (%d GB) may increase costs significantly", spec.VMConfig.MemoryGB))
	}
	if spec.StorageConfig.SizeGB > 1000 {
		warnings = append(warnings, fmt.Sprintf("large storage allocation (%d GB) may increase costs significantly", spec.StorageConfig.SizeGB))
	}
	if spec.NetworkConfig.PublicIP {
		warnings = append(warnings, "public IP exposure: ensure firewall rules are restrictive")
	}
	return warnings
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
