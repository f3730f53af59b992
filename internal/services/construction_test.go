package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/types"
)

func newTestConstruction() *ConstructionService {
	return NewConstructionService(NewDirector(), compute.NewFactoryRegistry())
}

func TestBuildVMMemoryOptimizedAzure(t *testing.T) {
	construction := newTestConstruction()

	spec, resources, err := construction.BuildVM(&types.BuildRequest{
		VMType:   types.VMTypeMemoryOptimized,
		Provider: types.ProviderAzure,
		Region:   "eastus",
	})
	require.NoError(t, err)

	assert.True(t, spec.VMConfig.MemoryOptimization)
	assert.GreaterOrEqual(t, spec.VMConfig.MemoryGB, 16)
	require.Len(t, resources, 3)
	assert.Equal(t, "network", resources[0].ResourceType)
	assert.Equal(t, "storage", resources[1].ResourceType)
	assert.Equal(t, "vm", resources[2].ResourceType)
}

func TestBuildVMCustomSections(t *testing.T) {
	construction := newTestConstruction()

	spec, _, err := construction.BuildVM(&types.BuildRequest{
		VMType:   types.VMTypeStandard,
		Provider: types.ProviderAWS,
		Region:   "us-east-1",
		Flavor:   "large",
		CustomVMConfig: map[string]any{
			"key_pair_name": "prod-key",
		},
		CustomNetworkConfig: map[string]any{
			"public_ip": false,
		},
		CustomStorageConfig: map[string]any{
			"size_gb": 250,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "prod-key", spec.VMConfig.KeyPairName)
	assert.False(t, spec.NetworkConfig.PublicIP)
	assert.Equal(t, 250, spec.StorageConfig.SizeGB)
	// catalog values untouched by the overrides survive
	assert.Equal(t, "m5.xlarge", spec.VMConfig.InstanceType)
}

func TestBuildVMAcceptsAnyRegion(t *testing.T) {
	construction := newTestConstruction()

	// the region lists feed discovery and suggestions only
	spec, resources, err := construction.BuildVM(&types.BuildRequest{
		VMType:   types.VMTypeStandard,
		Provider: types.ProviderAWS,
		Region:   "sa-east-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", spec.Region)
	assert.Len(t, resources, 3)
}

func TestValidateConfigurationValid(t *testing.T) {
	construction := newTestConstruction()

	result := construction.ValidateConfiguration(&types.ValidateRequest{
		Provider: types.ProviderGCP,
		VMType:   types.VMTypeStandard,
		Region:   "us-central1",
	})

	assert.True(t, result.Valid)
	require.NotNil(t, result.Specification)
	require.NotNil(t, result.EstimatedCost)
	assert.Empty(t, result.Error)
}

func TestValidateConfigurationAcceptsAnyRegion(t *testing.T) {
	construction := newTestConstruction()

	result := construction.ValidateConfiguration(&types.ValidateRequest{
		Provider: types.ProviderAWS,
		VMType:   types.VMTypeStandard,
		Region:   "sa-east-1",
	})

	assert.True(t, result.Valid)
	require.NotNil(t, result.Specification)
	assert.Equal(t, "sa-east-1", result.Specification.Region)
	assert.Empty(t, result.Error)
}

func TestValidateConfigurationSuggestions(t *testing.T) {
	construction := newTestConstruction()

	result := construction.ValidateConfiguration(&types.ValidateRequest{
		Provider: types.ProviderAWS,
		VMType:   types.VMTypeStandard,
		Region:   "us-east-1",
		Flavor:   "enormous",
	})

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "enormous")
	require.NotEmpty(t, result.Suggestions)

	joined := ""
	for _, s := range result.Suggestions {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "standard")
	assert.Contains(t, joined, "large, medium, small")
	assert.Contains(t, joined, "us-east-1")
}

func TestEstimateCostDeterminism(t *testing.T) {
	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAWS, types.VMTypeStandard, "us-east-1", "medium", nil)
	require.NoError(t, err)

	first := EstimateCost(spec)
	second := EstimateCost(spec)
	assert.Equal(t, first, second)

	// standard, 2 vcpus, 50 GB, public IP:
	// vm 0.10*2 + storage 50*0.001 + network 0.05
	assert.Equal(t, 0.20, first.VMCostHourly)
	assert.Equal(t, 0.05, first.StorageCostHourly)
	assert.Equal(t, 0.05, first.NetworkCostHourly)
	assert.Equal(t, 0.30, first.TotalHourly)
	assert.Equal(t, 216.0, first.EstimatedMonthly)
	assert.Equal(t, "USD", first.Currency)
}

func TestEstimateCostHourlyPrecision(t *testing.T) {
	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAWS, types.VMTypeStandard, "us-east-1", "medium", nil)
	require.NoError(t, err)
	spec.StorageConfig.SizeGB = 25

	cost := EstimateCost(spec)
	// hourly components keep sub-cent precision; only the monthly total
	// is rounded to cents
	assert.Equal(t, 0.025, cost.StorageCostHourly)
	assert.Equal(t, 0.275, cost.TotalHourly)
	assert.Equal(t, 198.0, cost.EstimatedMonthly)
}

func TestEstimateCostPrivateNetwork(t *testing.T) {
	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAWS, types.VMTypeMemoryOptimized, "us-east-1", "small", nil)
	require.NoError(t, err)
	spec.NetworkConfig.PublicIP = false

	cost := EstimateCost(spec)
	// memory optimized, 2 vcpus: 0.20*2 + 100*0.001 + 0.02
	assert.Equal(t, 0.40, cost.VMCostHourly)
	assert.Equal(t, 0.02, cost.NetworkCostHourly)
	assert.Equal(t, 0.52, cost.TotalHourly)
}

func TestConfigurationWarnings(t *testing.T) {
	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAWS, types.VMTypeMemoryOptimized, "us-east-1", "large", nil)
	require.NoError(t, err)
	spec.StorageConfig.SizeGB = 2000

	warnings := ConfigurationWarnings(spec)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "memory")
	assert.Contains(t, warnings[1], "storage")
	assert.Contains(t, warnings[2], "public IP")

	// below every threshold, private network: no warnings
	spec.VMConfig.MemoryGB = 8
	spec.StorageConfig.SizeGB = 50
	spec.NetworkConfig.PublicIP = false
	assert.Empty(t, ConfigurationWarnings(spec))
}

func TestAvailableConfigurations(t *testing.T) {
	construction := newTestConstruction()

	configurations, err := construction.AvailableConfigurations(types.ProviderOnPremise)
	require.NoError(t, err)

	assert.Equal(t, types.ProviderOnPremise, configurations.Provider)
	assert.Len(t, configurations.VMTypes, 3)
	assert.Equal(t, []string{"datacenter-1", "datacenter-2", "edge-location-1"}, configurations.SupportedRegions)
	assert.Contains(t, configurations.DefaultConfigs, "network_config")
	assert.Contains(t, configurations.DefaultConfigs, "storage_config")

	_, err = construction.AvailableConfigurations("digitalocean")
	require.Error(t, err)
	assert.True(t, types.IsNotFoundError(err))
}
