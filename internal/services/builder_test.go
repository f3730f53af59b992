package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/types"
)

func stagedBuilder(t *testing.T) *VMBuilder {
	t.Helper()

	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAWS, types.VMTypeStandard, "us-east-1", "", nil)
	require.NoError(t, err)

	return NewVMBuilder(compute.NewFactoryRegistry(), types.ProviderAWS, types.VMTypeStandard).
		SetVMConfig(spec.VMConfig).
		SetNetworkConfig(spec.NetworkConfig).
		SetStorageConfig(spec.StorageConfig)
}

func TestBuilderBuild(t *testing.T) {
	spec, resources, err := stagedBuilder(t).Build()
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", spec.Region)
	require.Len(t, resources, 3)
	assert.Equal(t, "network", resources[0].ResourceType)
	assert.Equal(t, "vm", resources[2].ResourceType)
}

func TestBuilderMissingSections(t *testing.T) {
	builder := NewVMBuilder(compute.NewFactoryRegistry(), types.ProviderAWS, types.VMTypeStandard)

	_, _, err := builder.Build()
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
	assert.Contains(t, err.Error(), "vm_config")
	assert.Contains(t, err.Error(), "network_config")
	assert.Contains(t, err.Error(), "storage_config")

	builder.SetVMConfig(&types.VirtualMachineConfig{Provider: types.ProviderAWS})
	_, _, err = builder.Build()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "vm_config")
	assert.Contains(t, err.Error(), "network_config")
}

func TestBuilderRegionMismatch(t *testing.T) {
	builder := stagedBuilder(t)
	builder.SetStorageConfig(types.DefaultStorageConfig("eu-west-1", 50))

	_, _, err := builder.Build()
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
	assert.Contains(t, err.Error(), "us-east-1")
	assert.Contains(t, err.Error(), "eu-west-1")
}

func TestBuilderResetReuse(t *testing.T) {
	builder := stagedBuilder(t)

	_, _, err := builder.Build()
	require.NoError(t, err)

	builder.Reset()
	_, _, err = builder.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAWS, types.VMTypeStandard, "us-west-2", "large", nil)
	require.NoError(t, err)

	rebuilt, _, err := builder.
		SetVMConfig(spec.VMConfig).
		SetNetworkConfig(spec.NetworkConfig).
		SetStorageConfig(spec.StorageConfig).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", rebuilt.Region)
}
