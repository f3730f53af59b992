package services

import (
	"strings"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/types"
)

// VMBuilder assembles a VM specification section by section and, on Build,
// materializes the backing resource family through the provider factory.
// A builder is single-use state; Reset returns it to empty for reuse.
type VMBuilder struct {
	registry *compute.FactoryRegistry
	provider types.Provider
	vmType   types.VMType

	vmConfig      *types.VirtualMachineConfig
	networkConfig *types.NetworkConfig
	storageConfig *types.StorageConfig
}

// NewVMBuilder creates an empty builder bound to one provider and VM type
func NewVMBuilder(registry *compute.FactoryRegistry, provider types.Provider, vmType types.VMType) *VMBuilder {
	return &VMBuilder{
		registry: registry,
		provider: provider,
		vmType:   vmType,
	}
}

// Reset discards any staged sections
func (b *VMBuilder) Reset() *VMBuilder {
	b.vmConfig = nil
	b.networkConfig = nil
	b.storageConfig = nil
	return b
}

// SetVMConfig stages the machine section
func (b *VMBuilder) SetVMConfig(cfg *types.VirtualMachineConfig) *VMBuilder {
	b.vmConfig = cfg
	return b
}

// SetNetworkConfig stages the network section
func (b *VMBuilder) SetNetworkConfig(cfg *types.NetworkConfig) *VMBuilder {
	b.networkConfig = cfg
	return b
}

// SetStorageConfig stages the storage section
func (b *VMBuilder) SetStorageConfig(cfg *types.StorageConfig) *VMBuilder {
	b.storageConfig = cfg
	return b
}

// Build validates the staged sections, creates the resource family and
// returns the final specification together with the created resources.
// Validation failures name every missing section and any region mismatch.
func (b *VMBuilder) Build() (*types.VMSpecification, []types.ResourceInfo, error) {
	if err := b.validate(); err != nil {
		return nil, nil, err
	}

	factory, err := b.registry.Get(b.provider.String())
	if err != nil {
		return nil, nil, err
	}

	adapter, err := compute.AdapterFor(b.provider)
	if err != nil {
		return nil, nil, err
	}

	var resources []types.ResourceInfo

	network := factory.CreateNetwork()
	networkID, err := network.Create(adapter.NetworkParams(b.networkConfig))
	if err != nil {
		return nil, nil, err
	}
	resources = append(resources, types.ResourceInfo{
		ResourceID:   networkID,
		ResourceType: "network",
		Status:       "created",
		Details:      network.Info(),
	})

	storage := factory.CreateStorage()
	storageID, err := storage.Create(adapter.StorageParams(b.storageConfig))
	if err != nil {
		return nil, nil, err
	}
	resources = append(resources, types.ResourceInfo{
		ResourceID:   storageID,
		ResourceType: "storage",
		Status:       "created",
		Details:      storage.Info(),
	})

	vm := factory.CreateVM()
	vmID, err := vm.Create(adapter.VMParams(b.vmConfig, b.networkConfig.Region), networkID, storageID)
	if err != nil {
		return nil, nil, err
	}
	resources = append(resources, types.ResourceInfo{
		ResourceID:   vmID,
		ResourceType: "vm",
		Status:       "created",
		Details:      vm.Info(),
	})

	spec := &types.VMSpecification{
		VMType:        b.vmType,
		Provider:      b.provider,
		Region:        b.networkConfig.Region,
		VMConfig:      b.vmConfig,
		NetworkConfig: b.networkConfig,
		StorageConfig: b.storageConfig,
	}
	return spec, resources, nil
}

func (b *VMBuilder) validate() error {
	var missing []string
	if b.vmConfig == nil {
		missing = append(missing, "vm_config")
	}
	if b.networkConfig == nil {
		missing = append(missing, "network_config")
	}
	if b.storageConfig == nil {
		missing = append(missing, "storage_config")
	}
	if len(missing) > 0 {
		return types.NewValidationError("incomplete build: missing %s", strings.Join(missing, ", "))
	}

	if b.networkConfig.Region != b.storageConfig.Region {
		return types.NewValidationError(
			"region mismatch: network is in '%s' but storage is in '%s'",
			b.networkConfig.Region, b.storageConfig.Region,
		)
	}
	return nil
}
