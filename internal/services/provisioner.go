package services

import (
	"fmt"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/logger"
	"github.com/skyforge/skyforge/internal/types"
)

// Provisioner creates coherent resource families against the mock provider
// backends. All three resources of a family come from the same factory, so
// mixed-provider families cannot happen.
type Provisioner struct {
	registry *compute.FactoryRegistry
}

// NewProvisioner creates a provisioner backed by the given factory registry
func NewProvisioner(registry *compute.FactoryRegistry) *Provisioner {
	return &Provisioner{registry: registry}
}

// ProvisionFamily creates a network, storage and VM for one provider, in
// that order. The first failure aborts the run; resources created before the
// failure are not rolled back. Unexpected panics surface as InternalError.
func (p *Provisioner) ProvisionFamily(req *types.FamilyRequest) (resources []types.ResourceInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic during family provisioning: %v", r)
			resources = nil
			err = types.NewInternalError(fmt.Errorf("panic: %v", r))
		}
	}()

	factory, err := p.registry.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	logger.SafeInfo("provisioning resource family for "+factory.ProviderName(), req.VMParams)

	network := factory.CreateNetwork()
	networkID, err := network.Create(req.NetworkParams)
	if err != nil {
		return nil, err
	}
	resources = append(resources, types.ResourceInfo{
		ResourceID:   networkID,
		ResourceType: "network",
		Status:       "created",
		Details:      network.Info(),
	})

	storage := factory.CreateStorage()
	storageID, err := storage.Create(req.StorageParams)
	if err != nil {
		return nil, err
	}
	resources = append(resources, types.ResourceInfo{
		ResourceID:   storageID,
		ResourceType: "storage",
		Status:       "created",
		Details:      storage.Info(),
	})

	vm := factory.CreateVM()
	vmID, err := vm.Create(req.VMParams, networkID, storageID)
	if err != nil {
		return nil, err
	}
	resources = append(resources, types.ResourceInfo{
		ResourceID:   vmID,
		ResourceType: "vm",
		Status:       "created",
		Details:      vm.Info(),
	})

	logger.Infof("provisioned family of %d resources on %s", len(resources), req.Provider)
	return resources, nil
}

// SupportedProviders returns the provider names the registry knows, sorted
func (p *Provisioner) SupportedProviders() []string {
	return p.registry.SupportedProviders()
}

// RegisterProvider extends the registry with a new provider at runtime
func (p *Provisioner) RegisterProvider(name string, ctor func() compute.ResourceFactory) {
	p.registry.Register(name, ctor)
}
