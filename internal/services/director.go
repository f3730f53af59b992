// Package services provides the provisioning business logic: ordered family
// provisioning, the director catalog, staged VM construction and the
// template registry.
package services

import (
	"sort"
	"strings"

	"github.com/skyforge/skyforge/internal/types"
)

// flavorSpec is one hardware tier within a (provider, vm type) catalog
// entry. machine carries the provider's naming for the tier (instance type,
// size, machine type or flavor name).
type flavorSpec struct {
	machine  string
	vcpus    int
	memoryGB int
}

// vmTypeSpec is the catalog entry for one VM type of one provider
type vmTypeSpec struct {
	flavors       map[string]flavorSpec
	defaultFlavor string
}

// Director holds the fixed catalog of VM archetypes and derives complete
// VM specifications from it. The catalog is immutable after construction
// and safe to share without synchronization.
type Director struct {
	catalog map[types.Provider]map[types.VMType]vmTypeSpec
}

// NewDirector creates a director with the built-in hardware catalog
func NewDirector() *Director {
	return &Director{catalog: buildCatalog()}
}

func buildCatalog() map[types.Provider]map[types.VMType]vmTypeSpec {
	return map[types.Provider]map[types.VMType]vmTypeSpec{
		types.ProviderAWS: {
			types.VMTypeStandard: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "t3.medium", vcpus: 2, memoryGB: 4},
					"medium": {machine: "m5.large", vcpus: 2, memoryGB: 8},
					"large":  {machine: "m5.xlarge", vcpus: 4, memoryGB: 16},
				},
				defaultFlavor: "medium",
			},
			types.VMTypeMemoryOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "r5.large", vcpus: 2, memoryGB: 16},
					"medium": {machine: "r5.xlarge", vcpus: 4, memoryGB: 32},
					"large":  {machine: "r5.2xlarge", vcpus: 8, memoryGB: 64},
				},
				defaultFlavor: "small",
			},
			types.VMTypeComputeOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "c5.large", vcpus: 2, memoryGB: 4},
					"medium": {machine: "c5.xlarge", vcpus: 4, memoryGB: 8},
					"large":  {machine: "c5.2xlarge", vcpus: 8, memoryGB: 16},
				},
				defaultFlavor: "medium",
			},
		},
		types.ProviderAzure: {
			types.VMTypeStandard: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "D2s_v3", vcpus: 2, memoryGB: 8},
					"medium": {machine: "D4s_v3", vcpus: 4, memoryGB: 16},
					"large":  {machine: "D8s_v3", vcpus: 8, memoryGB: 32},
				},
				defaultFlavor: "small",
			},
			types.VMTypeMemoryOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "E2s_v3", vcpus: 2, memoryGB: 16},
					"medium": {machine: "E4s_v3", vcpus: 4, memoryGB: 32},
					"large":  {machine: "E8s_v3", vcpus: 8, memoryGB: 64},
				},
				defaultFlavor: "small",
			},
			types.VMTypeComputeOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "F2s_v2", vcpus: 2, memoryGB: 4},
					"medium": {machine: "F4s_v2", vcpus: 4, memoryGB: 8},
					"large":  {machine: "F8s_v2", vcpus: 8, memoryGB: 16},
				},
				defaultFlavor: "medium",
			},
		},
		types.ProviderGCP: {
			types.VMTypeStandard: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "e2-standard-2", vcpus: 2, memoryGB: 8},
					"medium": {machine: "e2-standard-4", vcpus: 4, memoryGB: 16},
					"large":  {machine: "e2-standard-8", vcpus: 8, memoryGB: 32},
				},
				defaultFlavor: "small",
			},
			types.VMTypeMemoryOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "n2-highmem-2", vcpus: 2, memoryGB: 16},
					"medium": {machine: "n2-highmem-4", vcpus: 4, memoryGB: 32},
					"large":  {machine: "n2-highmem-8", vcpus: 8, memoryGB: 64},
				},
				defaultFlavor: "small",
			},
			types.VMTypeComputeOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "n2-highcpu-2", vcpus: 2, memoryGB: 2},
					"medium": {machine: "n2-highcpu-4", vcpus: 4, memoryGB: 4},
					"large":  {machine: "n2-highcpu-8", vcpus: 8, memoryGB: 8},
				},
				defaultFlavor: "medium",
			},
		},
		types.ProviderOnPremise: {
			types.VMTypeStandard: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "onprem-std1", vcpus: 2, memoryGB: 4},
					"medium": {machine: "onprem-std2", vcpus: 4, memoryGB: 8},
					"large":  {machine: "onprem-std3", vcpus: 8, memoryGB: 16},
				},
				defaultFlavor: "medium",
			},
			types.VMTypeMemoryOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "onprem-mem1", vcpus: 2, memoryGB: 16},
					"medium": {machine: "onprem-mem2", vcpus: 4, memoryGB: 32},
					"large":  {machine: "onprem-mem3", vcpus: 8, memoryGB: 64},
				},
				defaultFlavor: "small",
			},
			types.VMTypeComputeOptimized: {
				flavors: map[string]flavorSpec{
					"small":  {machine: "onprem-cpu1", vcpus: 2, memoryGB: 2},
					"medium": {machine: "onprem-cpu2", vcpus: 4, memoryGB: 4},
					"large":  {machine: "onprem-cpu3", vcpus: 8, memoryGB: 8},
				},
				defaultFlavor: "medium",
			},
		},
	}
}

// defaultAMI is the fixed base image per provider family (Amazon Linux 2)
const defaultAMI = "ami-0c02fb55956c7d316"

// VMSpecification derives a complete specification from the catalog.
// flavor may be empty, in which case the catalog's default flavor for the
// (provider, vm type) pair is used. Overrides are applied last and win over
// every computed default, including catalog values.
func (d *Director) VMSpecification(
	provider types.Provider,
	vmType types.VMType,
	region string,
	flavor string,
	overrides map[string]any,
) (*types.VMSpecification, error) {
	providerSpecs, ok := d.catalog[provider]
	if !ok {
		return nil, types.NewValidationError("provider '%s' is not supported", provider)
	}

	spec, ok := providerSpecs[vmType]
	if !ok {
		return nil, types.NewValidationError("vm type '%s' is not supported for provider '%s'", vmType, provider)
	}

	if flavor == "" {
		flavor = spec.defaultFlavor
	}

	fl, ok := spec.flavors[flavor]
	if !ok {
		return nil, types.NewValidationError("flavor '%s' is not available for %s %s", flavor, provider, vmType)
	}

	return &types.VMSpecification{
		VMType:        vmType,
		Provider:      provider,
		Region:        region,
		VMConfig:      d.buildVMConfig(provider, vmType, fl, overrides),
		NetworkConfig: d.buildNetworkConfig(provider, region, vmType),
		StorageConfig: d.buildStorageConfig(provider, region, vmType),
	}, nil
}

func (d *Director) buildVMConfig(
	provider types.Provider,
	vmType types.VMType,
	fl flavorSpec,
	overrides map[string]any,
) *types.VirtualMachineConfig {
	cfg := &types.VirtualMachineConfig{
		Provider:           provider,
		VCPUs:              fl.vcpus,
		MemoryGB:           fl.memoryGB,
		MemoryOptimization: vmType == types.VMTypeMemoryOptimized,
		DiskOptimization:   vmType == types.VMTypeComputeOptimized,
		KeyPairName:        "default-key",
	}

	switch provider {
	case types.ProviderAWS:
		cfg.InstanceType = fl.machine
		cfg.AMI = defaultAMI
	case types.ProviderAzure:
		cfg.Size = fl.machine
		cfg.ResourceGroup = "rg-default"
		cfg.Image = "UbuntuLTS"
	case types.ProviderGCP:
		cfg.MachineType = fl.machine
		cfg.Project = "default-project"
	case types.ProviderOnPremise:
		cfg.CPU = fl.vcpus
		cfg.RAM = fl.memoryGB
		cfg.Hypervisor = "vmware"
	}

	// Overrides win over every computed default.
	cfg.Apply(overrides)
	return cfg
}

func (d *Director) buildNetworkConfig(provider types.Provider, region string, vmType types.VMType) *types.NetworkConfig {
	cfg := &types.NetworkConfig{
		Region:        region,
		FirewallRules: []string{"SSH", "HTTP", "HTTPS"},
		PublicIP:      true,
	}

	compactRegion := strings.ReplaceAll(region, "-", "")
	switch provider {
	case types.ProviderAWS:
		cfg.VPCID = "vpc-" + compactRegion
		cfg.Subnet = "subnet-" + compactRegion
		cfg.SecurityGroup = "sg-" + vmType.String()
	case types.ProviderAzure:
		cfg.VirtualNetwork = "vnet-" + region
		cfg.SubnetName = "subnet-" + vmType.String()
		cfg.NetworkSecurityGroup = "nsg-" + vmType.String()
	case types.ProviderGCP:
		cfg.NetworkName = "default"
		cfg.SubnetworkName = "subnet-" + region
		cfg.FirewallTag = "allow-" + vmType.String()
	case types.ProviderOnPremise:
		cfg.PhysicalInterface = "eth0"
		cfg.VLANID = 100
		cfg.FirewallPolicy = "policy-" + vmType.String()
	}

	return cfg
}

// baseStorageSizes are the default volume sizes per VM type, in GB
var baseStorageSizes = map[types.VMType]int{
	types.VMTypeStandard:         50,
	types.VMTypeMemoryOptimized:  100,
	types.VMTypeComputeOptimized: 30,
}

func (d *Director) buildStorageConfig(provider types.Provider, region string, vmType types.VMType) *types.StorageConfig {
	iops := 1000
	if vmType == types.VMTypeComputeOptimized {
		iops = 3000
	}

	cfg := &types.StorageConfig{
		Region:      region,
		SizeGB:      baseStorageSizes[vmType],
		IOPS:        iops,
		Encrypted:   true,
		ManagedDisk: true,
		AutoDelete:  true,
	}

	switch provider {
	case types.ProviderAWS:
		cfg.VolumeType = "gp2"
		if vmType == types.VMTypeComputeOptimized {
			cfg.VolumeType = "gp3"
		}
	case types.ProviderAzure:
		cfg.DiskSKU = "Standard_LRS"
		if vmType == types.VMTypeMemoryOptimized {
			cfg.DiskSKU = "Premium_LRS"
		}
	case types.ProviderGCP:
		cfg.DiskType = "pd-standard"
		if vmType == types.VMTypeComputeOptimized {
			cfg.DiskType = "pd-ssd"
		}
	case types.ProviderOnPremise:
		cfg.StoragePool = "pool-" + vmType.String()
		cfg.RAIDLevel = "raid1"
	}

	return cfg
}

// AvailableVMTypes exposes the catalog read-only for discovery and
// validation UIs. Unknown providers yield an empty map.
func (d *Director) AvailableVMTypes(provider types.Provider) map[types.VMType]types.VMTypeCatalog {
	result := make(map[types.VMType]types.VMTypeCatalog)

	providerSpecs, ok := d.catalog[provider]
	if !ok {
		return result
	}

	for vmType, spec := range providerSpecs {
		flavors := make([]string, 0, len(spec.flavors))
		configurations := make(map[string]map[string]any, len(spec.flavors))
		for name, fl := range spec.flavors {
			flavors = append(flavors, name)
			configurations[name] = map[string]any{
				machineFieldName(provider): fl.machine,
				"vcpus":                    fl.vcpus,
				"memory_gb":                fl.memoryGB,
			}
		}
		sort.Strings(flavors)

		result[vmType] = types.VMTypeCatalog{
			Flavors:        flavors,
			DefaultFlavor:  spec.defaultFlavor,
			Configurations: configurations,
		}
	}

	return result
}

// machineFieldName is each provider's naming for the hardware tier field
func machineFieldName(provider types.Provider) string {
	switch provider {
	case types.ProviderAWS:
		return "instance_type"
	case types.ProviderAzure:
		return "size"
	case types.ProviderGCP:
		return "machine_type"
	default:
		return "flavor"
	}
}
