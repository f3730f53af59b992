package compute

import (
	"strings"

	"github.com/skyforge/skyforge/internal/types"
)

// ParamAdapter translates the provider-agnostic config records into the raw
// parameter maps a provider's creators expect. One variant exists per
// provider; unset provider-specific fields are filled with synthesized
// defaults so a director-produced config always materializes.
type ParamAdapter interface {
	// NetworkParams builds the raw network creation parameters
	NetworkParams(cfg *types.NetworkConfig) map[string]any

	// StorageParams builds the raw storage creation parameters
	StorageParams(cfg *types.StorageConfig) map[string]any

	// VMParams builds the raw VM creation parameters. The region comes from
	// the network config; the VM inherits it transitively.
	VMParams(cfg *types.VirtualMachineConfig, region string) map[string]any
}

// AdapterFor returns the param adapter for the given provider
func AdapterFor(provider types.Provider) (ParamAdapter, error) {
	switch provider {
	case types.ProviderAWS:
		return awsParamAdapter{}, nil
	case types.ProviderAzure:
		return azureParamAdapter{}, nil
	case types.ProviderGCP:
		return gcpParamAdapter{}, nil
	case types.ProviderOnPremise:
		return onPremiseParamAdapter{}, nil
	default:
		return nil, types.NewNotFoundError("unsupported provider '%s'", provider)
	}
}

// baseVMParams are the provider-independent VM parameters shared by every
// adapter
func baseVMParams(cfg *types.VirtualMachineConfig) map[string]any {
	return map[string]any{
		"vcpus":              cfg.VCPUs,
		"memoryGB":           cfg.MemoryGB,
		"memoryOptimization": cfg.MemoryOptimization,
		"diskOptimization":   cfg.DiskOptimization,
		"keyPairName":        cfg.KeyPairName,
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

type awsParamAdapter struct{}

func (awsParamAdapter) NetworkParams(cfg *types.NetworkConfig) map[string]any {
	compactRegion := strings.ReplaceAll(cfg.Region, "-", "")
	return map[string]any{
		"vpcId":         orDefault(cfg.VPCID, "vpc-"+compactRegion),
		"subnet":        orDefault(cfg.Subnet, "subnet-"+compactRegion),
		"securityGroup": orDefault(cfg.SecurityGroup, "sg-default"),
		"region":        cfg.Region,
		"firewallRules": cfg.FirewallRules,
		"publicIP":      cfg.PublicIP,
	}
}

func (awsParamAdapter) StorageParams(cfg *types.StorageConfig) map[string]any {
	return map[string]any{
		"volumeType": orDefault(cfg.VolumeType, "gp2"),
		"sizeGB":     cfg.SizeGB,
		"encrypted":  cfg.Encrypted,
		"region":     cfg.Region,
		"iops":       cfg.IOPS,
	}
}

func (awsParamAdapter) VMParams(cfg *types.VirtualMachineConfig, region string) map[string]any {
	params := baseVMParams(cfg)
	params["instance_type"] = cfg.InstanceType
	params["region"] = region
	params["ami"] = cfg.AMI
	return params
}

type azureParamAdapter struct{}

func (azureParamAdapter) NetworkParams(cfg *types.NetworkConfig) map[string]any {
	return map[string]any{
		"virtualNetwork":       orDefault(cfg.VirtualNetwork, "vnet-"+cfg.Region),
		"subnetName":           orDefault(cfg.SubnetName, "subnet-default"),
		"networkSecurityGroup": orDefault(cfg.NetworkSecurityGroup, "nsg-default"),
		"region":               cfg.Region,
		"firewallRules":        cfg.FirewallRules,
		"publicIP":             cfg.PublicIP,
	}
}

func (azureParamAdapter) StorageParams(cfg *types.StorageConfig) map[string]any {
	return map[string]any{
		"diskSku":     orDefault(cfg.DiskSKU, "Standard_LRS"),
		"sizeGB":      cfg.SizeGB,
		"managedDisk": cfg.ManagedDisk,
		"region":      cfg.Region,
		"iops":        cfg.IOPS,
	}
}

func (azureParamAdapter) VMParams(cfg *types.VirtualMachineConfig, region string) map[string]any {
	params := baseVMParams(cfg)
	params["size"] = cfg.Size
	params["resource_group"] = cfg.ResourceGroup
	params["image"] = cfg.Image
	params["region"] = region
	return params
}

type gcpParamAdapter struct{}

func (gcpParamAdapter) NetworkParams(cfg *types.NetworkConfig) map[string]any {
	return map[string]any{
		"networkName":    orDefault(cfg.NetworkName, "default"),
		"subnetworkName": orDefault(cfg.SubnetworkName, "subnet-"+cfg.Region),
		"firewallTag":    orDefault(cfg.FirewallTag, "allow-default"),
		"region":         cfg.Region,
		"firewallRules":  cfg.FirewallRules,
		"publicIP":       cfg.PublicIP,
	}
}

func (gcpParamAdapter) StorageParams(cfg *types.StorageConfig) map[string]any {
	return map[string]any{
		"diskType":   orDefault(cfg.DiskType, "pd-standard"),
		"sizeGB":     cfg.SizeGB,
		"autoDelete": cfg.AutoDelete,
		"region":     cfg.Region,
		"iops":       cfg.IOPS,
	}
}

func (gcpParamAdapter) VMParams(cfg *types.VirtualMachineConfig, region string) map[string]any {
	params := baseVMParams(cfg)
	params["machine_type"] = cfg.MachineType
	params["zone"] = region
	params["project"] = cfg.Project
	return params
}

type onPremiseParamAdapter struct{}

func (onPremiseParamAdapter) NetworkParams(cfg *types.NetworkConfig) map[string]any {
	vlanID := cfg.VLANID
	if vlanID == 0 {
		vlanID = 100
	}
	return map[string]any{
		"physicalInterface": orDefault(cfg.PhysicalInterface, "eth0"),
		"vlanId":            vlanID,
		"firewallPolicy":    orDefault(cfg.FirewallPolicy, "allow-default"),
		"region":            cfg.Region,
		"firewallRules":     cfg.FirewallRules,
		"publicIP":          cfg.PublicIP,
	}
}

func (onPremiseParamAdapter) StorageParams(cfg *types.StorageConfig) map[string]any {
	return map[string]any{
		"storagePool": orDefault(cfg.StoragePool, "pool-default"),
		"sizeGB":      cfg.SizeGB,
		"raidLevel":   orDefault(cfg.RAIDLevel, "raid1"),
		"region":      cfg.Region,
		"iops":        cfg.IOPS,
	}
}

func (onPremiseParamAdapter) VMParams(cfg *types.VirtualMachineConfig, _ string) map[string]any {
	cpu := cfg.CPU
	if cpu == 0 {
		cpu = cfg.VCPUs
	}
	ram := cfg.RAM
	if ram == 0 {
		ram = cfg.MemoryGB
	}

	params := baseVMParams(cfg)
	params["cpu"] = cpu
	params["ram"] = ram
	params["hypervisor"] = orDefault(cfg.Hypervisor, "vmware")
	return params
}
