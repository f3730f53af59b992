package types

// VirtualMachineConfig holds the provider-agnostic VM settings plus the
// sparse provider-specific fields. Only the fields of the selected provider
// are populated; the rest stay at their zero value.
type VirtualMachineConfig struct {
	Provider Provider `json:"provider"`
	VCPUs    int      `json:"vcpus"`
	MemoryGB int      `json:"memory_gb"`

	MemoryOptimization bool   `json:"memory_optimization"`
	DiskOptimization   bool   `json:"disk_optimization"`
	KeyPairName        string `json:"key_pair_name"`

	// AWS
	InstanceType string `json:"instance_type,omitempty"`
	Region       string `json:"region,omitempty"`
	AMI          string `json:"ami,omitempty"`

	// Azure
	Size          string `json:"size,omitempty"`
	ResourceGroup string `json:"resource_group,omitempty"`
	Image         string `json:"image,omitempty"`

	// GCP
	MachineType string `json:"machine_type,omitempty"`
	Zone        string `json:"zone,omitempty"`
	Project     string `json:"project,omitempty"`

	// OnPremise
	CPU        int    `json:"cpu,omitempty"`
	RAM        int    `json:"ram,omitempty"`
	Hypervisor string `json:"hypervisor,omitempty"`
}

// Clone returns an independent copy of the config
func (c *VirtualMachineConfig) Clone() *VirtualMachineConfig {
	clone := *c
	return &clone
}

// Apply merges the given overrides onto the config field by field.
// Keys that do not name a config field are silently ignored; this keeps the
// merge forward-compatible with callers sending newer keys.
func (c *VirtualMachineConfig) Apply(overrides map[string]any) {
	for key, value := range overrides {
		switch key {
		case "provider":
			if s, ok := asString(value); ok {
				c.Provider = Provider(s)
			}
		case "vcpus":
			if n, ok := asInt(value); ok {
				c.VCPUs = n
			}
		case "memory_gb":
			if n, ok := asInt(value); ok {
				c.MemoryGB = n
			}
		case "memory_optimization":
			if b, ok := asBool(value); ok {
				c.MemoryOptimization = b
			}
		case "disk_optimization":
			if b, ok := asBool(value); ok {
				c.DiskOptimization = b
			}
		case "key_pair_name":
			if s, ok := asString(value); ok {
				c.KeyPairName = s
			}
		case "instance_type":
			if s, ok := asString(value); ok {
				c.InstanceType = s
			}
		case "region":
			if s, ok := asString(value); ok {
				c.Region = s
			}
		case "ami":
			if s, ok := asString(value); ok {
				c.AMI = s
			}
		case "size":
			if s, ok := asString(value); ok {
				c.Size = s
			}
		case "resource_group":
			if s, ok := asString(value); ok {
				c.ResourceGroup = s
			}
		case "image":
			if s, ok := asString(value); ok {
				c.Image = s
			}
		case "machine_type":
			if s, ok := asString(value); ok {
				c.MachineType = s
			}
		case "zone":
			if s, ok := asString(value); ok {
				c.Zone = s
			}
		case "project":
			if s, ok := asString(value); ok {
				c.Project = s
			}
		case "cpu":
			if n, ok := asInt(value); ok {
				c.CPU = n
			}
		case "ram":
			if n, ok := asInt(value); ok {
				c.RAM = n
			}
		case "hypervisor":
			if s, ok := asString(value); ok {
				c.Hypervisor = s
			}
		}
	}
}

// NetworkConfig holds the provider-agnostic network settings plus the sparse
// provider-specific fields.
type NetworkConfig struct {
	Region        string   `json:"region"`
	FirewallRules []string `json:"firewall_rules"`
	PublicIP      bool     `json:"public_ip"`

	// AWS
	VPCID         string `json:"vpc_id,omitempty"`
	Subnet        string `json:"subnet,omitempty"`
	SecurityGroup string `json:"security_group,omitempty"`

	// Azure
	VirtualNetwork       string `json:"virtual_network,omitempty"`
	SubnetName           string `json:"subnet_name,omitempty"`
	NetworkSecurityGroup string `json:"network_security_group,omitempty"`

	// GCP
	NetworkName    string `json:"network_name,omitempty"`
	SubnetworkName string `json:"subnetwork_name,omitempty"`
	FirewallTag    string `json:"firewall_tag,omitempty"`

	// OnPremise
	PhysicalInterface string `json:"physical_interface,omitempty"`
	VLANID            int    `json:"vlan_id,omitempty"`
	FirewallPolicy    string `json:"firewall_policy,omitempty"`
}

// DefaultNetworkConfig returns a network config with the default security
// posture: SSH only, public IP enabled.
func DefaultNetworkConfig(region string) *NetworkConfig {
	return &NetworkConfig{
		Region:        region,
		FirewallRules: []string{"SSH"},
		PublicIP:      true,
	}
}

// Clone returns an independent copy of the config. The firewall rule slice
// is copied so the clone never aliases the original's backing array.
func (c *NetworkConfig) Clone() *NetworkConfig {
	clone := *c
	if c.FirewallRules != nil {
		clone.FirewallRules = make([]string, len(c.FirewallRules))
		copy(clone.FirewallRules, c.FirewallRules)
	}
	return &clone
}

// Apply merges the given overrides onto the config field by field.
// Unknown keys are silently ignored.
func (c *NetworkConfig) Apply(overrides map[string]any) {
	for key, value := range overrides {
		switch key {
		case "region":
			if s, ok := asString(value); ok {
				c.Region = s
			}
		case "firewall_rules":
			if rules, ok := asStringSlice(value); ok {
				c.FirewallRules = rules
			}
		case "public_ip":
			if b, ok := asBool(value); ok {
				c.PublicIP = b
			}
		case "vpc_id":
			if s, ok := asString(value); ok {
				c.VPCID = s
			}
		case "subnet":
			if s, ok := asString(value); ok {
				c.Subnet = s
			}
		case "security_group":
			if s, ok := asString(value); ok {
				c.SecurityGroup = s
			}
		case "virtual_network":
			if s, ok := asString(value); ok {
				c.VirtualNetwork = s
			}
		case "subnet_name":
			if s, ok := asString(value); ok {
				c.SubnetName = s
			}
		case "network_security_group":
			if s, ok := asString(value); ok {
				c.NetworkSecurityGroup = s
			}
		case "network_name":
			if s, ok := asString(value); ok {
				c.NetworkName = s
			}
		case "subnetwork_name":
			if s, ok := asString(value); ok {
				c.SubnetworkName = s
			}
		case "firewall_tag":
			if s, ok := asString(value); ok {
				c.FirewallTag = s
			}
		case "physical_interface":
			if s, ok := asString(value); ok {
				c.PhysicalInterface = s
			}
		case "vlan_id":
			if n, ok := asInt(value); ok {
				c.VLANID = n
			}
		case "firewall_policy":
			if s, ok := asString(value); ok {
				c.FirewallPolicy = s
			}
		}
	}
}

// StorageConfig holds the provider-agnostic storage settings plus the sparse
// provider-specific fields.
type StorageConfig struct {
	Region string `json:"region"`
	SizeGB int    `json:"size_gb"`
	IOPS   int    `json:"iops"`

	// AWS
	VolumeType string `json:"volume_type,omitempty"`
	Encrypted  bool   `json:"encrypted"`

	// Azure
	DiskSKU     string `json:"disk_sku,omitempty"`
	ManagedDisk bool   `json:"managed_disk"`

	// GCP
	DiskType   string `json:"disk_type,omitempty"`
	AutoDelete bool   `json:"auto_delete"`

	// OnPremise
	StoragePool string `json:"storage_pool,omitempty"`
	RAIDLevel   string `json:"raid_level,omitempty"`
}

// DefaultStorageConfig returns a storage config with the default durability
// settings: encryption on, managed disks, auto delete.
func DefaultStorageConfig(region string, sizeGB int) *StorageConfig {
	return &StorageConfig{
		Region:      region,
		SizeGB:      sizeGB,
		IOPS:        3000,
		Encrypted:   true,
		ManagedDisk: true,
		AutoDelete:  true,
	}
}

// Clone returns an independent copy of the config
func (c *StorageConfig) Clone() *StorageConfig {
	clone := *c
	return &clone
}

// Apply merges the given overrides onto the config field by field.
// Unknown keys are silently ignored.
func (c *StorageConfig) Apply(overrides map[string]any) {
	for key, value := range overrides {
		switch key {
		case "region":
			if s, ok := asString(value); ok {
				c.Region = s
			}
		case "size_gb":
			if n, ok := asInt(value); ok {
				c.SizeGB = n
			}
		case "iops":
			if n, ok := asInt(value); ok {
				c.IOPS = n
			}
		case "volume_type":
			if s, ok := asString(value); ok {
				c.VolumeType = s
			}
		case "encrypted":
			if b, ok := asBool(value); ok {
				c.Encrypted = b
			}
		case "disk_sku":
			if s, ok := asString(value); ok {
				c.DiskSKU = s
			}
		case "managed_disk":
			if b, ok := asBool(value); ok {
				c.ManagedDisk = b
			}
		case "disk_type":
			if s, ok := asString(value); ok {
				c.DiskType = s
			}
		case "auto_delete":
			if b, ok := asBool(value); ok {
				c.AutoDelete = b
			}
		case "storage_pool":
			if s, ok := asString(value); ok {
				c.StoragePool = s
			}
		case "raid_level":
			if s, ok := asString(value); ok {
				c.RAIDLevel = s
			}
		}
	}
}

// VMSpecification is the complete description of a VM and its resource
// family. The nested configs' regions must agree with the top-level region
// before materialization; the builder enforces this.
type VMSpecification struct {
	VMType        VMType                `json:"vm_type"`
	Provider      Provider              `json:"provider"`
	Region        string                `json:"region"`
	VMConfig      *VirtualMachineConfig `json:"vm_config"`
	NetworkConfig *NetworkConfig        `json:"network_config"`
	StorageConfig *StorageConfig        `json:"storage_config"`
}

// Clone returns a deep copy of the specification. No mutable sub-object is
// shared between the original and the clone.
func (s *VMSpecification) Clone() *VMSpecification {
	return &VMSpecification{
		VMType:        s.VMType,
		Provider:      s.Provider,
		Region:        s.Region,
		VMConfig:      s.VMConfig.Clone(),
		NetworkConfig: s.NetworkConfig.Clone(),
		StorageConfig: s.StorageConfig.Clone(),
	}
}

// asString coerces an override value to a string
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt coerces an override value to an int. JSON-decoded numbers arrive as
// float64, so both forms are accepted.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// asBool coerces an override value to a bool
func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asStringSlice coerces an override value to a string slice. JSON-decoded
// arrays arrive as []any.
func asStringSlice(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
