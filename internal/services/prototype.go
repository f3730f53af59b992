package services

import (
	"sort"
	"sync"

	"github.com/skyforge/skyforge/internal/logger"
	"github.com/skyforge/skyforge/internal/types"
)

// Prototype is a reusable, cloneable VM template. Clones are fully
// independent of the original; cloning bumps the original's creation count.
type Prototype struct {
	Name          string
	Description   string
	Category      string
	Tags          map[string]string
	Spec          *types.VMSpecification
	CreationCount int
}

// Clone returns a deep copy with a zeroed creation count and increments the
// original's count. Callers must hold the registry lock when the prototype
// is registered.
func (p *Prototype) Clone() *Prototype {
	p.CreationCount++

	tags := make(map[string]string, len(p.Tags))
	for k, v := range p.Tags {
		tags[k] = v
	}

	return &Prototype{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Tags:        tags,
		Spec:        p.Spec.Clone(),
	}
}

// snapshot returns a deep copy carrying the current creation count, for
// read-only use outside the registry lock
func (p *Prototype) snapshot() *Prototype {
	tags := make(map[string]string, len(p.Tags))
	for k, v := range p.Tags {
		tags[k] = v
	}

	return &Prototype{
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Tags:          tags,
		Spec:          p.Spec.Clone(),
		CreationCount: p.CreationCount,
	}
}

// Customize applies a patch to the prototype. Recognized top-level keys are
// the three config sections, "region" (propagated into the nested configs)
// and "tags" (merged, not replaced). Unknown keys are ignored.
func (p *Prototype) Customize(customizations map[string]any) {
	for key, value := range customizations {
		switch key {
		case "vm_config":
			if section, ok := value.(map[string]any); ok {
				p.Spec.VMConfig.Apply(section)
			}
		case "network_config":
			if section, ok := value.(map[string]any); ok {
				p.Spec.NetworkConfig.Apply(section)
			}
		case "storage_config":
			if section, ok := value.(map[string]any); ok {
				p.Spec.StorageConfig.Apply(section)
			}
		case "region":
			if region, ok := value.(string); ok {
				p.SetRegion(region)
			}
		case "tags":
			switch tags := value.(type) {
			case map[string]string:
				for k, v := range tags {
					p.Tags[k] = v
				}
			case map[string]any:
				for k, v := range tags {
					if s, ok := v.(string); ok {
						p.Tags[k] = s
					}
				}
			}
		}
	}
}

// SetRegion moves the prototype to a region, keeping the nested configs in
// agreement with the top-level value
func (p *Prototype) SetRegion(region string) {
	p.Spec.Region = region
	p.Spec.NetworkConfig.Region = region
	p.Spec.StorageConfig.Region = region
}

// PrototypeRegistry stores prototypes by name with a category index. All
// access goes through the registry's lock; the seed templates are loaded at
// construction.
type PrototypeRegistry struct {
	mu         sync.RWMutex
	prototypes map[string]*Prototype
	categories map[string][]string
}

// NewPrototypeRegistry creates a registry pre-loaded with the built-in
// templates
func NewPrototypeRegistry() *PrototypeRegistry {
	r := &PrototypeRegistry{
		prototypes: make(map[string]*Prototype),
		categories: make(map[string][]string),
	}
	for _, p := range seedPrototypes() {
		r.Register(p)
	}
	return r
}

// Register stores a deep copy of the prototype under its name. Duplicate
// names are rejected and leave the existing prototype untouched.
func (r *PrototypeRegistry) Register(p *Prototype) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.prototypes[p.Name]; exists {
		logger.Warnf("template '%s' already registered", p.Name)
		return false
	}

	r.prototypes[p.Name] = p.snapshot()
	r.categories[p.Category] = append(r.categories[p.Category], p.Name)
	sort.Strings(r.categories[p.Category])
	return true
}

// Get returns a deep copy of the stored prototype for a name. The stored
// prototype is never exposed, so readers cannot race concurrent clones.
func (r *PrototypeRegistry) Get(name string) (*Prototype, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prototypes[name]
	if !ok {
		return nil, false
	}
	return p.snapshot(), true
}

// CloneAndCustomize clones the named prototype and applies the given patch.
// Returns nil if the name is unknown.
func (r *PrototypeRegistry) CloneAndCustomize(name string, customizations map[string]any) *Prototype {
	r.mu.Lock()
	defer r.mu.Unlock()

	original, ok := r.prototypes[name]
	if !ok {
		return nil
	}

	clone := original.Clone()
	clone.Customize(customizations)
	return clone
}

// Remove deletes a prototype by name and prunes its category bucket when it
// empties. Returns false if the name is unknown.
func (r *PrototypeRegistry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.prototypes[name]
	if !ok {
		return false
	}
	delete(r.prototypes, name)

	names := r.categories[p.Category]
	for i, n := range names {
		if n == name {
			names = append(names[:i], names[i+1:]...)
			break
		}
	}
	if len(names) == 0 {
		delete(r.categories, p.Category)
	} else {
		r.categories[p.Category] = names
	}
	return true
}

// List returns deep copies of the stored prototypes, sorted by name
func (r *PrototypeRegistry) List() []*Prototype {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Prototype, 0, len(r.prototypes))
	for _, p := range r.prototypes {
		out = append(out, p.snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListByCategory returns deep copies of one category's prototypes, sorted
// by name. An unknown category yields an empty slice.
func (r *PrototypeRegistry) ListByCategory(category string) []*Prototype {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.categories[category]
	out := make([]*Prototype, 0, len(names))
	for _, name := range names {
		out = append(out, r.prototypes[name].snapshot())
	}
	return out
}

// Categories returns the populated category names, sorted
func (r *PrototypeRegistry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.categories))
	for c := range r.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// seedPrototypes are the templates every fresh registry starts with
func seedPrototypes() []*Prototype {
	return []*Prototype{
		{
			Name:        "web-server-standard",
			Description: "Standard web server for typical HTTP workloads",
			Category:    "web-services",
			Tags: map[string]string{
				"purpose":     "web-server",
				"tier":        "frontend",
				"environment": "production",
			},
			Spec: &types.VMSpecification{
				VMType:   types.VMTypeStandard,
				Provider: types.ProviderAWS,
				Region:   "us-east-1",
				VMConfig: &types.VirtualMachineConfig{
					Provider:     types.ProviderAWS,
					VCPUs:        2,
					MemoryGB:     4,
					KeyPairName:  "web-server-key",
					InstanceType: "t3.medium",
					AMI:          defaultAMI,
				},
				NetworkConfig: &types.NetworkConfig{
					Region:        "us-east-1",
					FirewallRules: []string{"HTTP", "HTTPS", "SSH"},
					PublicIP:      true,
				},
				StorageConfig: &types.StorageConfig{
					Region:    "us-east-1",
					SizeGB:    20,
					IOPS:      3000,
					Encrypted: true,
				},
			},
		},
		{
			Name:        "database-optimized",
			Description: "Memory optimized database server with private networking",
			Category:    "databases",
			Tags: map[string]string{
				"purpose":     "database",
				"tier":        "backend",
				"performance": "high",
			},
			Spec: &types.VMSpecification{
				VMType:   types.VMTypeMemoryOptimized,
				Provider: types.ProviderAWS,
				Region:   "us-east-1",
				VMConfig: &types.VirtualMachineConfig{
					Provider:           types.ProviderAWS,
					VCPUs:              4,
					MemoryGB:           32,
					MemoryOptimization: true,
					KeyPairName:        "db-server-key",
					InstanceType:       "r5.xlarge",
					AMI:                defaultAMI,
				},
				NetworkConfig: &types.NetworkConfig{
					Region:        "us-east-1",
					FirewallRules: []string{"MySQL", "PostgreSQL", "SSH"},
					PublicIP:      false,
				},
				StorageConfig: &types.StorageConfig{
					Region:    "us-east-1",
					SizeGB:    100,
					IOPS:      10000,
					Encrypted: true,
				},
			},
		},
		{
			Name:        "analytics-compute",
			Description: "Compute optimized node for horizontally scaled analytics",
			Category:    "analytics",
			Tags: map[string]string{
				"purpose":  "analytics",
				"workload": "compute-intensive",
				"scale":    "horizontal",
			},
			Spec: &types.VMSpecification{
				VMType:   types.VMTypeComputeOptimized,
				Provider: types.ProviderAWS,
				Region:   "us-east-1",
				VMConfig: &types.VirtualMachineConfig{
					Provider:         types.ProviderAWS,
					VCPUs:            16,
					MemoryGB:         16,
					DiskOptimization: true,
					KeyPairName:      "compute-key",
					InstanceType:     "c5.4xlarge",
					AMI:              defaultAMI,
				},
				NetworkConfig: &types.NetworkConfig{
					Region:        "us-east-1",
					FirewallRules: []string{"SSH", "Custom-8080"},
					PublicIP:      true,
				},
				StorageConfig: &types.StorageConfig{
					Region:    "us-east-1",
					SizeGB:    200,
					IOPS:      5000,
					Encrypted: true,
				},
			},
		},
	}
}
