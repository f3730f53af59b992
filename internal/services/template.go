package services

import (
	"sort"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/logger"
	"github.com/skyforge/skyforge/internal/types"
)

// TemplateService manages the prototype registry and instantiates VMs from
// stored templates, including cross-provider adaptation.
type TemplateService struct {
	registry  *PrototypeRegistry
	director  *Director
	factories *compute.FactoryRegistry
}

// NewTemplateService creates a template service
func NewTemplateService(registry *PrototypeRegistry, director *Director, factories *compute.FactoryRegistry) *TemplateService {
	return &TemplateService{
		registry:  registry,
		director:  director,
		factories: factories,
	}
}

// CreateFromTemplate clones a stored template, applies the request's
// customizations, optionally adapts it to another provider, and materializes
// the resource family.
func (s *TemplateService) CreateFromTemplate(name string, req *types.CreateFromTemplateRequest) (*types.VMSpecification, []types.ResourceInfo, error) {
	clone := s.registry.CloneAndCustomize(name, req.Customizations)
	if clone == nil {
		return nil, nil, types.NewNotFoundError("template '%s' not found", name)
	}

	if req.Region != "" {
		clone.SetRegion(req.Region)
	}

	spec := clone.Spec
	if req.Provider != "" && req.Provider != spec.Provider {
		adapted, err := s.adaptToProvider(spec, req.Provider)
		if err != nil {
			return nil, nil, err
		}
		spec = adapted
	}

	builder := NewVMBuilder(s.factories, spec.Provider, spec.VMType)
	spec, resources, err := builder.
		SetVMConfig(spec.VMConfig).
		SetNetworkConfig(spec.NetworkConfig).
		SetStorageConfig(spec.StorageConfig).
		Build()
	if err != nil {
		return nil, nil, err
	}

	logger.Infof("instantiated template '%s' on %s in %s", name, spec.Provider, spec.Region)
	return spec, resources, nil
}

// adaptToProvider re-derives the specification for a different provider
// while preserving the template's hardware shape. The catalog supplies the
// provider-specific naming; vcpus and memory carry over as overrides.
func (s *TemplateService) adaptToProvider(spec *types.VMSpecification, provider types.Provider) (*types.VMSpecification, error) {
	adapted, err := s.director.VMSpecification(provider, spec.VMType, spec.Region, "", map[string]any{
		"vcpus":     spec.VMConfig.VCPUs,
		"memory_gb": spec.VMConfig.MemoryGB,
	})
	if err != nil {
		return nil, err
	}

	adapted.NetworkConfig.FirewallRules = append([]string(nil), spec.NetworkConfig.FirewallRules...)
	adapted.NetworkConfig.PublicIP = spec.NetworkConfig.PublicIP
	adapted.StorageConfig.SizeGB = spec.StorageConfig.SizeGB
	adapted.StorageConfig.IOPS = spec.StorageConfig.IOPS
	return adapted, nil
}

// RegisterTemplate stores a new template. Duplicate names are rejected.
func (s *TemplateService) RegisterTemplate(req *types.RegisterTemplateRequest) (*types.TemplateInfo, error) {
	category := req.Category
	if category == "" {
		category = "custom"
	}

	tags := make(map[string]string, len(req.Tags))
	for k, v := range req.Tags {
		tags[k] = v
	}

	p := &Prototype{
		Name:        req.TemplateName,
		Description: req.Description,
		Category:    category,
		Tags:        tags,
		Spec:        req.VMSpecification.Clone(),
	}

	if !s.registry.Register(p) {
		return nil, types.NewValidationError("template '%s' already exists", req.TemplateName)
	}

	info := s.templateInfo(p)
	return &info, nil
}

// CreateTemplateFromExistingVM derives a reusable template from a running
// VM's specification. Provenance tags are added automatically.
func (s *TemplateService) CreateTemplateFromExistingVM(name, description string, spec *types.VMSpecification) (*types.TemplateInfo, error) {
	p := &Prototype{
		Name:        name,
		Description: description,
		Category:    "derived",
		Tags: map[string]string{
			"source":       "existing_vm",
			"provider":     spec.Provider.String(),
			"vm_type":      spec.VMType.String(),
			"created_from": "production_vm",
		},
		Spec: spec.Clone(),
	}

	if !s.registry.Register(p) {
		return nil, types.NewValidationError("template '%s' already exists", name)
	}

	info := s.templateInfo(p)
	return &info, nil
}

// GetTemplateDetails returns the full view of one template
func (s *TemplateService) GetTemplateDetails(name string) (*types.TemplateDetails, error) {
	p, ok := s.registry.Get(name)
	if !ok {
		return nil, types.NewNotFoundError("template '%s' not found", name)
	}

	return &types.TemplateDetails{
		TemplateInfo:        s.templateInfo(p),
		VMSpecification:     p.Spec.Clone(),
		CostEstimate:        EstimateCost(p.Spec),
		CompatibleProviders: s.compatibleProviders(p.Spec.VMType),
	}, nil
}

// ListTemplates returns the stored templates, optionally filtered by
// category, together with registry-wide statistics
func (s *TemplateService) ListTemplates(category string) *types.TemplateListResponse {
	prototypes := s.registry.List()
	listed := prototypes
	if category != "" {
		listed = s.registry.ListByCategory(category)
	}

	templates := make([]types.TemplateInfo, 0, len(listed))
	for _, p := range listed {
		templates = append(templates, s.templateInfo(p))
	}

	// statistics always cover the whole registry, not the filtered view
	categories := s.registry.Categories()
	return &types.TemplateListResponse{
		Templates:  templates,
		Total:      len(templates),
		Categories: categories,
		Statistics: buildStatistics(prototypes, len(categories)),
	}
}

// DeleteTemplate removes a template by name
func (s *TemplateService) DeleteTemplate(name string) error {
	if !s.registry.Remove(name) {
		return types.NewNotFoundError("template '%s' not found", name)
	}
	logger.Infof("deleted template '%s'", name)
	return nil
}

func (s *TemplateService) templateInfo(p *Prototype) types.TemplateInfo {
	tags := make(map[string]string, len(p.Tags))
	for k, v := range p.Tags {
		tags[k] = v
	}

	return types.TemplateInfo{
		TemplateName:  p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Provider:      p.Spec.Provider,
		VMType:        p.Spec.VMType,
		Region:        p.Spec.Region,
		Tags:          tags,
		CreationCount: p.CreationCount,
		Specifications: types.TemplateSummary{
			VCPUs:     p.Spec.VMConfig.VCPUs,
			MemoryGB:  p.Spec.VMConfig.MemoryGB,
			StorageGB: p.Spec.StorageConfig.SizeGB,
		},
	}
}

// compatibleProviders lists the providers whose catalog carries the VM type
func (s *TemplateService) compatibleProviders(vmType types.VMType) []types.Provider {
	var out []types.Provider
	for _, p := range types.AllProviders() {
		if _, ok := s.director.AvailableVMTypes(p)[vmType]; ok {
			out = append(out, p)
		}
	}
	return out
}

func buildStatistics(prototypes []*Prototype, categoryCount int) *types.TemplateStatistics {
	stats := &types.TemplateStatistics{
		TotalTemplates:       len(prototypes),
		Categories:           categoryCount,
		ProviderDistribution: make(map[string]int),
		VMTypeDistribution:   make(map[string]int),
	}

	uses := make([]types.TemplateUse, 0, len(prototypes))
	for _, p := range prototypes {
		stats.ProviderDistribution[p.Spec.Provider.String()]++
		stats.VMTypeDistribution[p.Spec.VMType.String()]++
		uses = append(uses, types.TemplateUse{
			Name:       p.Name,
			UsageCount: p.CreationCount,
			Category:   p.Category,
		})
	}

	sort.Slice(uses, func(i, j int) bool {
		if uses[i].UsageCount != uses[j].UsageCount {
			return uses[i].UsageCount > uses[j].UsageCount
		}
		return uses[i].Name < uses[j].Name
	})
	if len(uses) > 5 {
		uses = uses[:5]
	}
	stats.MostUsedTemplates = uses

	return stats
}
