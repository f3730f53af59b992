package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/types"
)

func newTestTemplateService() *TemplateService {
	return NewTemplateService(NewPrototypeRegistry(), NewDirector(), compute.NewFactoryRegistry())
}

func TestCreateFromTemplate(t *testing.T) {
	service := newTestTemplateService()

	spec, resources, err := service.CreateFromTemplate("web-server-standard", &types.CreateFromTemplateRequest{})
	require.NoError(t, err)

	assert.Equal(t, types.ProviderAWS, spec.Provider)
	assert.Equal(t, "us-east-1", spec.Region)
	require.Len(t, resources, 3)
}

func TestCreateFromTemplateUnknown(t *testing.T) {
	service := newTestTemplateService()

	_, _, err := service.CreateFromTemplate("no-such-template", &types.CreateFromTemplateRequest{})
	require.Error(t, err)
	assert.True(t, types.IsNotFoundError(err))
}

func TestCreateFromTemplateRegionOverride(t *testing.T) {
	service := newTestTemplateService()

	spec, _, err := service.CreateFromTemplate("web-server-standard", &types.CreateFromTemplateRequest{
		Region: "eu-west-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", spec.Region)
	assert.Equal(t, "eu-west-1", spec.NetworkConfig.Region)
	assert.Equal(t, "eu-west-1", spec.StorageConfig.Region)
}

func TestCreateFromTemplateProviderAdaptation(t *testing.T) {
	service := newTestTemplateService()

	spec, resources, err := service.CreateFromTemplate("web-server-standard", &types.CreateFromTemplateRequest{
		Provider: types.ProviderGCP,
		Region:   "us-central1",
	})
	require.NoError(t, err)

	// hardware shape carries over, naming becomes the target provider's
	assert.Equal(t, types.ProviderGCP, spec.Provider)
	assert.Equal(t, 2, spec.VMConfig.VCPUs)
	assert.Equal(t, 4, spec.VMConfig.MemoryGB)
	assert.NotEmpty(t, spec.VMConfig.MachineType)
	assert.Empty(t, spec.VMConfig.InstanceType)
	// network posture carries over too
	assert.Equal(t, []string{"HTTP", "HTTPS", "SSH"}, spec.NetworkConfig.FirewallRules)
	assert.Equal(t, 20, spec.StorageConfig.SizeGB)

	for _, r := range resources {
		assert.Contains(t, r.ResourceID, "gcp-")
	}
}

func TestCreateFromTemplateCustomizations(t *testing.T) {
	service := newTestTemplateService()

	spec, _, err := service.CreateFromTemplate("database-optimized", &types.CreateFromTemplateRequest{
		Customizations: map[string]any{
			"vm_config":      map[string]any{"memory_gb": 64},
			"storage_config": map[string]any{"size_gb": 500},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 64, spec.VMConfig.MemoryGB)
	assert.Equal(t, 500, spec.StorageConfig.SizeGB)
}

func TestRegisterTemplate(t *testing.T) {
	service := newTestTemplateService()

	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAzure, types.VMTypeStandard, "eastus", "", nil)
	require.NoError(t, err)

	info, err := service.RegisterTemplate(&types.RegisterTemplateRequest{
		TemplateName:    "azure-baseline",
		Description:     "Baseline Azure worker",
		VMSpecification: spec,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", info.Category)
	assert.Equal(t, types.ProviderAzure, info.Provider)

	// duplicate registration is rejected
	_, err = service.RegisterTemplate(&types.RegisterTemplateRequest{
		TemplateName:    "azure-baseline",
		VMSpecification: spec,
	})
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
}

func TestCreateTemplateFromExistingVM(t *testing.T) {
	service := newTestTemplateService()

	director := NewDirector()
	spec, err := director.VMSpecification(types.ProviderAWS, types.VMTypeComputeOptimized, "us-east-1", "large", nil)
	require.NoError(t, err)

	info, err := service.CreateTemplateFromExistingVM("batch-worker", "Snapshot of the batch fleet", spec)
	require.NoError(t, err)

	assert.Equal(t, "derived", info.Category)
	assert.Equal(t, "existing_vm", info.Tags["source"])
	assert.Equal(t, "aws", info.Tags["provider"])
	assert.Equal(t, "compute_optimized", info.Tags["vm_type"])
	assert.Equal(t, "production_vm", info.Tags["created_from"])
}

func TestGetTemplateDetails(t *testing.T) {
	service := newTestTemplateService()

	details, err := service.GetTemplateDetails("database-optimized")
	require.NoError(t, err)

	assert.Equal(t, "database-optimized", details.TemplateInfo.TemplateName)
	assert.Equal(t, 32, details.TemplateInfo.Specifications.MemoryGB)
	require.NotNil(t, details.CostEstimate)
	// memory optimized, 4 vcpus, 100 GB, private network
	assert.Equal(t, 0.92, details.CostEstimate.TotalHourly)
	assert.Equal(t, types.AllProviders(), details.CompatibleProviders)

	_, err = service.GetTemplateDetails("no-such-template")
	require.Error(t, err)
	assert.True(t, types.IsNotFoundError(err))
}

func TestListTemplatesStatistics(t *testing.T) {
	service := newTestTemplateService()

	// bump one template's usage so the ranking has a winner
	_, _, err := service.CreateFromTemplate("analytics-compute", &types.CreateFromTemplateRequest{})
	require.NoError(t, err)

	list := service.ListTemplates("")
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Templates, 3)

	stats := list.Statistics
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.TotalTemplates)
	assert.Equal(t, 3, stats.Categories)
	assert.Equal(t, 3, stats.ProviderDistribution["aws"])
	assert.Equal(t, 1, stats.VMTypeDistribution["memory_optimized"])
	require.NotEmpty(t, stats.MostUsedTemplates)
	assert.Equal(t, "analytics-compute", stats.MostUsedTemplates[0].Name)
	assert.Equal(t, 1, stats.MostUsedTemplates[0].UsageCount)
}

func TestListTemplatesCategoryFilter(t *testing.T) {
	service := newTestTemplateService()

	list := service.ListTemplates("databases")
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Templates, 1)
	assert.Equal(t, "database-optimized", list.Templates[0].TemplateName)
	// the category index and statistics still cover the whole registry
	assert.Len(t, list.Categories, 3)
	assert.Equal(t, 3, list.Statistics.TotalTemplates)

	assert.Empty(t, service.ListTemplates("no-such-category").Templates)
}

func TestTemplateDetailsConcurrentWithInstantiation(t *testing.T) {
	registry := NewPrototypeRegistry()
	service := NewTemplateService(registry, NewDirector(), compute.NewFactoryRegistry())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				registry.CloneAndCustomize("web-server-standard", nil)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				details, err := service.GetTemplateDetails("web-server-standard")
				require.NoError(t, err)
				_ = details.TemplateInfo.CreationCount
			}
		}()
	}
	wg.Wait()

	details, err := service.GetTemplateDetails("web-server-standard")
	require.NoError(t, err)
	assert.Equal(t, 100, details.TemplateInfo.CreationCount)
}

func TestDeleteTemplate(t *testing.T) {
	service := newTestTemplateService()

	require.NoError(t, service.DeleteTemplate("web-server-standard"))

	err := service.DeleteTemplate("web-server-standard")
	require.Error(t, err)
	assert.True(t, types.IsNotFoundError(err))
}
