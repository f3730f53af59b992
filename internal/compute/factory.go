package compute

import (
	"sort"
	"strings"
	"sync"

	"github.com/skyforge/skyforge/internal/types"
)

// ResourceFactory produces a coherent family of resource creators for one
// provider. All three creators returned by a single factory belong to the
// same provider; this is the family-consistency guarantee.
type ResourceFactory interface {
	// CreateNetwork returns a fresh, uninitialized network creator
	CreateNetwork() NetworkCreator

	// CreateStorage returns a fresh, uninitialized storage creator
	CreateStorage() StorageCreator

	// CreateVM returns a fresh, uninitialized VM creator
	CreateVM() VMCreator

	// ProviderName returns the human-readable provider name
	ProviderName() string
}

// AWSResourceFactory produces AWS resource creators
type AWSResourceFactory struct{}

// CreateNetwork returns a fresh AWS network creator
func (f *AWSResourceFactory) CreateNetwork() NetworkCreator { return &AWSNetwork{} }

// CreateStorage returns a fresh AWS storage creator
func (f *AWSResourceFactory) CreateStorage() StorageCreator { return &AWSStorage{} }

// CreateVM returns a fresh AWS VM creator
func (f *AWSResourceFactory) CreateVM() VMCreator { return &AWSVM{} }

// ProviderName returns the AWS display name
func (f *AWSResourceFactory) ProviderName() string { return types.ProviderAWS.DisplayName() }

// AzureResourceFactory produces Azure resource creators
type AzureResourceFactory struct{}

// CreateNetwork returns a fresh Azure network creator
func (f *AzureResourceFactory) CreateNetwork() NetworkCreator { return &AzureNetwork{} }

// CreateStorage returns a fresh Azure storage creator
func (f *AzureResourceFactory) CreateStorage() StorageCreator { return &AzureStorage{} }

// CreateVM returns a fresh Azure VM creator
func (f *AzureResourceFactory) CreateVM() VMCreator { return &AzureVM{} }

// ProviderName returns the Azure display name
func (f *AzureResourceFactory) ProviderName() string { return types.ProviderAzure.DisplayName() }

// GCPResourceFactory produces Google Cloud resource creators
type GCPResourceFactory struct{}

// CreateNetwork returns a fresh GCP network creator
func (f *GCPResourceFactory) CreateNetwork() NetworkCreator { return &GCPNetwork{} }

// CreateStorage returns a fresh GCP storage creator
func (f *GCPResourceFactory) CreateStorage() StorageCreator { return &GCPStorage{} }

// CreateVM returns a fresh GCP VM creator
func (f *GCPResourceFactory) CreateVM() VMCreator { return &GCPVM{} }

// ProviderName returns the Google Cloud display name
func (f *GCPResourceFactory) ProviderName() string { return types.ProviderGCP.DisplayName() }

// OnPremiseResourceFactory produces on-premise resource creators
type OnPremiseResourceFactory struct{}

// CreateNetwork returns a fresh on-premise network creator
func (f *OnPremiseResourceFactory) CreateNetwork() NetworkCreator { return &OnPremiseNetwork{} }

// CreateStorage returns a fresh on-premise storage creator
func (f *OnPremiseResourceFactory) CreateStorage() StorageCreator { return &OnPremiseStorage{} }

// CreateVM returns a fresh on-premise VM creator
func (f *OnPremiseResourceFactory) CreateVM() VMCreator { return &OnPremiseVM{} }

// ProviderName returns the on-premise display name
func (f *OnPremiseResourceFactory) ProviderName() string {
	return types.ProviderOnPremise.DisplayName()
}

// FactoryRegistry maps provider names to resource factories. It is an
// explicit object constructed once at process start and passed by handle to
// consumers, so tests get a fresh registry each.
type FactoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]func() ResourceFactory
}

// NewFactoryRegistry creates a registry pre-populated with the built-in
// providers
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{
		factories: map[string]func() ResourceFactory{
			types.ProviderAWS.String():       func() ResourceFactory { return &AWSResourceFactory{} },
			types.ProviderAzure.String():     func() ResourceFactory { return &AzureResourceFactory{} },
			types.ProviderGCP.String():       func() ResourceFactory { return &GCPResourceFactory{} },
			types.ProviderOnPremise.String(): func() ResourceFactory { return &OnPremiseResourceFactory{} },
		},
	}
}

// Get returns the factory for the given provider name. The lookup is
// case-insensitive.
func (r *FactoryRegistry) Get(providerName string) (ResourceFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.factories[strings.ToLower(providerName)]
	if !ok {
		return nil, types.NewNotFoundError("unsupported provider '%s'", providerName)
	}
	return ctor(), nil
}

// Register adds a factory for a new provider at runtime. Existing providers
// stay untouched; new ones extend the registry without modifying it.
func (r *FactoryRegistry) Register(providerName string, ctor func() ResourceFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[strings.ToLower(providerName)] = ctor
}

// SupportedProviders returns the registered provider names, sorted
func (r *FactoryRegistry) SupportedProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
