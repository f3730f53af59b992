package types

// ResourceInfo describes one successfully created resource. It is never
// mutated after creation.
type ResourceInfo struct {
	// Opaque provider-prefixed identifier
	ResourceID string `json:"resource_id"`

	// One of "network", "storage", "vm"
	ResourceType string `json:"resource_type"`

	// Provider-side status of the resource
	Status string `json:"status"`

	// Provider-side metadata recorded at creation time
	Details map[string]any `json:"details"`
}

// FamilyResponse is the result of provisioning a resource family
type FamilyResponse struct {
	Success   bool           `json:"success"`
	Provider  string         `json:"provider,omitempty"`
	Resources []ResourceInfo `json:"resources,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// BuildResponse is the result of a director+builder VM construction
type BuildResponse struct {
	Success          bool             `json:"success"`
	VMSpecification  *VMSpecification `json:"vm_specification,omitempty"`
	CreatedResources []ResourceInfo   `json:"created_resources,omitempty"`
	Error            string           `json:"error,omitempty"`
}

// CostEstimate is a deterministic hourly/monthly cost projection for a
// specification. No external pricing source is consulted.
type CostEstimate struct {
	Currency          string  `json:"currency"`
	VMCostHourly      float64 `json:"vm_cost_hourly"`
	StorageCostHourly float64 `json:"storage_cost_hourly"`
	NetworkCostHourly float64 `json:"network_cost_hourly"`
	TotalHourly       float64 `json:"total_hourly"`
	EstimatedMonthly  float64 `json:"estimated_monthly"`
}

// ValidationResult is the outcome of a dry-run configuration check
type ValidationResult struct {
	Valid         bool             `json:"valid"`
	Specification *VMSpecification `json:"specification,omitempty"`
	EstimatedCost *CostEstimate    `json:"estimated_cost,omitempty"`
	Warnings      []string         `json:"warnings,omitempty"`
	Error         string           `json:"error,omitempty"`
	Suggestions   []string         `json:"suggestions,omitempty"`
}

// TemplateInfo is the descriptive view of a stored template
type TemplateInfo struct {
	TemplateName   string            `json:"template_name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Provider       Provider          `json:"provider"`
	VMType         VMType            `json:"vm_type"`
	Region         string            `json:"region"`
	Tags           map[string]string `json:"tags"`
	CreationCount  int               `json:"creation_count"`
	Specifications TemplateSummary   `json:"specifications"`
}

// TemplateSummary is the hardware summary embedded in TemplateInfo
type TemplateSummary struct {
	VCPUs     int `json:"vcpus"`
	MemoryGB  int `json:"memory_gb"`
	StorageGB int `json:"storage_gb"`
}

// TemplateListResponse lists stored templates with registry statistics
type TemplateListResponse struct {
	Templates  []TemplateInfo      `json:"templates"`
	Total      int                 `json:"total"`
	Categories []string            `json:"categories"`
	Statistics *TemplateStatistics `json:"statistics,omitempty"`
}

// TemplateStatistics aggregates registry usage
type TemplateStatistics struct {
	TotalTemplates       int            `json:"total_templates"`
	Categories           int            `json:"categories"`
	ProviderDistribution map[string]int `json:"provider_distribution"`
	VMTypeDistribution   map[string]int `json:"vm_type_distribution"`
	MostUsedTemplates    []TemplateUse  `json:"most_used_templates"`
}

// TemplateUse records how often a template has been instantiated
type TemplateUse struct {
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
	Category   string `json:"category"`
}

// TemplateDetails is the full view of a single template
type TemplateDetails struct {
	TemplateInfo        TemplateInfo     `json:"template_info"`
	VMSpecification     *VMSpecification `json:"vm_specification"`
	CostEstimate        *CostEstimate    `json:"cost_estimate"`
	CompatibleProviders []Provider       `json:"compatible_providers"`
}

// ProviderConfigurations is the discovery view of a provider's catalog
type ProviderConfigurations struct {
	Provider         Provider                 `json:"provider"`
	VMTypes          map[VMType]VMTypeCatalog `json:"vm_types"`
	SupportedRegions []string                 `json:"supported_regions"`
	DefaultConfigs   map[string]any           `json:"default_configs"`
}

// VMTypeCatalog is the read-only catalog entry for one VM type
type VMTypeCatalog struct {
	Flavors        []string                  `json:"flavors"`
	DefaultFlavor  string                    `json:"default_flavor"`
	Configurations map[string]map[string]any `json:"configurations"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	// Error message describing what went wrong
	Error string `json:"error"`

	// Optional additional details about the error
	Details any `json:"details,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	// Optional data returned by the operation
	Data any `json:"data,omitempty"`
}

// ErrInvalidInput builds an error response for invalid input
func ErrInvalidInput(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ErrNotFound builds an error response for a missing resource
func ErrNotFound(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ErrServer builds an error response for an internal failure
func ErrServer(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Success builds a success response wrapping the given data
func Success(data any) SuccessResponse {
	return SuccessResponse{Data: data}
}
