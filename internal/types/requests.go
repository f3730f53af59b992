package types

import "fmt"

// FamilyRequest asks for a coherent {network, storage, vm} resource family
// from a single provider. The three param maps carry the raw provider-side
// creation parameters.
type FamilyRequest struct {
	Provider      string         `json:"provider"`
	VMParams      map[string]any `json:"vm_params"`
	NetworkParams map[string]any `json:"network_params"`
	StorageParams map[string]any `json:"storage_params"`
}

// Validate validates the family request
func (r *FamilyRequest) Validate() error {
	if r.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if r.VMParams == nil {
		return fmt.Errorf("vm_params is required")
	}
	if r.NetworkParams == nil {
		return fmt.Errorf("network_params is required")
	}
	if r.StorageParams == nil {
		return fmt.Errorf("storage_params is required")
	}
	return nil
}

// BuildRequest asks for a full VM construction driven by the director
// catalog, with optional per-section overrides.
type BuildRequest struct {
	VMType   VMType   `json:"vm_type"`
	Provider Provider `json:"provider"`
	Region   string   `json:"region"`
	Flavor   string   `json:"flavor,omitempty"`

	CustomVMConfig      map[string]any `json:"custom_vm_config,omitempty"`
	CustomNetworkConfig map[string]any `json:"custom_network_config,omitempty"`
	CustomStorageConfig map[string]any `json:"custom_storage_config,omitempty"`
}

// Validate validates the build request
func (r *BuildRequest) Validate() error {
	if !r.Provider.IsValid() {
		return fmt.Errorf("unsupported provider '%s'", r.Provider)
	}
	if !r.VMType.IsValid() {
		return fmt.Errorf("unsupported vm_type '%s'", r.VMType)
	}
	if r.Region == "" {
		return fmt.Errorf("region is required")
	}
	return nil
}

// ValidateRequest asks for a dry-run check of a configuration without
// creating any resources.
type ValidateRequest struct {
	Provider Provider `json:"provider"`
	VMType   VMType   `json:"vm_type"`
	Region   string   `json:"region"`
	Flavor   string   `json:"flavor,omitempty"`
}

// Validate validates the dry-run request
func (r *ValidateRequest) Validate() error {
	if r.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if r.VMType == "" {
		return fmt.Errorf("vm_type is required")
	}
	if r.Region == "" {
		return fmt.Errorf("region is required")
	}
	return nil
}

// RegisterTemplateRequest registers a reusable VM template
type RegisterTemplateRequest struct {
	TemplateName    string            `json:"template_name"`
	Description     string            `json:"description"`
	Category        string            `json:"category,omitempty"`
	Tags            map[string]string `json:"tags,omitempty"`
	VMSpecification *VMSpecification  `json:"vm_specification"`
}

// Validate validates the template registration request
func (r *RegisterTemplateRequest) Validate() error {
	if r.TemplateName == "" {
		return fmt.Errorf("template_name is required")
	}
	if r.VMSpecification == nil {
		return fmt.Errorf("vm_specification is required")
	}
	if r.VMSpecification.VMConfig == nil || r.VMSpecification.NetworkConfig == nil || r.VMSpecification.StorageConfig == nil {
		return fmt.Errorf("vm_specification must include vm_config, network_config and storage_config")
	}
	return nil
}

// CreateTemplateFromVMRequest derives a reusable template from an existing
// VM's specification
type CreateTemplateFromVMRequest struct {
	TemplateName    string           `json:"template_name"`
	Description     string           `json:"description"`
	VMSpecification *VMSpecification `json:"vm_specification"`
}

// Validate validates the from-VM template request
func (r *CreateTemplateFromVMRequest) Validate() error {
	if r.TemplateName == "" {
		return fmt.Errorf("template_name is required")
	}
	if r.VMSpecification == nil {
		return fmt.Errorf("vm_specification is required")
	}
	if r.VMSpecification.VMConfig == nil || r.VMSpecification.NetworkConfig == nil || r.VMSpecification.StorageConfig == nil {
		return fmt.Errorf("vm_specification must include vm_config, network_config and storage_config")
	}
	return nil
}

// CreateFromTemplateRequest instantiates a VM from a stored template.
// Customizations follow the patch shape accepted by prototype customization:
// vm_config / network_config / storage_config sections plus region and tags.
type CreateFromTemplateRequest struct {
	Provider       Provider       `json:"provider,omitempty"`
	Region         string         `json:"region,omitempty"`
	Customizations map[string]any `json:"customizations,omitempty"`
}
