package compute

import "github.com/skyforge/skyforge/internal/types"

// AzureNetwork simulates an Azure virtual network
type AzureNetwork struct {
	networkID string
	info      map[string]any
}

// Create provisions the network after checking the Azure required fields
func (n *AzureNetwork) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"virtualNetwork", "subnetName", "networkSecurityGroup"}); ok {
		return "", types.NewValidationError("missing Azure network parameter: %s", missing)
	}

	n.networkID = resourceID("azure-net", params)
	n.info = map[string]any{
		"virtual_network":        params["virtualNetwork"],
		"subnet_name":            params["subnetName"],
		"network_security_group": params["networkSecurityGroup"],
		"status":                 "available",
	}
	return n.networkID, nil
}

// Info returns the network metadata
func (n *AzureNetwork) Info() map[string]any {
	return n.info
}

// AzureStorage simulates an Azure managed disk
type AzureStorage struct {
	storageID string
	info      map[string]any
}

// Create provisions the disk after checking the Azure required fields
func (s *AzureStorage) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"diskSku", "sizeGB", "managedDisk"}); ok {
		return "", types.NewValidationError("missing Azure storage parameter: %s", missing)
	}

	s.storageID = resourceID("azure-disk", params)
	s.info = map[string]any{
		"disk_sku":     params["diskSku"],
		"size_gb":      params["sizeGB"],
		"managed_disk": params["managedDisk"],
		"status":       "available",
	}
	return s.storageID, nil
}

// Info returns the disk metadata
func (s *AzureStorage) Info() map[string]any {
	return s.info
}

// AzureVM simulates an Azure virtual machine
type AzureVM struct {
	vmID string
	info map[string]any
}

// Create provisions the VM after checking the Azure required fields
func (v *AzureVM) Create(params map[string]any, networkID, storageID string) (string, error) {
	if missing, ok := firstMissing(params, []string{"size", "resource_group", "image"}); ok {
		return "", types.NewValidationError("missing Azure VM parameter: %s", missing)
	}

	v.vmID = resourceID("azure-vm", params, networkID, storageID)
	v.info = map[string]any{
		"size":           params["size"],
		"resource_group": params["resource_group"],
		"image":          params["image"],
		"network_id":     networkID,
		"storage_id":     storageID,
		"status":         "provisioned",
	}
	return v.vmID, nil
}

// Info returns the VM metadata
func (v *AzureVM) Info() map[string]any {
	return v.info
}
