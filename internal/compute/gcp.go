package compute

import "github.com/skyforge/skyforge/internal/types"

// GCPNetwork simulates a GCP VPC network
type GCPNetwork struct {
	networkID string
	info      map[string]any
}

// Create provisions the network after checking the GCP required fields
func (n *GCPNetwork) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"networkName", "subnetworkName", "firewallTag"}); ok {
		return "", types.NewValidationError("missing GCP network parameter: %s", missing)
	}

	n.networkID = resourceID("gcp-net", params)
	n.info = map[string]any{
		"network_name":    params["networkName"],
		"subnetwork_name": params["subnetworkName"],
		"firewall_tag":    params["firewallTag"],
		"status":          "available",
	}
	return n.networkID, nil
}

// Info returns the network metadata
func (n *GCPNetwork) Info() map[string]any {
	return n.info
}

// GCPStorage simulates a GCP persistent disk
type GCPStorage struct {
	storageID string
	info      map[string]any
}

// Create provisions the disk after checking the GCP required fields
func (s *GCPStorage) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"diskType", "sizeGB", "autoDelete"}); ok {
		return "", types.NewValidationError("missing GCP storage parameter: %s", missing)
	}

	s.storageID = resourceID("gcp-disk", params)
	s.info = map[string]any{
		"disk_type":   params["diskType"],
		"size_gb":     params["sizeGB"],
		"auto_delete": params["autoDelete"],
		"status":      "available",
	}
	return s.storageID, nil
}

// Info returns the disk metadata
func (s *GCPStorage) Info() map[string]any {
	return s.info
}

// GCPVM simulates a Compute Engine instance
type GCPVM struct {
	vmID string
	info map[string]any
}

// Create provisions the instance after checking the GCP required fields
func (v *GCPVM) Create(params map[string]any, networkID, storageID string) (string, error) {
	if missing, ok := firstMissing(params, []string{"machine_type", "zone", "project"}); ok {
		return "", types.NewValidationError("missing GCP VM parameter: %s", missing)
	}

	v.vmID = resourceID("gcp-vm", params, networkID, storageID)
	v.info = map[string]any{
		"machine_type": params["machine_type"],
		"zone":         params["zone"],
		"project":      params["project"],
		"network_id":   networkID,
		"storage_id":   storageID,
		"status":       "provisioned",
	}
	return v.vmID, nil
}

// Info returns the instance metadata
func (v *GCPVM) Info() map[string]any {
	return v.info
}
