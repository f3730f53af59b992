package compute

import "github.com/skyforge/skyforge/internal/types"

// OnPremiseNetwork simulates a VLAN-backed datacenter network
type OnPremiseNetwork struct {
	networkID string
	info      map[string]any
}

// Create provisions the network after checking the on-premise required fields
func (n *OnPremiseNetwork) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"physicalInterface", "vlanId", "firewallPolicy"}); ok {
		return "", types.NewValidationError("missing OnPremise network parameter: %s", missing)
	}

	n.networkID = resourceID("onprem-net", params)
	n.info = map[string]any{
		"physical_interface": params["physicalInterface"],
		"vlan_id":            params["vlanId"],
		"firewall_policy":    params["firewallPolicy"],
		"status":             "available",
	}
	return n.networkID, nil
}

// Info returns the network metadata
func (n *OnPremiseNetwork) Info() map[string]any {
	return n.info
}

// OnPremiseStorage simulates a RAID-backed storage pool allocation
type OnPremiseStorage struct {
	storageID string
	info      map[string]any
}

// Create provisions the storage after checking the on-premise required fields
func (s *OnPremiseStorage) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"storagePool", "sizeGB", "raidLevel"}); ok {
		return "", types.NewValidationError("missing OnPremise storage parameter: %s", missing)
	}

	s.storageID = resourceID("onprem-stor", params)
	s.info = map[string]any{
		"storage_pool": params["storagePool"],
		"size_gb":      params["sizeGB"],
		"raid_level":   params["raidLevel"],
		"status":       "available",
	}
	return s.storageID, nil
}

// Info returns the storage metadata
func (s *OnPremiseStorage) Info() map[string]any {
	return s.info
}

// OnPremiseVM simulates a hypervisor-managed virtual machine
type OnPremiseVM struct {
	vmID string
	info map[string]any
}

// Create provisions the VM after checking the on-premise required fields
func (v *OnPremiseVM) Create(params map[string]any, networkID, storageID string) (string, error) {
	if missing, ok := firstMissing(params, []string{"cpu", "ram"}); ok {
		return "", types.NewValidationError("missing OnPremise VM parameter: %s", missing)
	}

	v.vmID = resourceID("onprem-vm", params, networkID, storageID)
	v.info = map[string]any{
		"cpu":        params["cpu"],
		"ram":        params["ram"],
		"network_id": networkID,
		"storage_id": storageID,
		"status":     "provisioned",
	}
	return v.vmID, nil
}

// Info returns the VM metadata
func (v *OnPremiseVM) Info() map[string]any {
	return v.info
}
