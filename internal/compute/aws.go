package compute

import "github.com/skyforge/skyforge/internal/types"

// AWSNetwork simulates an AWS VPC-backed network resource
type AWSNetwork struct {
	networkID string
	info      map[string]any
}

// Create provisions the network after checking the AWS required fields
func (n *AWSNetwork) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"vpcId", "subnet", "securityGroup"}); ok {
		return "", types.NewValidationError("missing AWS network parameter: %s", missing)
	}

	n.networkID = resourceID("aws-net", params)
	n.info = map[string]any{
		"vpc_id":         params["vpcId"],
		"subnet":         params["subnet"],
		"security_group": params["securityGroup"],
		"status":         "available",
	}
	return n.networkID, nil
}

// Info returns the network metadata
func (n *AWSNetwork) Info() map[string]any {
	return n.info
}

// AWSStorage simulates an EBS volume
type AWSStorage struct {
	storageID string
	info      map[string]any
}

// Create provisions the volume after checking the AWS required fields
func (s *AWSStorage) Create(params map[string]any) (string, error) {
	if missing, ok := firstMissing(params, []string{"volumeType", "sizeGB", "encrypted"}); ok {
		return "", types.NewValidationError("missing AWS storage parameter: %s", missing)
	}

	s.storageID = resourceID("aws-vol", params)
	s.info = map[string]any{
		"volume_type": params["volumeType"],
		"size_gb":     params["sizeGB"],
		"encrypted":   params["encrypted"],
		"status":      "available",
	}
	return s.storageID, nil
}

// Info returns the volume metadata
func (s *AWSStorage) Info() map[string]any {
	return s.info
}

// AWSVM simulates an EC2 instance linked to a network and a volume
type AWSVM struct {
	vmID string
	info map[string]any
}

// Create provisions the instance after checking the AWS required fields
func (v *AWSVM) Create(params map[string]any, networkID, storageID string) (string, error) {
	if missing, ok := firstMissing(params, []string{"instance_type", "region", "ami"}); ok {
		return "", types.NewValidationError("missing AWS VM parameter: %s", missing)
	}

	v.vmID = resourceID("aws-vm", params, networkID, storageID)
	v.info = map[string]any{
		"instance_type": params["instance_type"],
		"region":        params["region"],
		"ami":           params["ami"],
		"network_id":    networkID,
		"storage_id":    storageID,
		"status":        "provisioned",
	}
	return v.vmID, nil
}

// Info returns the instance metadata
func (v *AWSVM) Info() map[string]any {
	return v.info
}
