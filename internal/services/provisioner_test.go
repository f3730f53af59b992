package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/types"
)

func newTestProvisioner() *Provisioner {
	return NewProvisioner(compute.NewFactoryRegistry())
}

func validAWSFamilyRequest() *types.FamilyRequest {
	return &types.FamilyRequest{
		Provider: "aws",
		NetworkParams: map[string]any{
			"vpcId":         "vpc-1",
			"subnet":        "subnet-1",
			"securityGroup": "sg-1",
		},
		StorageParams: map[string]any{
			"volumeType": "gp2",
			"sizeGB":     50,
			"encrypted":  true,
		},
		VMParams: map[string]any{
			"instance_type": "t3.medium",
			"region":        "us-east-1",
			"ami":           "ami-123",
		},
	}
}

func TestProvisionFamilyOrder(t *testing.T) {
	provisioner := newTestProvisioner()

	resources, err := provisioner.ProvisionFamily(validAWSFamilyRequest())
	require.NoError(t, err)
	require.Len(t, resources, 3)

	assert.Equal(t, "network", resources[0].ResourceType)
	assert.Equal(t, "storage", resources[1].ResourceType)
	assert.Equal(t, "vm", resources[2].ResourceType)

	for _, r := range resources {
		assert.True(t, strings.HasPrefix(r.ResourceID, "aws-"), r.ResourceID)
		assert.Equal(t, "created", r.Status)
	}

	// the VM links back to the family's network and storage
	assert.Equal(t, resources[0].ResourceID, resources[2].Details["network_id"])
	assert.Equal(t, resources[1].ResourceID, resources[2].Details["storage_id"])
}

func TestProvisionFamilyUnknownProvider(t *testing.T) {
	provisioner := newTestProvisioner()

	req := validAWSFamilyRequest()
	req.Provider = "digitalocean"

	resources, err := provisioner.ProvisionFamily(req)
	require.Error(t, err)
	assert.True(t, types.IsNotFoundError(err))
	assert.Nil(t, resources)
}

func TestProvisionFamilyMissingNetworkField(t *testing.T) {
	provisioner := newTestProvisioner()

	req := validAWSFamilyRequest()
	delete(req.NetworkParams, "subnet")

	resources, err := provisioner.ProvisionFamily(req)
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
	assert.Contains(t, err.Error(), "subnet")
	assert.Nil(t, resources)
}

func TestProvisionFamilyAbortsAfterNetwork(t *testing.T) {
	provisioner := newTestProvisioner()

	// storage params are invalid; the network was already created and is not
	// rolled back, but the run aborts before the VM
	req := validAWSFamilyRequest()
	delete(req.StorageParams, "volumeType")

	_, err := provisioner.ProvisionFamily(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volumeType")
}

func TestProvisionFamilyVMOnlyFailure(t *testing.T) {
	provisioner := newTestProvisioner()

	// network and storage succeed before the VM step fails
	req := validAWSFamilyRequest()
	delete(req.VMParams, "ami")

	_, err := provisioner.ProvisionFamily(req)
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
	assert.Contains(t, err.Error(), "ami")
}

func TestProvisionFamilyExtendedProvider(t *testing.T) {
	provisioner := newTestProvisioner()
	provisioner.RegisterProvider("exotic", func() compute.ResourceFactory {
		return &compute.AWSResourceFactory{}
	})

	req := validAWSFamilyRequest()
	req.Provider = "exotic"

	resources, err := provisioner.ProvisionFamily(req)
	require.NoError(t, err)
	assert.Len(t, resources, 3)
	assert.Contains(t, provisioner.SupportedProviders(), "exotic")
}
