package compute

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyforge/skyforge/internal/types"
)

func awsNetworkParams() map[string]any {
	return map[string]any{
		"vpcId":         "vpc-1",
		"subnet":        "subnet-1",
		"securityGroup": "sg-1",
	}
}

func TestAWSNetworkCreate(t *testing.T) {
	network := &AWSNetwork{}

	id, err := network.Create(awsNetworkParams())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "aws-net-"))
	assert.Equal(t, "available", network.Info()["status"])
	assert.Equal(t, "vpc-1", network.Info()["vpc_id"])
}

func TestAWSNetworkFirstMissingField(t *testing.T) {
	network := &AWSNetwork{}

	// vpcId is checked before subnet and securityGroup
	_, err := network.Create(map[string]any{"subnet": "subnet-1"})
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
	assert.Contains(t, err.Error(), "vpcId")

	_, err = network.Create(map[string]any{"vpcId": "vpc-1", "securityGroup": "sg-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subnet")
}

func TestResourceIDDeterminism(t *testing.T) {
	first := &AWSNetwork{}
	second := &AWSNetwork{}

	idA, err := first.Create(awsNetworkParams())
	require.NoError(t, err)
	idB, err := second.Create(awsNetworkParams())
	require.NoError(t, err)

	assert.Equal(t, idA, idB)
}

func TestVMCreateLinksNetworkAndStorage(t *testing.T) {
	vm := &AWSVM{}

	id, err := vm.Create(map[string]any{
		"instance_type": "t3.medium",
		"region":        "us-east-1",
		"ami":           "ami-123",
	}, "aws-net-42", "aws-vol-7")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "aws-vm-"))
	assert.Equal(t, "aws-net-42", vm.Info()["network_id"])
	assert.Equal(t, "aws-vol-7", vm.Info()["storage_id"])
	assert.Equal(t, "provisioned", vm.Info()["status"])
}

func TestProviderIDPrefixes(t *testing.T) {
	azureStorage := &AzureStorage{}
	id, err := azureStorage.Create(map[string]any{
		"diskSku": "Standard_LRS", "sizeGB": 50, "managedDisk": true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "azure-disk-"))

	gcpStorage := &GCPStorage{}
	id, err = gcpStorage.Create(map[string]any{
		"diskType": "pd-standard", "sizeGB": 50, "autoDelete": true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "gcp-disk-"))

	onpremStorage := &OnPremiseStorage{}
	id, err = onpremStorage.Create(map[string]any{
		"storagePool": "pool-1", "sizeGB": 50, "raidLevel": "raid1",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "onprem-stor-"))
}

func TestFactoryFamilyConsistency(t *testing.T) {
	registry := NewFactoryRegistry()

	cases := []struct {
		provider string
		prefix   string
	}{
		{"aws", "aws-"},
		{"azure", "azure-"},
		{"gcp", "gcp-"},
		{"onpremise", "onprem-"},
	}

	for _, tc := range cases {
		factory, err := registry.Get(tc.provider)
		require.NoError(t, err, tc.provider)

		adapter, err := AdapterFor(types.Provider(tc.provider))
		require.NoError(t, err, tc.provider)

		network := factory.CreateNetwork()
		networkID, err := network.Create(adapter.NetworkParams(types.DefaultNetworkConfig("us-east-1")))
		require.NoError(t, err, tc.provider)

		storage := factory.CreateStorage()
		storageID, err := storage.Create(adapter.StorageParams(types.DefaultStorageConfig("us-east-1", 50)))
		require.NoError(t, err, tc.provider)

		// every resource of the family carries the same provider prefix
		assert.True(t, strings.HasPrefix(networkID, tc.prefix), networkID)
		assert.True(t, strings.HasPrefix(storageID, tc.prefix), storageID)
	}
}

func TestFactoryRegistryCaseInsensitive(t *testing.T) {
	registry := NewFactoryRegistry()

	factory, err := registry.Get("AWS")
	require.NoError(t, err)
	assert.Equal(t, "AWS", factory.ProviderName())
}

func TestFactoryRegistryUnknownProvider(t *testing.T) {
	registry := NewFactoryRegistry()

	_, err := registry.Get("digitalocean")
	require.Error(t, err)
	assert.True(t, types.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "digitalocean")
}

func TestFactoryRegistryExtension(t *testing.T) {
	registry := NewFactoryRegistry()
	require.Len(t, registry.SupportedProviders(), 4)

	registry.Register("exotic", func() ResourceFactory { return &AWSResourceFactory{} })

	_, err := registry.Get("exotic")
	require.NoError(t, err)
	assert.Contains(t, registry.SupportedProviders(), "exotic")

	// built-ins stay untouched
	_, err = registry.Get("aws")
	assert.NoError(t, err)
}

func TestAdapterSynthesizesDefaults(t *testing.T) {
	adapter, err := AdapterFor(types.ProviderAWS)
	require.NoError(t, err)

	params := adapter.NetworkParams(types.DefaultNetworkConfig("us-east-1"))
	assert.Equal(t, "vpc-useast1", params["vpcId"])
	assert.Equal(t, "subnet-useast1", params["subnet"])
	assert.Equal(t, "sg-default", params["securityGroup"])
}

func TestOnPremiseAdapterFallsBackToGenericShape(t *testing.T) {
	adapter, err := AdapterFor(types.ProviderOnPremise)
	require.NoError(t, err)

	params := adapter.VMParams(&types.VirtualMachineConfig{
		Provider: types.ProviderOnPremise,
		VCPUs:    4,
		MemoryGB: 8,
	}, "datacenter-1")

	assert.Equal(t, 4, params["cpu"])
	assert.Equal(t, 8, params["ram"])
	assert.Equal(t, "vmware", params["hypervisor"])
}
