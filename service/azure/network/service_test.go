package azurenetwork

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sub = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg-net/providers/Microsoft.Network"

func TestSubnetPrefix(t *testing.T) {
	assert.Equal(t, "10.1.0.0/24", subnetPrefix(&armnetwork.SubnetPropertiesFormat{AddressPrefix: to.Ptr("10.1.0.0/24")}))
	assert.Equal(t, "10.2.0.0/24", subnetPrefix(&armnetwork.SubnetPropertiesFormat{
		AddressPrefixes: []*string{to.Ptr("fd00::/64"), to.Ptr("10.2.0.0/24")},
	}))
	assert.Equal(t, "fd00::/64", subnetPrefix(&armnetwork.SubnetPropertiesFormat{
		AddressPrefixes: []*string{to.Ptr("fd00::/64")},
	}))
	assert.Empty(t, subnetPrefix(nil))
}

func TestIsInterfaceConfig(t *testing.T) {
	nicConfig, err := arm.ParseResourceID(sub + "/networkInterfaces/vm1-nic/ipConfigurations/ipconfig1")
	require.NoError(t, err)
	assert.True(t, isInterfaceConfig(nicConfig))
	assert.Equal(t, "vm1-nic", nicConfig.Parent.Name)
	assert.Equal(t, "ipconfig1", nicConfig.Name)

	lbConfig, err := arm.ParseResourceID(sub + "/loadBalancers/lb1/frontendIPConfigurations/fe1")
	require.NoError(t, err)
	assert.False(t, isInterfaceConfig(lbConfig))
	assert.Equal(t, "lb1/fe1", configLabel(lbConfig))
}

func TestInterfaceAddress(t *testing.T) {
	nic := &armnetwork.Interface{
		Properties: &armnetwork.InterfacePropertiesFormat{
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{
				{Name: to.Ptr("ipconfig1"), Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{PrivateIPAddress: to.Ptr("10.1.0.4")}},
				{Name: to.Ptr("ipconfig2"), Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{PrivateIPAddress: to.Ptr("10.1.0.5")}},
			},
		},
	}

	assert.Equal(t, "10.1.0.5", interfaceAddress(nic, "IPCONFIG2"))
	assert.Empty(t, interfaceAddress(nic, "missing"))
	assert.Empty(t, interfaceAddress(nil, "ipconfig1"))
}

func TestSameLocation(t *testing.T) {
	assert.True(t, sameLocation("East US", "eastus"))
	assert.False(t, sameLocation("westus", "eastus"))
}
