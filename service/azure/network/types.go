package azurenetwork

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/elC0mpa/ipam-doctor/model"
)

const networkInterfacesType = "networkInterfaces"

type service struct {
	location   string
	vnets      *armnetwork.VirtualNetworksClient
	subnets    *armnetwork.SubnetsClient
	interfaces *armnetwork.InterfacesClient
}

type NetworkService interface {
	SearchSubnets(ctx context.Context) ([]string, error)
	GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error)
	ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error)
}
