package service

import (
	"context"

	"github.com/elC0mpa/ipam-doctor/model"
)

// IdentityService provides cloud account/tenancy/project identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// RegionService lists the regions the account is subscribed to
type RegionService interface {
	ListSubscribedRegions(ctx context.Context) ([]model.Region, error)
}

// NetworkClient is the set of API clients bound to one region
type NetworkClient interface {
	// SearchSubnets returns the identifiers of every subnet in the region
	SearchSubnets(ctx context.Context) ([]string, error)
	GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error)
	ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error)
}

// ClientFactory builds the region-bound clients of a provider
type ClientFactory interface {
	NewRegionalClient(region model.Region) (NetworkClient, error)
}

// Provider bundles everything the collection pipeline needs from one cloud
type Provider struct {
	Name     string
	Regions  RegionService
	Clients  ClientFactory
	Identity IdentityService
}

// ClientFactoryFunc adapts a function to the ClientFactory interface
type ClientFactoryFunc func(region model.Region) (NetworkClient, error)

func (f ClientFactoryFunc) NewRegionalClient(region model.Region) (NetworkClient, error) {
	return f(region)
}
