package gcpcompute

import (
	"context"

	"github.com/elC0mpa/ipam-doctor/model"
	"google.golang.org/api/compute/v1"
)

const internalAddressFilter = `addressType="INTERNAL"`

type service struct {
	projectID     string
	region        string
	computeClient *compute.Service
}

type ComputeService interface {
	ListSubscribedRegions(ctx context.Context) ([]model.Region, error)
	SearchSubnets(ctx context.Context) ([]string, error)
	GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error)
	ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error)
}
