package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/ipam-doctor/model"
)

type service struct {
	client     *ec2.Client
	region     string
	homeRegion string
}

type EC2Service interface {
	ListSubscribedRegions(ctx context.Context) ([]model.Region, error)
	SearchSubnets(ctx context.Context) ([]string, error)
	GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error)
	ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error)
}
