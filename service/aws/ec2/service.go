package awsec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/ipam-doctor/model"
)

// NewService returns a client bound to the config's region
func NewService(awsconfig aws.Config) *service {
	return NewRegionalService(awsconfig, awsconfig.Region)
}

// NewRegionalService returns a client bound to region
func NewRegionalService(awsconfig aws.Config, region string) *service {
	client := ec2.NewFromConfig(awsconfig, func(o *ec2.Options) {
		o.Region = region
	})

	return &service{
		client:     client,
		region:     region,
		homeRegion: awsconfig.Region,
	}
}

// ListSubscribedRegions returns the regions enabled for the account
func (s *service) ListSubscribedRegions(ctx context.Context) ([]model.Region, error) {
	output, err := s.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe regions: %w", err)
	}

	regions := make([]model.Region, 0, len(output.Regions))
	for _, r := range output.Regions {
		name := aws.ToString(r.RegionName)
		if name == "" {
			continue
		}
		regions = append(regions, model.Region{
			Name: name,
			Key:  RegionKey(name),
			Home: name == s.homeRegion,
		})
	}

	return regions, nil
}

func (s *service) SearchSubnets(ctx context.Context) ([]string, error) {
	var ids []string

	paginator := ec2.NewDescribeSubnetsPaginator(s.client, &ec2.DescribeSubnetsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe subnets: %w", err)
		}

		for _, subnet := range page.Subnets {
			if subnet.SubnetId != nil {
				ids = append(ids, *subnet.SubnetId)
			}
		}
	}

	return ids, nil
}

func (s *service) GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error) {
	output, err := s.client.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		SubnetIds: []string{subnetID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe subnet: %w", err)
	}
	if len(output.Subnets) == 0 {
		return nil, fmt.Errorf("subnet %s not found", subnetID)
	}

	subnet := output.Subnets[0]
	return &model.SubnetDetails{
		ID:   subnetID,
		Name: nameTag(subnet.Tags, subnetID),
		CIDR: aws.ToString(subnet.CidrBlock),
	}, nil
}

// ListPrivateIPs returns every private IPv4 address of the network
// interfaces attached to the subnet
func (s *service) ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error) {
	var addresses []model.PrivateAddress

	paginator := ec2.NewDescribeNetworkInterfacesPaginator(s.client, &ec2.DescribeNetworkInterfacesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("subnet-id"),
				Values: []string{subnetID},
			},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe network interfaces: %w", err)
		}

		for _, eni := range page.NetworkInterfaces {
			addresses = append(addresses, interfaceAddresses(eni)...)
		}
	}

	return addresses, nil
}

func interfaceAddresses(eni types.NetworkInterface) []model.PrivateAddress {
	label := aws.ToString(eni.Description)
	if label == "" {
		label = aws.ToString(eni.NetworkInterfaceId)
	}

	addresses := make([]model.PrivateAddress, 0, len(eni.PrivateIpAddresses))
	for _, ip := range eni.PrivateIpAddresses {
		if ip.PrivateIpAddress == nil {
			continue
		}
		addresses = append(addresses, model.PrivateAddress{
			Address: *ip.PrivateIpAddress,
			Label:   label,
		})
	}
	return addresses
}

func nameTag(tags []types.Tag, fallback string) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" && aws.ToString(tag.Value) != "" {
			return aws.ToString(tag.Value)
		}
	}
	return fallback
}
