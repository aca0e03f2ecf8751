package ocinetwork

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/resourcesearch"
)

func NewService(provider common.ConfigurationProvider, region string) (*service, error) {
	network, err := core.NewVirtualNetworkClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual network client: %w", err)
	}
	network.SetRegion(region)

	search, err := resourcesearch.NewResourceSearchClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource search client: %w", err)
	}
	search.SetRegion(region)

	return &service{
		region:  region,
		network: network,
		search:  search,
	}, nil
}

// SearchSubnets runs a structured search for every subnet of the region
func (s *service) SearchSubnets(ctx context.Context) ([]string, error) {
	var ids []string
	var page *string

	for {
		resp, err := s.search.SearchResources(ctx, resourcesearch.SearchResourcesRequest{
			SearchDetails: resourcesearch.StructuredSearchDetails{
				Query: common.String(subnetQuery),
			},
			Limit:           common.Int(pageLimit),
			Page:            page,
			RequestMetadata: retryMetadata(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search subnets: %w", err)
		}

		for _, item := range resp.Items {
			if item.Identifier == nil || isTerminated(item.LifecycleState) {
				continue
			}
			ids = append(ids, *item.Identifier)
		}

		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	return ids, nil
}

func (s *service) GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error) {
	resp, err := s.network.GetSubnet(ctx, core.GetSubnetRequest{
		SubnetId:        common.String(subnetID),
		RequestMetadata: retryMetadata(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get subnet: %w", err)
	}

	return &model.SubnetDetails{
		ID:   subnetID,
		Name: deref(resp.Subnet.DisplayName),
		CIDR: deref(resp.Subnet.CidrBlock),
	}, nil
}

// ListPrivateIPs returns every private IP of the subnet, following all pages
func (s *service) ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error) {
	var addresses []model.PrivateAddress
	var page *string

	for {
		resp, err := s.network.ListPrivateIps(ctx, core.ListPrivateIpsRequest{
			SubnetId:        common.String(subnetID),
			Limit:           common.Int(pageLimit),
			Page:            page,
			RequestMetadata: retryMetadata(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list private ips: %w", err)
		}

		addresses = append(addresses, toAddresses(resp.Items)...)

		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	return addresses, nil
}

func toAddresses(items []core.PrivateIp) []model.PrivateAddress {
	addresses := make([]model.PrivateAddress, 0, len(items))
	for _, item := range items {
		addresses = append(addresses, model.PrivateAddress{
			Address: deref(item.IpAddress),
			Label:   deref(item.DisplayName),
		})
	}
	return addresses
}

func retryMetadata() common.RequestMetadata {
	policy := common.DefaultRetryPolicy()
	return common.RequestMetadata{RetryPolicy: &policy}
}

func isTerminated(state *string) bool {
	return state != nil && strings.EqualFold(*state, "TERMINATED")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
