package gcpcompute

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/ipam-doctor/model"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string, opts ...option.ClientOption) (*service, error) {
	computeClient, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Compute client: %w", err)
	}

	return &service{
		projectID:     projectID,
		computeClient: computeClient,
	}, nil
}

// ForRegion returns a copy bound to region, sharing the underlying client
func (s *service) ForRegion(region string) *service {
	return &service{
		projectID:     s.projectID,
		region:        region,
		computeClient: s.computeClient,
	}
}

// ListSubscribedRegions returns the regions of the project that are up
func (s *service) ListSubscribedRegions(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region

	err := s.computeClient.Regions.List(s.projectID).Pages(ctx, func(page *compute.RegionList) error {
		for _, r := range page.Items {
			if r.Status != "" && r.Status != "UP" {
				continue
			}
			regions = append(regions, model.Region{Name: r.Name, Key: r.Name})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	return regions, nil
}

// SearchSubnets returns the self links of the region's subnetworks
func (s *service) SearchSubnets(ctx context.Context) ([]string, error) {
	var links []string

	err := s.computeClient.Subnetworks.List(s.projectID, s.region).Pages(ctx, func(page *compute.SubnetworkList) error {
		for _, subnet := range page.Items {
			links = append(links, subnet.SelfLink)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subnetworks: %w", err)
	}

	return links, nil
}

func (s *service) GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error) {
	subnet, err := s.computeClient.Subnetworks.Get(s.projectID, s.region, lastSegment(subnetID)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get subnetwork: %w", err)
	}

	return &model.SubnetDetails{
		ID:   subnetID,
		Name: subnet.Name,
		CIDR: subnet.IpCidrRange,
	}, nil
}

// ListPrivateIPs returns the primary addresses of instances attached to the
// subnetwork plus the internal addresses reserved on it
func (s *service) ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error) {
	region, err := s.computeClient.Regions.Get(s.projectID, s.region).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get region: %w", err)
	}

	var addresses []model.PrivateAddress

	for _, zoneURL := range region.Zones {
		zone := lastSegment(zoneURL)
		err := s.computeClient.Instances.List(s.projectID, zone).Pages(ctx, func(page *compute.InstanceList) error {
			for _, instance := range page.Items {
				addresses = append(addresses, instanceAddresses(instance, subnetID)...)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list instances in %s: %w", zone, err)
		}
	}

	err = s.computeClient.Addresses.List(s.projectID, s.region).Filter(internalAddressFilter).Pages(ctx, func(page *compute.AddressList) error {
		for _, address := range page.Items {
			if sameResource(address.Subnetwork, subnetID) {
				addresses = append(addresses, model.PrivateAddress{Address: address.Address, Label: address.Name})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list internal addresses: %w", err)
	}

	return addresses, nil
}

func instanceAddresses(instance *compute.Instance, subnetLink string) []model.PrivateAddress {
	var addresses []model.PrivateAddress
	for _, nic := range instance.NetworkInterfaces {
		if nic.NetworkIP == "" || !sameResource(nic.Subnetwork, subnetLink) {
			continue
		}
		addresses = append(addresses, model.PrivateAddress{
			Address: nic.NetworkIP,
			Label:   instance.Name,
		})
	}
	return addresses
}

// sameResource compares two resource URLs from the projects/ segment on, so
// full and partial URLs of the same resource match
func sameResource(a, b string) bool {
	return a != "" && b != "" && resourcePath(a) == resourcePath(b)
}

func resourcePath(url string) string {
	if i := strings.Index(url, "projects/"); i >= 0 {
		return url[i:]
	}
	return url
}

func lastSegment(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
