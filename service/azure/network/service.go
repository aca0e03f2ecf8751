package azurenetwork

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/elC0mpa/ipam-doctor/model"
)

// NewService returns subscription-scoped network clients that only see the
// virtual networks of one location
func NewService(credential azcore.TokenCredential, subscriptionID, location string) (*service, error) {
	factory, err := armnetwork.NewClientFactory(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create network client factory: %w", err)
	}

	return &service{
		location:   location,
		vnets:      factory.NewVirtualNetworksClient(),
		subnets:    factory.NewSubnetsClient(),
		interfaces: factory.NewInterfacesClient(),
	}, nil
}

// SearchSubnets returns the subnets of every virtual network in the location
func (s *service) SearchSubnets(ctx context.Context) ([]string, error) {
	var ids []string

	pager := s.vnets.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list virtual networks: %w", err)
		}

		for _, vnet := range page.Value {
			if vnet == nil || vnet.Location == nil || !sameLocation(*vnet.Location, s.location) {
				continue
			}
			if vnet.Properties == nil {
				continue
			}
			for _, subnet := range vnet.Properties.Subnets {
				if subnet != nil && subnet.ID != nil {
					ids = append(ids, *subnet.ID)
				}
			}
		}
	}

	return ids, nil
}

func (s *service) GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error) {
	subnet, err := s.getSubnet(ctx, subnetID)
	if err != nil {
		return nil, err
	}

	name := subnetID
	if subnet.Name != nil {
		name = *subnet.Name
	}

	return &model.SubnetDetails{
		ID:   subnetID,
		Name: name,
		CIDR: subnetPrefix(subnet.Properties),
	}, nil
}

// ListPrivateIPs resolves the subnet's IP configurations to addresses. NIC
// configurations are looked up on their interface. Other configurations,
// such as load balancer frontends, are returned without an address.
func (s *service) ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error) {
	subnet, err := s.getSubnet(ctx, subnetID)
	if err != nil {
		return nil, err
	}
	if subnet.Properties == nil {
		return nil, nil
	}

	var addresses []model.PrivateAddress
	nics := map[string]*armnetwork.Interface{}

	for _, ipConfig := range subnet.Properties.IPConfigurations {
		if ipConfig == nil || ipConfig.ID == nil {
			continue
		}

		rid, err := arm.ParseResourceID(*ipConfig.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ip configuration ID: %w", err)
		}

		if !isInterfaceConfig(rid) {
			addresses = append(addresses, model.PrivateAddress{Label: configLabel(rid)})
			continue
		}

		key := rid.Parent.String()
		nic, ok := nics[key]
		if !ok {
			resp, err := s.interfaces.Get(ctx, rid.ResourceGroupName, rid.Parent.Name, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to get network interface %s: %w", rid.Parent.Name, err)
			}
			nic = &resp.Interface
			nics[key] = nic
		}

		addresses = append(addresses, model.PrivateAddress{
			Address: interfaceAddress(nic, rid.Name),
			Label:   rid.Parent.Name,
		})
	}

	return addresses, nil
}

func (s *service) getSubnet(ctx context.Context, subnetID string) (*armnetwork.Subnet, error) {
	rid, err := arm.ParseResourceID(subnetID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subnet ID: %w", err)
	}
	if rid.Parent == nil {
		return nil, fmt.Errorf("subnet ID %s has no virtual network", subnetID)
	}

	resp, err := s.subnets.Get(ctx, rid.ResourceGroupName, rid.Parent.Name, rid.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subnet: %w", err)
	}
	return &resp.Subnet, nil
}

// subnetPrefix returns the first IPv4 prefix of the subnet
func subnetPrefix(props *armnetwork.SubnetPropertiesFormat) string {
	if props == nil {
		return ""
	}

	candidates := []*string{props.AddressPrefix}
	candidates = append(candidates, props.AddressPrefixes...)

	var first string
	for _, c := range candidates {
		if c == nil || *c == "" {
			continue
		}
		if first == "" {
			first = *c
		}
		if prefix, err := netip.ParsePrefix(*c); err == nil && prefix.Addr().Is4() {
			return *c
		}
	}
	return first
}

func interfaceAddress(nic *armnetwork.Interface, configName string) string {
	if nic == nil || nic.Properties == nil {
		return ""
	}
	for _, cfg := range nic.Properties.IPConfigurations {
		if cfg == nil || cfg.Name == nil || !strings.EqualFold(*cfg.Name, configName) {
			continue
		}
		if cfg.Properties != nil && cfg.Properties.PrivateIPAddress != nil {
			return *cfg.Properties.PrivateIPAddress
		}
	}
	return ""
}

func isInterfaceConfig(rid *arm.ResourceID) bool {
	return rid.Parent != nil && strings.EqualFold(rid.Parent.ResourceType.Type, networkInterfacesType)
}

func configLabel(rid *arm.ResourceID) string {
	if rid.Parent != nil && rid.Parent.Name != "" {
		return rid.Parent.Name + "/" + rid.Name
	}
	return rid.Name
}

func sameLocation(a, b string) bool {
	normalize := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, " ", ""))
	}
	return normalize(a) == normalize(b)
}
