package ociidentity

import (
	"context"
	"fmt"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

func NewService(provider common.ConfigurationProvider) (*service, error) {
	tenancyID, err := provider.TenancyOCID()
	if err != nil {
		return nil, fmt.Errorf("failed to read tenancy OCID: %w", err)
	}

	client, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	return &service{
		tenancyID: tenancyID,
		client:    client,
	}, nil
}

// ListSubscribedRegions returns every region the tenancy is subscribed to
func (s *service) ListSubscribedRegions(ctx context.Context) ([]model.Region, error) {
	policy := common.DefaultRetryPolicy()
	resp, err := s.client.ListRegionSubscriptions(ctx, identity.ListRegionSubscriptionsRequest{
		TenancyId:       common.String(s.tenancyID),
		RequestMetadata: common.RequestMetadata{RetryPolicy: &policy},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list region subscriptions: %w", err)
	}

	return toRegions(resp.Items), nil
}

// GetAccountInfo implements service.IdentityService
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	resp, err := s.client.GetTenancy(ctx, identity.GetTenancyRequest{
		TenancyId: common.String(s.tenancyID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tenancy: %w", err)
	}

	return &model.AccountInfo{
		Provider:    model.ProviderOCI,
		AccountID:   s.tenancyID,
		AccountName: deref(resp.Tenancy.Name),
	}, nil
}

func toRegions(items []identity.RegionSubscription) []model.Region {
	regions := make([]model.Region, 0, len(items))
	for _, item := range items {
		if item.RegionName == nil {
			continue
		}
		regions = append(regions, model.Region{
			Name: *item.RegionName,
			Key:  deref(item.RegionKey),
			Home: item.IsHomeRegion != nil && *item.IsHomeRegion,
		})
	}
	return regions
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
