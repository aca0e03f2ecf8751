package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/ipam-doctor/model"
)

const physicalRegion = "Physical"

func NewService(subscriptionID string, credential Credential) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetAccountInfo implements service.IdentityService
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	subscription, err := s.GetSubscriptionInfo(ctx)
	if err != nil {
		return nil, err
	}

	displayName := s.subscriptionID
	if subscription.DisplayName != nil {
		displayName = *subscription.DisplayName
	}

	return &model.AccountInfo{
		Provider:    model.ProviderAzure,
		AccountID:   s.subscriptionID,
		AccountName: displayName,
	}, nil
}

// GetSubscriptionInfo returns detailed Azure subscription information
func (s *service) GetSubscriptionInfo(ctx context.Context) (*armsubscriptions.Subscription, error) {
	resp, err := s.client.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription info: %w", err)
	}

	return &resp.Subscription, nil
}

// ListSubscribedRegions returns the physical locations available to the
// subscription. Logical locations such as "global" hold no networks.
func (s *service) ListSubscribedRegions(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region

	pager := s.client.NewListLocationsPager(s.subscriptionID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list locations: %w", err)
		}

		for _, location := range page.Value {
			if region, ok := toRegion(location); ok {
				regions = append(regions, region)
			}
		}
	}

	return regions, nil
}

func toRegion(location *armsubscriptions.Location) (model.Region, bool) {
	if location == nil || location.Name == nil {
		return model.Region{}, false
	}
	if location.Metadata != nil && location.Metadata.RegionType != nil &&
		string(*location.Metadata.RegionType) != physicalRegion {
		return model.Region{}, false
	}

	return model.Region{
		Name: *location.Name,
		Key:  *location.Name,
	}, true
}
