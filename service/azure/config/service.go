package azureconfig

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

func NewService(subscriptionID string) (*service, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("azure subscription ID is required")
	}

	// DefaultAzureCredential tries environment variables, managed identity
	// and the Azure CLI login in turn
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		credential:     credential,
	}, nil
}

func (s *service) GetCredential() *azidentity.DefaultAzureCredential {
	return s.credential
}

func (s *service) GetSubscriptionID() string {
	return s.subscriptionID
}
