package gcpconfig

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

func NewService(projectID string) *service {
	return &service{
		projectID: projectID,
	}
}

func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	// Application Default Credentials: GOOGLE_APPLICATION_CREDENTIALS,
	// gcloud auth application-default login, or the metadata server
	creds, err := google.FindDefaultCredentials(ctx,
		cloudresourcemanager.CloudPlatformReadOnlyScope,
		compute.ComputeReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find default credentials: %w", err)
	}
	return creds, nil
}

// GetProjectID returns the configured project, falling back to the project
// of the default credentials
func (s *service) GetProjectID(ctx context.Context) (string, error) {
	if s.projectID != "" {
		return s.projectID, nil
	}

	creds, err := s.GetCredentials(ctx)
	if err != nil {
		return "", err
	}
	if creds.ProjectID == "" {
		return "", fmt.Errorf("no GCP project configured and none found in the default credentials")
	}
	return creds.ProjectID, nil
}

// ClientOptions returns the options shared by every GCP client
func (s *service) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	creds, err := s.GetCredentials(ctx)
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}
