package gcpidentity

import (
	"context"
	"fmt"

	"github.com/elC0mpa/ipam-doctor/model"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string, opts ...option.ClientOption) (*service, error) {
	client, err := cloudresourcemanager.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource manager client: %w", err)
	}

	return &service{
		projectID: projectID,
		client:    client,
	}, nil
}

// GetAccountInfo implements service.IdentityService
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	project, err := s.GetProjectInfo(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AccountInfo{
		Provider:    model.ProviderGCP,
		AccountID:   s.projectID,
		AccountName: project.Name,
	}, nil
}

// GetProjectInfo returns detailed GCP project information
func (s *service) GetProjectInfo(ctx context.Context) (*cloudresourcemanager.Project, error) {
	project, err := s.client.Projects.Get(s.projectID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}
