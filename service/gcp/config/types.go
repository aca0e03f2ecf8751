package gcpconfig

import (
	"context"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

type service struct {
	projectID string
}

type ConfigService interface {
	GetCredentials(ctx context.Context) (*google.Credentials, error)
	GetProjectID(ctx context.Context) (string, error)
	ClientOptions(ctx context.Context) ([]option.ClientOption, error)
}
