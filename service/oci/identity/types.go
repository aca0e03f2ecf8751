package ociidentity

import (
	"context"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

type service struct {
	tenancyID string
	client    identity.IdentityClient
}

type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
	ListSubscribedRegions(ctx context.Context) ([]model.Region, error)
}
