package discovery

import (
	"context"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/metrics"
	"github.com/elC0mpa/ipam-doctor/service/registry"
	"go.uber.org/zap"
)

type service struct {
	policy  model.DiscoveryFailurePolicy
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type DiscoveryService interface {
	Discover(ctx context.Context, regions []model.Region, reg *registry.Registry) (map[string][]model.SubnetReference, []string, error)
}
