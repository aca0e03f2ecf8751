package discovery

import (
	"context"
	"fmt"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/metrics"
	"github.com/elC0mpa/ipam-doctor/service/registry"
	"github.com/elC0mpa/ipam-doctor/service/workerpool"
	"go.uber.org/zap"
)

func NewService(policy model.DiscoveryFailurePolicy, logger *zap.Logger, m *metrics.Metrics) *service {
	if policy == "" {
		policy = model.DiscoveryFailureSkip
	}
	return &service{
		policy:  policy,
		logger:  logger,
		metrics: m,
	}
}

// Discover searches every region for subnets at once and returns when all
// searches finished. Regions whose search failed are returned as failed
// under the skip policy. Under the abort policy the first failure in region
// order is returned instead.
func (s *service) Discover(ctx context.Context, regions []model.Region, reg *registry.Registry) (map[string][]model.SubnetReference, []string, error) {
	found := make([][]model.SubnetReference, len(regions))

	tasks := make([]workerpool.Task, len(regions))
	for i, region := range regions {
		tasks[i] = func(ctx context.Context) error {
			refs, err := s.discoverRegion(ctx, region.Name, reg)
			if err != nil {
				return err
			}
			found[i] = refs
			return nil
		}
	}

	errs := workerpool.New(len(regions)).Run(ctx, tasks)

	if s.policy == model.DiscoveryFailureAbort {
		if err := workerpool.FirstError(errs); err != nil {
			return nil, nil, err
		}
	}

	byRegion := make(map[string][]model.SubnetReference, len(regions))
	var failed []string

	for i, region := range regions {
		if errs[i] != nil {
			s.logger.Warn("skipping region after failed subnet discovery",
				zap.String("region", region.Name),
				zap.Error(errs[i]),
			)
			failed = append(failed, region.Name)
			continue
		}

		byRegion[region.Name] = found[i]
		s.metrics.SetDiscovered(region.Name, len(found[i]))
		s.logger.Info("subnets discovered",
			zap.String("region", region.Name),
			zap.Int("count", len(found[i])),
		)
	}

	return byRegion, failed, nil
}

func (s *service) discoverRegion(ctx context.Context, regionName string, reg *registry.Registry) ([]model.SubnetReference, error) {
	client, ok := reg.Get(regionName)
	if !ok {
		return nil, &model.DiscoveryError{Region: regionName, Err: fmt.Errorf("no client registered")}
	}

	ids, err := client.SearchSubnets(ctx)
	s.metrics.ObserveCall(regionName, metrics.CallSearchSubnets, err)
	if err != nil {
		return nil, &model.DiscoveryError{Region: regionName, Err: err}
	}

	refs := make([]model.SubnetReference, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, model.SubnetReference{Region: regionName, ID: id})
	}
	return refs, nil
}
