package collector

import (
	"context"
	"errors"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service"
	"github.com/elC0mpa/ipam-doctor/service/metrics"
	"github.com/elC0mpa/ipam-doctor/service/registry"
	"github.com/elC0mpa/ipam-doctor/service/store"
	"github.com/elC0mpa/ipam-doctor/service/workerpool"
	"go.uber.org/zap"
)

func NewService(concurrency int, records *store.Records, logger *zap.Logger, m *metrics.Metrics) *collectorService {
	if concurrency < 1 {
		concurrency = model.DefaultConcurrency
	}
	return &collectorService{
		concurrency: concurrency,
		records:     records,
		logger:      logger,
		metrics:     m,
	}
}

// CollectAll collects every region at once and returns when every task of
// every region has finished. Regions missing from byRegion are ignored.
func (s *collectorService) CollectAll(ctx context.Context, regions []model.Region, byRegion map[string][]model.SubnetReference, reg *registry.Registry) {
	var tasks []workerpool.Task

	for _, region := range regions {
		refs, ok := byRegion[region.Name]
		if !ok {
			continue
		}
		client, ok := reg.Get(region.Name)
		if !ok {
			continue
		}

		tasks = append(tasks, func(ctx context.Context) error {
			s.Collect(ctx, region.Name, refs, client)
			return nil
		})
	}

	workerpool.New(len(tasks)).Run(ctx, tasks)
}

// Collect seeds the region's records and fetches details and addresses of
// every subnet, at most concurrency calls at a time. Failed fetches are
// recorded on the subnet and never stop the region.
func (s *collectorService) Collect(ctx context.Context, region string, refs []model.SubnetReference, client service.NetworkClient) {
	s.records.Seed(region, refs)

	tasks := make([]workerpool.Task, 0, 2*len(refs))
	for _, ref := range refs {
		tasks = append(tasks,
			func(ctx context.Context) error { return s.fetchDetails(ctx, region, ref.ID, client) },
			func(ctx context.Context) error { return s.fetchAddresses(ctx, region, ref.ID, client) },
		)
	}

	errs := workerpool.New(s.concurrency).Run(ctx, tasks)

	for _, err := range errs {
		if err == nil {
			continue
		}
		var fetchErr *model.FetchError
		if errors.As(err, &fetchErr) {
			s.records.SetError(region, fetchErr.SubnetID, fetchErr.Call, fetchErr)
			s.logger.Warn("subnet fetch failed",
				zap.String("region", region),
				zap.String("subnet", fetchErr.SubnetID),
				zap.String("call", string(fetchErr.Call)),
				zap.Error(fetchErr.Err),
			)
		}
	}
}

func (s *collectorService) fetchDetails(ctx context.Context, region, subnetID string, client service.NetworkClient) error {
	details, err := client.GetSubnet(ctx, subnetID)
	s.metrics.ObserveCall(region, metrics.CallGetSubnet, err)
	if err != nil {
		return &model.FetchError{Region: region, SubnetID: subnetID, Call: model.FetchDetails, Err: err}
	}

	s.records.SetDetails(region, subnetID, details)
	return nil
}

func (s *collectorService) fetchAddresses(ctx context.Context, region, subnetID string, client service.NetworkClient) error {
	addresses, err := client.ListPrivateIPs(ctx, subnetID)
	s.metrics.ObserveCall(region, metrics.CallListPrivateIPs, err)
	if err != nil {
		return &model.FetchError{Region: region, SubnetID: subnetID, Call: model.FetchAddresses, Err: err}
	}

	s.records.SetAddresses(region, subnetID, addresses)
	return nil
}
