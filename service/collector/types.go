package collector

import (
	"context"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service"
	"github.com/elC0mpa/ipam-doctor/service/metrics"
	"github.com/elC0mpa/ipam-doctor/service/registry"
	"github.com/elC0mpa/ipam-doctor/service/store"
	"go.uber.org/zap"
)

type collectorService struct {
	concurrency int
	records     *store.Records
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

type CollectorService interface {
	Collect(ctx context.Context, region string, refs []model.SubnetReference, client service.NetworkClient)
	CollectAll(ctx context.Context, regions []model.Region, byRegion map[string][]model.SubnetReference, reg *registry.Registry)
}
