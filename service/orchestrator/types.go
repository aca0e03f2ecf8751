package orchestrator

import (
	"context"
	"time"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service"
	"github.com/elC0mpa/ipam-doctor/service/metrics"
	"github.com/elC0mpa/ipam-doctor/service/registry"
	"github.com/elC0mpa/ipam-doctor/service/store"
	"go.uber.org/zap"
)

type orchestratorService struct {
	provider *service.Provider
	logger   *zap.Logger
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) (*model.RunResult, error)
	Run(ctx context.Context, flags model.Flags) (*model.RunResult, error)
	ListRegions(ctx context.Context) ([]model.Region, error)
}

// runContext carries the state of one run from stage to stage
type runContext struct {
	flags    model.Flags
	start    time.Time
	metrics  *metrics.Metrics
	regions  []model.Region
	registry *registry.Registry
	byRegion map[string][]model.SubnetReference
	failed   []string
	records  *store.Records
	result   *model.RunResult
}
