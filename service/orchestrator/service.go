package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service"
	"github.com/elC0mpa/ipam-doctor/service/analyzer"
	"github.com/elC0mpa/ipam-doctor/service/collector"
	"github.com/elC0mpa/ipam-doctor/service/discovery"
	"github.com/elC0mpa/ipam-doctor/service/metrics"
	"github.com/elC0mpa/ipam-doctor/service/region"
	"github.com/elC0mpa/ipam-doctor/service/registry"
	"github.com/elC0mpa/ipam-doctor/service/store"
	"github.com/elC0mpa/ipam-doctor/utils"
	"go.uber.org/zap"
)

func NewService(provider *service.Provider, logger *zap.Logger) *orchestratorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &orchestratorService{
		provider: provider,
		logger:   logger,
	}
}

// Orchestrate runs the collection and prints the report. With ShowRegion it
// prints the subscribed regions instead and returns model.ErrEarlyExit.
func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) (*model.RunResult, error) {
	if flags.ShowRegion {
		regions, err := s.ListRegions(ctx)
		if err != nil {
			return nil, err
		}

		utils.StopSpinner()
		utils.DrawRegionList(regions)
		return nil, model.ErrEarlyExit
	}

	rc, err := s.run(ctx, flags)
	if err != nil {
		return nil, err
	}

	utils.StopSpinner()
	s.render(rc)

	if flags.MetricsFile != "" {
		if err := rc.metrics.WriteTextfile(flags.MetricsFile); err != nil {
			return rc.result, err
		}
	}

	return rc.result, nil
}

// Run collects and analyzes without printing anything
func (s *orchestratorService) Run(ctx context.Context, flags model.Flags) (*model.RunResult, error) {
	rc, err := s.run(ctx, flags)
	if err != nil {
		return nil, err
	}
	return rc.result, nil
}

// ListRegions returns the regions the account is subscribed to
func (s *orchestratorService) ListRegions(ctx context.Context) ([]model.Region, error) {
	regions, err := s.provider.Regions.ListSubscribedRegions(ctx)
	if err != nil {
		return nil, &model.ProviderError{Provider: s.provider.Name, Err: err}
	}
	return regions, nil
}

func (s *orchestratorService) run(ctx context.Context, flags model.Flags) (*runContext, error) {
	rc := &runContext{
		flags:   flags,
		start:   time.Now(),
		metrics: metrics.New(),
		records: store.New(),
	}

	stages := []func(context.Context, *runContext) error{
		s.resolveRegions,
		s.buildClients,
		s.discover,
		s.collect,
		s.analyze,
	}
	for _, stage := range stages {
		if err := stage(ctx, rc); err != nil {
			return nil, err
		}
	}

	return rc, nil
}

func (s *orchestratorService) resolveRegions(ctx context.Context, rc *runContext) error {
	all, err := s.ListRegions(ctx)
	if err != nil {
		return err
	}

	regions, err := region.Filter(all, rc.flags.Regions)
	if err != nil {
		return err
	}

	rc.regions = regions
	s.logger.Info("regions resolved",
		zap.String("provider", s.provider.Name),
		zap.Strings("regions", region.Names(regions)),
	)
	return nil
}

func (s *orchestratorService) buildClients(ctx context.Context, rc *runContext) error {
	reg, err := registry.Build(rc.regions, s.provider.Clients)
	if err != nil {
		return err
	}

	rc.registry = reg
	return nil
}

func (s *orchestratorService) discover(ctx context.Context, rc *runContext) error {
	byRegion, failed, err := discovery.NewService(rc.flags.DiscoveryFailure, s.logger, rc.metrics).
		Discover(ctx, rc.regions, rc.registry)
	if err != nil {
		return err
	}

	rc.byRegion = byRegion
	rc.failed = failed
	return nil
}

func (s *orchestratorService) collect(ctx context.Context, rc *runContext) error {
	collector.NewService(rc.flags.Concurrency, rc.records, s.logger, rc.metrics).
		CollectAll(ctx, rc.regions, rc.byRegion, rc.registry)
	return nil
}

func (s *orchestratorService) analyze(ctx context.Context, rc *runContext) error {
	threshold := rc.flags.Threshold
	if threshold <= 0 {
		threshold = model.DefaultThreshold
	}

	report := analyzer.NewService(s.logger).Analyze(rc.regions, rc.records, threshold)
	duration := time.Since(rc.start)

	rc.metrics.RecordReport(report)
	rc.metrics.SetDuration(duration)

	rc.result = &model.RunResult{
		Account:       s.accountInfo(ctx),
		Report:        report,
		FailedRegions: rc.failed,
		Duration:      duration,
	}
	return nil
}

// accountInfo is only used for the report title, so failures are logged
func (s *orchestratorService) accountInfo(ctx context.Context) *model.AccountInfo {
	if s.provider.Identity == nil {
		return nil
	}

	account, err := s.provider.Identity.GetAccountInfo(ctx)
	if err != nil {
		s.logger.Warn("failed to get account info", zap.Error(err))
		return nil
	}
	return account
}

func (s *orchestratorService) render(rc *runContext) {
	result := rc.result

	utils.DrawUtilizationReport(result.Account, result.Report)

	if rc.flags.Chart && result.Report.Index.Len() > 0 {
		utils.DrawUtilizationChart(result.Report.Index)
	}

	if rc.flags.Verbose {
		for _, regionName := range result.Report.Index.Regions {
			for _, subnet := range result.Report.Index.Buckets[regionName] {
				utils.DrawActiveAddresses(subnet)
			}
		}
	}

	utils.DrawSkipSummary(result.Report, result.FailedRegions)
	fmt.Printf("\n Data collection took %.1f seconds\n", result.Duration.Seconds())
}
