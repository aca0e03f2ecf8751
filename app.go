package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/flag"
	"github.com/elC0mpa/ipam-doctor/service/orchestrator"
	"github.com/elC0mpa/ipam-doctor/service/provider"
	"github.com/elC0mpa/ipam-doctor/utils"
	"go.uber.org/zap"
)

const (
	exitOK        = 0
	exitFatal     = 1
	exitEarlyExit = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		if flag.IsHelp(err) {
			return exitOK
		}
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}

	logger, err := utils.NewLogger(flags.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	utils.DrawBanner()
	utils.StartSpinner()
	defer utils.StopSpinner()

	cloud, err := provider.Build(ctx, flags)
	if err != nil {
		return fail(logger, err)
	}

	orchestratorService := orchestrator.NewService(cloud, logger)

	_, err = orchestratorService.Orchestrate(ctx, flags)
	return exitCode(logger, err)
}

func exitCode(logger *zap.Logger, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, model.ErrEarlyExit):
		return exitEarlyExit
	default:
		return fail(logger, err)
	}
}

func fail(logger *zap.Logger, err error) int {
	utils.StopSpinner()
	logger.Error("run failed", zap.Error(err))
	fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
	return exitFatal
}
