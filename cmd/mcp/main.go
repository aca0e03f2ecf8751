package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/ipam-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/ipam-doctor/service/flag"
	"github.com/elC0mpa/ipam-doctor/service/orchestrator"
	"github.com/elC0mpa/ipam-doctor/service/provider"
	"github.com/elC0mpa/ipam-doctor/utils"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()
	base := cfg.Flags()

	if err := flag.Validate(base); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	s := server.NewMCPServer(
		"ipam-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterIPAMTools(s, base, func(ctx context.Context) (tools.Runner, error) {
		cloud, err := provider.Build(ctx, base)
		if err != nil {
			return nil, err
		}
		return orchestrator.NewService(cloud, logger), nil
	}, logger)

	logger.Info("serving MCP over stdio")
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
