package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/ipam-doctor/cmd/mcp/response"
	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/flag"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Runner is the part of the orchestrator the tools need
type Runner interface {
	Run(ctx context.Context, flags model.Flags) (*model.RunResult, error)
	ListRegions(ctx context.Context) ([]model.Region, error)
}

// RunnerFactory builds a Runner on each call so credentials are read fresh
type RunnerFactory func(ctx context.Context) (Runner, error)

// RegisterIPAMTools registers the subnet utilization tools with the MCP server
func RegisterIPAMTools(s *server.MCPServer, base model.Flags, newRunner RunnerFactory, logger *zap.Logger) {
	// Subscribed regions
	s.AddTool(
		mcp.NewTool("ipam_list_regions",
			mcp.WithDescription("List the regions the configured cloud account is subscribed to, with their short keys"),
		),
		makeListRegionsHandler(base, newRunner, logger),
	)

	// High utilization subnets
	s.AddTool(
		mcp.NewTool("ipam_get_high_utilization_subnets",
			mcp.WithDescription("Scan the subnets of every subscribed region and return those whose private IP utilization is at or above the threshold, grouped by region"),
			mcp.WithArray("regions",
				mcp.Description("Limit the scan to these regions, by name or key. All subscribed regions when omitted."),
				mcp.WithStringItems(),
			),
			mcp.WithNumber("threshold",
				mcp.Description("Utilization percentage a subnet must reach to be reported, greater than 0 and at most 100"),
				mcp.DefaultNumber(model.DefaultThreshold),
				exclusiveMin(0),
				mcp.Max(100),
			),
			mcp.WithBoolean("include_addresses",
				mcp.Description("Include the active addresses of each reported subnet"),
			),
		),
		makeHighUtilizationHandler(base, newRunner, logger),
	)
}

// exclusiveMin sets the JSON schema exclusiveMinimum of a number property
func exclusiveMin(limit float64) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["exclusiveMinimum"] = limit
	}
}

func makeListRegionsHandler(base model.Flags, newRunner RunnerFactory, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		runner, err := newRunner(ctx)
		if err != nil {
			logger.Warn("provider setup failed", zap.String("tool", request.Params.Name), zap.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure %s: %v", base.Provider, err)), nil
		}

		regions, err := runner.ListRegions(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list regions: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertRegions(base.Provider, regions), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeHighUtilizationHandler(base model.Flags, newRunner RunnerFactory, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags := base
		flags.Regions = request.GetStringSlice("regions", base.Regions)
		flags.Threshold = request.GetFloat("threshold", base.Threshold)
		if err := flag.Validate(flags); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		runner, err := newRunner(ctx)
		if err != nil {
			logger.Warn("provider setup failed", zap.String("tool", request.Params.Name), zap.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure %s: %v", base.Provider, err)), nil
		}

		result, err := runner.Run(ctx, flags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect subnet utilization: %v", err)), nil
		}

		logger.Info("utilization scan finished",
			zap.Int("evaluated", result.Report.Evaluated),
			zap.Int("reported", result.Report.Index.Len()),
			zap.Duration("duration", result.Duration),
		)

		resp := response.ConvertRunResult(result, request.GetBool("include_addresses", false))
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
