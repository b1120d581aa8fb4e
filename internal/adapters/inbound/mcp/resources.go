package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mojolint/mojolint/internal/adapters/outbound/history"
)

// registerResources registers all mojolint MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. mojolint://summary - current scan summary
	s.AddResource(
		mcplib.NewResource(
			"mojolint://summary",
			"Scan Summary",
			mcplib.WithResourceDescription("Current compliance summary for the Mojo tree"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSummaryResource(projectPath),
	)

	// 2. mojolint://config - effective configuration
	s.AddResource(
		mcplib.NewResource(
			"mojolint://config",
			"Configuration",
			mcplib.WithResourceDescription("Effective check configuration after merging .mojolint.yaml over defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 3. mojolint://history - persisted scan history
	s.AddResource(
		mcplib.NewResource(
			"mojolint://history",
			"Scan History",
			mcplib.WithResourceDescription("Persisted scan summaries for this tree, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleSummaryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		summary, err := newScanService().ScanDirectory(projectPath, cfg)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		return jsonResource("mojolint://summary", summary)
	}
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonResource("mojolint://config", cfg)
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		return jsonResource("mojolint://history", entries)
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
