package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mojolint/mojolint/internal/adapters/outbound/backup"
	"github.com/mojolint/mojolint/internal/adapters/outbound/config"
	"github.com/mojolint/mojolint/internal/adapters/outbound/scanner"
	"github.com/mojolint/mojolint/internal/adapters/outbound/toolchain"
	"github.com/mojolint/mojolint/internal/application"
	"github.com/mojolint/mojolint/internal/domain"
)

// registerTools registers all mojolint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. mojolint_scan
	s.AddTool(
		mcplib.NewTool("mojolint_scan",
			mcplib.WithDescription("Scan the Mojo tree and return the full compliance summary as JSON"),
		),
		handleScan(projectPath),
	)

	// 2. mojolint_check_file
	s.AddTool(
		mcplib.NewTool("mojolint_check_file",
			mcplib.WithDescription("Return the compliance report for a single Mojo file"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file to check, relative to the project root"),
			),
		),
		handleCheckFile(projectPath),
	)

	// 3. mojolint_fix
	s.AddTool(
		mcplib.NewTool("mojolint_fix",
			mcplib.WithDescription("Plan safe rewrites for a Mojo file; optionally apply them with backup and build validation"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file to fix, relative to the project root"),
			),
			mcplib.WithBoolean("enable_auto_fix", mcplib.Description("Apply the rewrites instead of only planning them")),
		),
		handleFix(projectPath),
	)

	// 4. mojolint_cleanup
	s.AddTool(
		mcplib.NewTool("mojolint_cleanup",
			mcplib.WithDescription("Delete backup files older than the retention window and return the removed paths"),
		),
		handleCleanup(projectPath),
	)
}

// newScanService creates the scan service with the standard adapters.
func newScanService() *application.ScanService {
	return application.NewScanService(scanner.New(), config.New())
}

func loadConfig(projectPath string) (domain.CheckConfig, error) {
	return config.New().Load(projectPath)
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		summary, err := newScanService().ScanDirectory(projectPath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		report := newScanService().CheckFile(filepath.Join(projectPath, file), cfg)
		return jsonResult(report)
	}
}

func handleFix(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		enableAutoFix, _ := request.GetArguments()["enable_auto_fix"].(bool)

		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewFixService(backup.New(), toolchain.New())
		result, err := svc.Fix(filepath.Join(projectPath, file), cfg, domain.FixOptions{EnableAutoFix: enableAutoFix})
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleCleanup(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewCleanupService(backup.New())
		removed, err := svc.Cleanup(projectPath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("cleanup failed: %v", err)), nil
		}
		return jsonResult(removed)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
