// Danish CPR MCP Server - A Model Context Protocol server for validating
// Danish CPR numbers (personnumre): format, calendar date, and MOD11 checksum.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/danish-cpr-mcp-server/internal/cpr"
	"github.com/olgasafonova/danish-cpr-mcp-server/tools"
	"github.com/olgasafonova/danish-cpr-mcp-server/tracing"
)

const (
	ServerName    = "danish-cpr-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := newLogger(os.Getenv("LOG_LEVEL"))

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	tracingConfig := tracing.DefaultConfig()
	tracingConfig.ServiceName = ServerName
	tracingConfig.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, tracingConfig)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	validator := cpr.NewValidator(cpr.WithLogger(logger))
	server := newServer(validator, logger)

	logger.Info("Starting Danish CPR MCP Server",
		"name", ServerName,
		"version", ServerVersion,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// newLogger builds the stderr logger. level accepts debug/info/warn/error,
// defaulting to info.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	}))
}

// newServer creates the MCP server and registers all tools.
func newServer(validator *cpr.Validator, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Danish CPR MCP Server validates Danish CPR numbers (personnumre).

Available tools:
- cpr_validate: Validate one CPR number, with the failing stage on rejection
- cpr_validate_batch: Validate up to 100 CPR numbers in one call
- cpr_format: Format a CPR number in the canonical DDMMYY-SSSS convention

Validation runs three stages: format (10 digits after hyphen removal),
calendar (day/month fields against a fixed day-count table; February is
always allowed 29 days), and a MOD11 checksum over all 10 digits.

Configure via environment variables:
- LOG_LEVEL: debug, info, warn, or error (default info)
- OTEL_ENABLED / OTEL_EXPORTER_OTLP_ENDPOINT: enable OpenTelemetry tracing`,
	})

	tools.NewHandlerRegistry(validator, logger).RegisterAll(server)
	return server
}
