package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/danish-cpr-mcp-server/internal/cpr"
	"github.com/olgasafonova/danish-cpr-mcp-server/metrics"
	"github.com/olgasafonova/danish-cpr-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	validator *cpr.Validator
	logger    *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(validator *cpr.Validator, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		validator: validator,
		logger:    logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "Validate":
		register(h, server, tool, spec, h.validator.ValidateMCP)
	case "ValidateBatch":
		register(h, server, tool, spec, h.validator.ValidateBatchMCP)
	case "Format":
		register(h, server, tool, spec, h.validator.FormatMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the validator method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result, span)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details and attaches verdict attributes
// to the span. CPR values are personal data and are never logged or traced;
// only lengths, verdicts, and counts appear.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any, span trace.Span) {
	attrs := []any{"tool", spec.Name}

	switch a := args.(type) {
	case cpr.ValidateArgs:
		attrs = append(attrs, "input_chars", len(a.CPR))
	case cpr.ValidateBatchArgs:
		attrs = append(attrs, "candidates", len(a.CPRs))
	case cpr.FormatArgs:
		attrs = append(attrs, "input_chars", len(a.CPR))
	}

	switch r := result.(type) {
	case cpr.ValidationResult:
		attrs = append(attrs, "valid", r.Valid)
		if r.Reason != "" {
			attrs = append(attrs, "reason", string(r.Reason))
		}
		tracing.AddValidationAttributes(span, r.Valid, string(r.Reason))
	case cpr.ValidateBatchResult:
		attrs = append(attrs, "valid_count", r.ValidCount, "invalid_count", r.InvalidCount)
	case cpr.FormatResult:
		attrs = append(attrs, "valid", r.Valid)
	}

	h.logger.Info("Tool executed", attrs...)
}
