package cpr

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	apierrors "github.com/olgasafonova/danish-cpr-mcp-server/internal/errors"
	"github.com/olgasafonova/danish-cpr-mcp-server/metrics"
)

// Validator exposes the validation pipeline to the MCP layer.
// The pipeline itself is pure; the Validator only carries a logger,
// so a single instance is safe for concurrent use.
type Validator struct {
	Logger *slog.Logger
}

// ValidatorOption configures the Validator
type ValidatorOption func(*Validator)

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		v.Logger = l
	}
}

// NewValidator creates a new Validator
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// MCP Tool wrapper methods
// These methods wrap the pure validation functions with Args/Result types
// for MCP integration.

// ValidateMCP is the MCP wrapper for Validate.
// An unparseable CPR is not a tool error: it yields a negative verdict.
func (v *Validator) ValidateMCP(ctx context.Context, args ValidateArgs) (ValidationResult, error) {
	result := Validate(args.CPR)
	metrics.RecordValidation(result.Valid, string(result.Reason))
	return result, nil
}

// ValidateBatchMCP validates up to MaxBatchSize candidates in one call
func (v *Validator) ValidateBatchMCP(ctx context.Context, args ValidateBatchArgs) (ValidateBatchResult, error) {
	if len(args.CPRs) == 0 {
		v.Logger.Warn("Batch validation rejected", "reason", "empty")
		return ValidateBatchResult{}, apierrors.NewValidationError("cprs", "", "is required")
	}
	if len(args.CPRs) > MaxBatchSize {
		v.Logger.Warn("Batch validation rejected", "reason", "oversize", "candidates", len(args.CPRs))
		return ValidateBatchResult{}, apierrors.NewValidationError("cprs", "",
			fmt.Sprintf("exceeds maximum batch size of %d", MaxBatchSize))
	}

	result := ValidateBatchResult{
		Results:    make([]ValidationResult, 0, len(args.CPRs)),
		TotalCount: len(args.CPRs),
	}
	for _, candidate := range args.CPRs {
		verdict := Validate(candidate)
		metrics.RecordValidation(verdict.Valid, string(verdict.Reason))
		if verdict.Valid {
			result.ValidCount++
		} else {
			result.InvalidCount++
		}
		result.Results = append(result.Results, verdict)
	}
	metrics.BatchSize.Observe(float64(len(args.CPRs)))

	return result, nil
}

// FormatMCP formats a CPR number in the canonical DDMMYY-SSSS convention.
// The input must normalize to 10 digits; the verdict of the full pipeline
// is reported alongside so callers do not mistake formatting for validity.
func (v *Validator) FormatMCP(ctx context.Context, args FormatArgs) (FormatResult, error) {
	digits, err := Normalize(args.CPR)
	if err != nil {
		// Input length only: CPR values are personal data.
		v.Logger.Warn("Format rejected", "reason", "format", "input_chars", len(args.CPR))
		return FormatResult{}, err
	}

	return FormatResult{
		CPR:             args.CPR,
		FormattedNumber: digits[:6] + "-" + digits[6:],
		Valid:           IsValid(digits),
	}, nil
}
