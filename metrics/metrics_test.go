package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.0005,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   0.001,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name        string
		valid       bool
		reason      string
		wantOutcome string
		wantReason  string
	}{
		{
			name:        "valid verdict",
			valid:       true,
			reason:      "",
			wantOutcome: "valid",
			wantReason:  "none",
		},
		{
			name:        "format failure",
			valid:       false,
			reason:      "format",
			wantOutcome: "invalid",
			wantReason:  "format",
		},
		{
			name:        "checksum failure",
			valid:       false,
			reason:      "checksum",
			wantOutcome: "invalid",
			wantReason:  "checksum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordValidation(tt.valid, tt.reason)

			counter, err := ValidationsTotal.GetMetricWithLabelValues(tt.wantOutcome, tt.wantReason)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestBatchSizeObserve(t *testing.T) {
	BatchSize.Observe(10)

	var m dto.Metric
	if err := BatchSize.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if m.Histogram.GetSampleCount() < 1 {
		t.Error("expected histogram to record a sample")
	}
}
