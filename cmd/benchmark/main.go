// Command benchmark measures validation pipeline throughput.
// The validator is pure CPU work, so this is a quick sanity check that
// single-call latency stays in the sub-microsecond range and that the
// batch path adds no meaningful overhead per candidate.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/olgasafonova/danish-cpr-mcp-server/internal/cpr"
)

const iterations = 1_000_000

func main() {
	measureSingleValidation()
	measureStageShortCircuit()
	measureBatchValidation()
}

// randomCandidates builds a mixed workload: plausible digit strings,
// hyphenated forms, and garbage.
func randomCandidates(n int) []string {
	rng := rand.New(rand.NewSource(1))
	candidates := make([]string, n)
	for i := range candidates {
		switch i % 4 {
		case 0:
			candidates[i] = fmt.Sprintf("%02d%02d%06d", rng.Intn(32), rng.Intn(14), rng.Intn(1000000))
		case 1:
			candidates[i] = fmt.Sprintf("%02d%02d%02d-%04d", rng.Intn(32), rng.Intn(14), rng.Intn(100), rng.Intn(10000))
		case 2:
			candidates[i] = fmt.Sprintf("%d", rng.Int63())
		default:
			candidates[i] = "010101-0007"
		}
	}
	return candidates
}

func measureSingleValidation() {
	fmt.Println("=== Single Validation Throughput ===")
	fmt.Println()

	candidates := randomCandidates(iterations)

	start := time.Now()
	valid := 0
	for _, c := range candidates {
		if cpr.IsValid(c) {
			valid++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("   %d validations in %v\n", iterations, elapsed)
	fmt.Printf("   %.0f validations/sec\n", float64(iterations)/elapsed.Seconds())
	fmt.Printf("   %v per validation\n", elapsed/iterations)
	fmt.Printf("   valid: %d\n", valid)
	fmt.Println()
}

func measureStageShortCircuit() {
	fmt.Println("=== Short-Circuit Cost by Stage ===")
	fmt.Println()

	tests := []struct {
		label string
		input string
	}{
		{"format failure (garbage)", "not-a-cpr-at-all"},
		{"calendar failure", "3002000000"},
		{"checksum failure", "0101011234"},
		{"full pass", "0101010007"},
	}

	for _, tt := range tests {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			cpr.Validate(tt.input)
		}
		elapsed := time.Since(start)
		fmt.Printf("   %-28s %v per call\n", tt.label+":", elapsed/iterations)
	}
	fmt.Println()
}

func measureBatchValidation() {
	fmt.Println("=== Batch Validation Overhead ===")
	fmt.Println()

	validator := cpr.NewValidator()
	ctx := context.Background()
	batch := randomCandidates(cpr.MaxBatchSize)

	rounds := iterations / cpr.MaxBatchSize
	start := time.Now()
	for i := 0; i < rounds; i++ {
		_, _ = validator.ValidateBatchMCP(ctx, cpr.ValidateBatchArgs{CPRs: batch})
	}
	elapsed := time.Since(start)

	total := rounds * cpr.MaxBatchSize
	fmt.Printf("   %d candidates in %d batches of %d: %v\n", total, rounds, cpr.MaxBatchSize, elapsed)
	fmt.Printf("   %v per candidate via batch path\n", elapsed/time.Duration(total))
	fmt.Println()
}
