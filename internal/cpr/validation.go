// Package cpr validates Danish CPR numbers (personnumre).
// A CPR number is 10 digits: a birth date (DDMMYY) followed by a
// four-digit sequence whose last digit acts as a MOD11 check digit.
// Validation runs a three-stage pipeline: format, calendar, checksum.
// Each stage short-circuits, so later stages can assume the invariants
// established by earlier ones.
package cpr

import (
	"regexp"
	"strings"

	apierrors "github.com/olgasafonova/danish-cpr-mcp-server/internal/errors"
)

var cprRegex = regexp.MustCompile(`^\d{10}$`)

// daysInMonth is the maximum day accepted per month.
// February is fixed at 29 regardless of year: the CPR's two-digit year
// cannot resolve the century, so leap years are not computed. This means
// 29/02 of a non-leap year passes the calendar stage. Documented quirk,
// kept deliberately.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// weights is the MOD11 weight sequence applied positionally to all
// 10 digits.
var weights = [10]int{4, 3, 2, 7, 6, 5, 4, 3, 2, 1}

// Reason identifies which pipeline stage rejected a candidate.
type Reason string

const (
	// ReasonFormat: not exactly 10 ASCII digits after hyphen removal.
	ReasonFormat Reason = "format"
	// ReasonCalendar: day/month fields outside the calendar table.
	ReasonCalendar Reason = "calendar"
	// ReasonChecksum: weighted digit sum not divisible by 11.
	ReasonChecksum Reason = "checksum"
)

// ValidationResult is the verdict for one candidate CPR number.
type ValidationResult struct {
	CPR             string `json:"cpr"`                        // raw input as given
	FormattedNumber string `json:"formatted_number,omitempty"` // DDMMYY-SSSS when normalizable
	Valid           bool   `json:"valid"`
	Reason          Reason `json:"reason,omitempty"` // empty when valid
	Message         string `json:"message"`
}

// Normalize strips hyphens from a candidate CPR number and verifies the
// residual is exactly 10 ASCII digits. Only the hyphen is a recognized
// delimiter; spaces or any other character fail validation.
func Normalize(raw string) (string, error) {
	cleaned := strings.ReplaceAll(raw, "-", "")
	if !cprRegex.MatchString(cleaned) {
		return "", apierrors.NewValidationError("cpr", raw, "must be exactly 10 digits, optionally hyphen-separated")
	}
	return cleaned, nil
}

// Format renders a CPR number in the canonical Danish convention
// DDMMYY-SSSS. Inputs that do not normalize to 10 digits are returned
// unchanged. Formatting does not imply validity.
func Format(raw string) string {
	cleaned, err := Normalize(raw)
	if err != nil {
		return raw
	}
	return cleaned[:6] + "-" + cleaned[6:]
}

// Validate runs the full pipeline on a candidate CPR number and returns
// a verdict with the failing stage, if any. It is pure and stateless:
// safe for concurrent use, and the same input always yields the same
// verdict.
func Validate(raw string) ValidationResult {
	result := ValidationResult{CPR: raw}

	digits, err := Normalize(raw)
	if err != nil {
		result.Reason = ReasonFormat
		result.Message = "Invalid format: must be exactly 10 digits, optionally hyphen-separated"
		return result
	}
	result.FormattedNumber = digits[:6] + "-" + digits[6:]

	if !checkCalendar(digits) {
		result.Reason = ReasonCalendar
		result.Message = "Invalid birth date: day/month fields are not a calendar date"
		return result
	}

	if !checkChecksum(digits) {
		result.Reason = ReasonChecksum
		result.Message = "Invalid check digit: weighted sum is not divisible by 11"
		return result
	}

	result.Valid = true
	result.Message = "Valid Danish CPR number"
	return result
}

// IsValid reports whether a candidate CPR number passes all three
// validation stages.
func IsValid(raw string) bool {
	return Validate(raw).Valid
}

// checkCalendar validates the day and month fields against the fixed
// day-count table. digits must already be 10 ASCII digits.
// Day 0 is accepted: the table only bounds the upper end. Documented
// quirk, kept deliberately rather than silently tightened.
func checkCalendar(digits string) bool {
	day := int(digits[0]-'0')*10 + int(digits[1]-'0')
	month := int(digits[2]-'0')*10 + int(digits[3]-'0')

	if month == 0 || month > 12 {
		return false
	}
	if day > daysInMonth[month-1] {
		return false
	}
	return true
}

// checkChecksum validates the MOD11 checksum over all 10 digits.
// The weighting is purely positional; the date digits participate like
// any others. digits must already be 10 ASCII digits.
func checkChecksum(digits string) bool {
	sum := 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	return sum%11 == 0
}
