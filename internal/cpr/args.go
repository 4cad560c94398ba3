package cpr

// ValidateArgs contains parameters for validating a single CPR number
type ValidateArgs struct {
	CPR string `json:"cpr" jsonschema:"required" jsonschema_description:"Danish CPR number: 10 digits, hyphens allowed (e.g. 010101-0007)"`
}

// MaxBatchSize caps the number of candidates per batch call
const MaxBatchSize = 100

// ValidateBatchArgs contains parameters for validating multiple CPR numbers
type ValidateBatchArgs struct {
	CPRs []string `json:"cprs" jsonschema:"required" jsonschema_description:"CPR numbers to validate (max 100 per call)"`
}

// ValidateBatchResult is the result of a batch validation
type ValidateBatchResult struct {
	Results      []ValidationResult `json:"results"`
	TotalCount   int                `json:"total_count"`
	ValidCount   int                `json:"valid_count"`
	InvalidCount int                `json:"invalid_count"`
}

// FormatArgs contains parameters for formatting a CPR number
type FormatArgs struct {
	CPR string `json:"cpr" jsonschema:"required" jsonschema_description:"CPR number to format in the canonical DDMMYY-SSSS convention"`
}

// FormatResult is the result of formatting a CPR number
type FormatResult struct {
	CPR             string `json:"cpr"`              // input as given
	FormattedNumber string `json:"formatted_number"` // DDMMYY-SSSS
	Valid           bool   `json:"valid"`            // full pipeline verdict for the same input
}
