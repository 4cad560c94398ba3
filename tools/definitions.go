package tools

// AllTools contains all tool specifications for the Danish CPR MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:     "cpr_validate",
		Method:   "Validate",
		Title:    "Validate CPR Number",
		Category: "validation",
		Description: `Validate a single Danish CPR number (personnummer).

USE WHEN: User asks "is this CPR valid", "check this personnummer", or a form field needs a verdict on one candidate.

NOT FOR: Validating many numbers at once (use cpr_validate_batch) or reformatting (use cpr_format).

PARAMETERS:
- cpr: Candidate number, 10 digits with optional hyphens (required)

RETURNS: Verdict with the failing stage (format, calendar, or checksum), a human-readable message, and the canonical DDMMYY-SSSS form when the input normalizes.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "cpr_validate_batch",
		Method:   "ValidateBatch",
		Title:    "Validate CPR Numbers (Batch)",
		Category: "validation",
		Description: `Validate up to 100 Danish CPR numbers in one call.

USE WHEN: User has a list of candidates, e.g. "check these CPR numbers", "which of these are valid".

NOT FOR: A single candidate (use cpr_validate).

PARAMETERS:
- cprs: Candidate numbers (required, max 100)

RETURNS: Per-candidate verdicts plus total/valid/invalid counts.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "cpr_format",
		Method:   "Format",
		Title:    "Format CPR Number",
		Category: "formatting",
		Description: `Format a CPR number in the canonical Danish convention DDMMYY-SSSS.

USE WHEN: User asks "format this CPR", "add the hyphen", or output must follow the national convention.

NOT FOR: Deciding validity (use cpr_validate; this tool only requires the input to normalize to 10 digits).

PARAMETERS:
- cpr: Candidate number, 10 digits with optional hyphens (required)

RETURNS: The DDMMYY-SSSS form together with the full validation verdict for the same input.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}
