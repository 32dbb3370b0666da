package fypml

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	doc, err := chain.MigrateToCurrent(doc, logger)
//	if errors.Is(err, fypml.ErrVersionMismatch) {
//	    // Handle a document whose version does not match the engine's
//	    // expected predecessor version
//	}
var (
	// ErrUsage indicates the command line was misused: missing or surplus
	// arguments, or an unrecognized flag.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFypML indicates the input is not a recognizable FypML document:
	// the processing instruction is missing where required, malformed, or
	// reports a schema version outside the supported range.
	ErrNotFypML = errors.New("not a FypML document")

	// ErrVersionMismatch indicates a single-step migration was invoked with a
	// document whose schema version is not exactly one less than the target.
	ErrVersionMismatch = errors.New("schema version mismatch")

	// ErrBrokenChain indicates no schema object exists for an intermediate
	// version number. This means the deployment is broken; it must never
	// happen with a well-formed version chain.
	ErrBrokenChain = errors.New("broken schema version chain")

	// ErrUnsupportedTag indicates an element tag not recognized by the bound
	// schema version.
	ErrUnsupportedTag = errors.New("unsupported element tag")

	// ErrUnsupportedAttribute indicates an attribute not permitted for an
	// element under the bound schema version.
	ErrUnsupportedAttribute = errors.New("unsupported attribute")

	// ErrBadDocument indicates a document that failed structural or
	// attribute-value validation against its bound schema version.
	ErrBadDocument = errors.New("document failed validation")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFypML):
		return ExitNotFypML
	case errors.Is(err, ErrVersionMismatch):
		return ExitMigrationFailed
	case errors.Is(err, ErrBrokenChain):
		return ExitMigrationFailed
	case errors.Is(err, ErrUnsupportedTag):
		return ExitMigrationFailed
	case errors.Is(err, ErrUnsupportedAttribute):
		return ExitMigrationFailed
	case errors.Is(err, ErrBadDocument):
		return ExitValidationFailed
	}

	// Check for common XML decoding error patterns surfaced by encoding/xml
	errStr := err.Error()
	if strings.Contains(errStr, "XML syntax error") ||
		strings.Contains(errStr, "unexpected EOF") {
		return ExitNotFypML
	}

	// Flag and command parse errors surface as plain errors from the CLI
	// framework; classify them by message.
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "flag needs an argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
