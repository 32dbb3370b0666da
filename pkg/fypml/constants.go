package fypml

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or parameters
	ExitNotFypML         = 20 // Input not recognized as a FypML document
	ExitMigrationFailed  = 21 // Version mismatch or broken migration chain
	ExitValidationFailed = 22 // Document failed schema validation
)

const (
	// FileExtension is the file extension used by persisted FypML documents.
	// A file is recognized as a figure document only when it carries this
	// extension and its processing instruction reports a schema version in
	// [1, CurrentSchemaVersion].
	FileExtension = ".fyp"

	// RootTag is the tag of every FypML document's root element, and the
	// target token of the document processing instruction.
	RootTag = "fyp"

	// AppVersion is the application version recorded in the processing
	// instruction of every document written by this build.
	AppVersion = "5.4.1"

	// MaxErrorPreviewLength is the maximum number of characters shown in
	// error messages when previewing offending attribute values. This
	// prevents overwhelming the console with pathological inputs.
	MaxErrorPreviewLength = 200
)
