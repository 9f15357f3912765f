package main

// Exit codes shared across cite commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid paths)
	ExitDataError   = 3 // Data error (malformed input, validation failure)
)

// Import exit codes. Style import is the one loud-failure surface: a
// rejected definition must name what was wrong rather than degrade.
const (
	ExitImportInvalid     = 3 // Definition failed validation
	ExitImportUnsupported = 4 // Unsupported source format (CSL/XML)
	ExitImportNetwork     = 5 // URL fetch failed
)
