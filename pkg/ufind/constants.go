package ufind

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration, operator or size expression
	ExitPathNotFound = 11 // Search path does not name a directory
	ExitInvalidTree  = 12 // Tree document or snapshot rejected
)

const (
	// PathSeparator separates segments in tree paths. Paths always use it,
	// regardless of the host operating system.
	PathSeparator = "/"

	// RootPath is the path of the root directory.
	RootPath = "/"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "ufind.yaml"

	// DefaultEnvFile is the optional dotenv file consulted for UFIND_* overrides.
	DefaultEnvFile = ".env"

	// EnvPrefix prefixes every environment variable ufind reads.
	EnvPrefix = "UFIND_"
)
