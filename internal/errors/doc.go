// Package errors provides typed errors with exit codes for envctl.
//
// # Error Types
//
// CtlError is the base error type that wraps an error with an exit code:
//
//	type CtlError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess       = 0  // Success (including operator-declined recreate)
//	ExitGeneralError  = 1  // General/unknown errors
//	ExitCondaMissing  = 2  // conda executable not on PATH
//	ExitCreateFailed  = 3  // Environment creation failed
//	ExitInstallFailed = 4  // Dependency install failed
//	ExitConfigError   = 5  // Configuration error
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.CondaMissing(err)
//	errors.CreateFailed("PythonAgent", output, err)
//	errors.InstallFailed("requirements.txt", err)
//	errors.ConfigError("failed to parse config", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
