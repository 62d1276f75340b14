// Package logging provides logging utilities for envctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("creating environment", "name", name, "python", version)
//	logging.Warn("tos accept failed", "channel", url, "err", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Creating environment %s...", name)
//	logging.UserSuccess("Environment %s ready", name)
//	logging.UserWarning("%s not found, skipping dependency install", manifest)
//	logging.UserError("Failed to create environment: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
