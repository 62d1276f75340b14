// Package bootstrap orchestrates creation of the project's conda
// environment.
//
// The procedure is strictly sequential: verify conda is reachable,
// resolve a pre-existing target environment per the configured
// on-existing policy, create the environment with the pinned Python,
// remediate a Terms of Service rejection by accepting the configured
// channels and retrying exactly once, echo the interpreter version,
// and install dependencies from the manifest plus an editable install
// of the project. The first fatal error stops the run; there is no
// rollback of completed steps.
package bootstrap
