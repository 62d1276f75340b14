// Package conda wraps the conda command-line tool.
//
// All interaction happens at the argv level through a
// system.CommandExecutor; conda remains the sole owner of the
// environment registry and installed packages. Client covers the
// subcommands the bootstrap needs (version query, environment
// listing, creation, removal, Terms of Service acceptance), and Env
// is an explicit activation context that runs interpreter and pip
// commands inside a named environment via `conda run`.
package conda
