// Package config provides configuration types and loading for envctl.
//
// # Configuration File
//
// Settings are read from envctl.toml in the project directory. The file
// is optional; every field has a default matching the PythonAgent
// bootstrap:
//
//	[environment]
//	name = "PythonAgent"
//	python = "3.11"
//	on_existing = "prompt"   # prompt | recreate | reuse | fail
//
//	[channels]
//	tos = [
//	    "https://repo.anaconda.com/pkgs/main",
//	    "https://repo.anaconda.com/pkgs/r",
//	]
//
//	[install]
//	manifest = "requirements.txt"
//	editable = true
//	pip_args = ""
//
// # Project Directory
//
// The directory containing the config file (or the working directory
// when no file exists) becomes the project directory: the dependency
// manifest is looked up there, and the editable install targets it.
//
// # Validation
//
// Config implements Validate() to check the environment name, the
// Python version pin, the on_existing policy, and the channel list.
// Load validates automatically after parsing.
package config
