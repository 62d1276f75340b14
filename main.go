package main

import (
	"os"

	"github.com/phoneagent/envctl/cmd"
	"github.com/phoneagent/envctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
