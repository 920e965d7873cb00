// Countdown - live countdown timers in the terminal
//
// Copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.

package main

import (
	"os"

	"github.com/manav03panchal/countdown/cmd"
	"github.com/manav03panchal/countdown/internal/runtime"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(runtime.ExitCode(err))
	}
}
