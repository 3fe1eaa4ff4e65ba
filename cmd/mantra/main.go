// Package main is the entry point for the mantra CLI.
package main

import (
	"os"

	"github.com/JesusPetro/mantra/cmd"
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/runstore"
)

func main() {
	defer runstore.CloseStore()

	err := cmd.Execute()

	// Stop profiling before handling command errors so profiles are
	// flushed even on failure.
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		contract.LogWarn("Command failed", err)
		runstore.CloseStore()
		os.Exit(1)
	}
}
