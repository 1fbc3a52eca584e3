// Package main is the entry point for the ocsdev build tool.
package main

import (
	"os"

	"ocsdev/cmd"
	"ocsdev/pkg/logging"
)

// Set by goreleaser ldflags.
var version = "dev"

func main() {
	logging.Init(logging.LevelInfo, os.Stderr)
	cmd.SetVersion(version)
	cmd.Execute()
}
