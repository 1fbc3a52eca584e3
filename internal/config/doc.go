// Package config defines the configuration model for ocsdev and loads it
// by layering three sources, later sources overriding earlier ones:
//
//  1. Built-in defaults (DefaultConfig)
//  2. User configuration (~/.config/ocsdev/config.yaml)
//  3. Project configuration (.ocsdev/config.yaml in the working directory)
//
// Both files are optional. The configuration names the external binaries
// the pipeline invokes, the build output layout, coverage thresholds for
// the test runner, the clean patterns, and the dev tools installed by the
// install subcommand. A minimal project file looks like:
//
//	toolchain:
//	  lintBinary: golangci-lint
//	test:
//	  coverageThreshold: 90
//	tools:
//	  - name: golangci-lint
//	    module: github.com/golangci/golangci-lint/cmd/golangci-lint@latest
package config
