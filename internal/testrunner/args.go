package testrunner

import (
	"runtime"
	"strconv"

	"ocsdev/internal/config"
)

// Defaults are the config-derived values argument construction needs.
type Defaults struct {
	Packages          string
	CoverageThreshold int
	CoverageProfile   string
	CoverageHTML      string
}

// DefaultsFromConfig extracts argument-construction defaults from the
// loaded configuration.
func DefaultsFromConfig(cfg config.Config) Defaults {
	return Defaults{
		Packages:          cfg.Test.Packages,
		CoverageThreshold: cfg.Test.CoverageThreshold,
		CoverageProfile:   cfg.Test.CoverageProfile,
		CoverageHTML:      cfg.Test.CoverageHTML,
	}
}

// Build deterministically constructs the go-test invocation for the
// selected mode. Quick and integration modes are fixed invocations;
// the coverage and default modes assemble fragments from the
// independent flags. Explicit selectors come after all flags, and
// passthrough arguments always come last, unmodified.
func Build(o Options, d Defaults) Invocation {
	switch o.Mode() {
	case ModeQuick:
		return Invocation{Args: append([]string{"test", "-short", "-v"}, d.Packages)}
	case ModeIntegration:
		return Invocation{Args: append([]string{"test", "-tags=integration", "-run", "Integration", "-v"}, d.Packages)}
	case ModeCoverage:
		inv := Invocation{
			CoverProfile: d.CoverageProfile,
			CoverHTML:    d.CoverageHTML,
			FailUnder:    o.CoverageFail,
		}
		if inv.FailUnder == 0 {
			inv.FailUnder = d.CoverageThreshold
		}
		inv.Args = []string{"test", "-covermode=atomic", "-coverprofile=" + inv.CoverProfile}
		inv.Args = appendCommonFlags(inv.Args, o)
		inv.Args = appendSelectors(inv.Args, o, d)
		return inv
	default:
		inv := Invocation{Args: []string{"test"}}
		if o.Coverage {
			// Coverage fragments for callers that bypass mode selection.
			inv.CoverProfile = d.CoverageProfile
			inv.CoverHTML = d.CoverageHTML
			inv.FailUnder = o.CoverageFail
			if inv.FailUnder == 0 {
				inv.FailUnder = d.CoverageThreshold
			}
			inv.Args = append(inv.Args, "-covermode=atomic", "-coverprofile="+inv.CoverProfile)
		}
		inv.Args = appendCommonFlags(inv.Args, o)
		inv.Args = appendSelectors(inv.Args, o, d)
		return inv
	}
}

func appendCommonFlags(args []string, o Options) []string {
	if o.Parallel != "" {
		args = append(args, "-parallel", resolveParallel(o.Parallel))
	}
	if o.Verbose {
		args = append(args, "-v")
	}
	if o.RunFilter != "" {
		args = append(args, "-run", o.RunFilter)
	}
	return args
}

func appendSelectors(args []string, o Options, d Defaults) []string {
	if len(o.Tests) > 0 {
		args = append(args, o.Tests...)
	} else {
		args = append(args, d.Packages)
	}
	return append(args, o.Passthrough...)
}

// resolveParallel maps the automatic-detection sentinel to the local
// CPU count; explicit counts pass through unchanged.
func resolveParallel(value string) string {
	if value == "auto" {
		return strconv.Itoa(runtime.NumCPU())
	}
	return value
}
