package testrunner

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTotalCoverage extracts the total statement coverage percent from
// `go tool cover -func` output. The total line looks like:
//
//	total:	(statements)	81.4%
func ParseTotalCoverage(funcOutput string) (float64, error) {
	for _, line := range strings.Split(funcOutput, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "total:" {
			continue
		}
		raw := strings.TrimSuffix(fields[len(fields)-1], "%")
		percent, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed total coverage %q: %w", fields[len(fields)-1], err)
		}
		return percent, nil
	}
	return 0, fmt.Errorf("no total line in coverage output")
}

// CheckThreshold fails when total coverage is below the minimum percent.
// A zero threshold disables the check.
func CheckThreshold(percent float64, failUnder int) error {
	if failUnder <= 0 {
		return nil
	}
	if percent < float64(failUnder) {
		return fmt.Errorf("total coverage %.1f%% is below the required %d%%", percent, failUnder)
	}
	return nil
}
