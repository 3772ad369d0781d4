package curriculum

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadValuesFile reads drill values from a file, one entry per line.
// Supported formats:
// - A single value: "54"
// - An inclusive range: "100-120"
// Blank lines and lines starting with '#' are skipped.
func ReadValuesFile(filename string) ([]int64, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}

	var values []int64
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lineValues, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		values = append(values, lineValues...)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no values in %s", filename)
	}
	return values, nil
}

func parseLine(line string) ([]int64, error) {
	// A range like "100-120"; a leading '-' is a negative value instead.
	if idx := strings.Index(line[1:], "-"); idx >= 0 {
		lo, err := strconv.ParseInt(strings.TrimSpace(line[:idx+1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range start: %q", line)
		}
		hi, err := strconv.ParseInt(strings.TrimSpace(line[idx+2:]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range end: %q", line)
		}
		if hi < lo {
			return nil, fmt.Errorf("range end below start: %q", line)
		}
		if hi-lo > 10000 {
			return nil, fmt.Errorf("range too large (max 10000 values): %q", line)
		}
		return sequence(lo, hi, 1), nil
	}

	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid value: %q", line)
	}
	return []int64{v}, nil
}
