package curriculum

import (
	"fmt"
	"sort"
)

// Stage is a named set of drill values of comparable difficulty.
type Stage struct {
	Name   string
	Values []int64
}

// Stages returns the built-in drill progression, ordered easiest first.
// Each stage exercises one structural feature of the numeral system: bare
// digits, teens, compound decades, then one multiplier tier at a time up
// to the 10^12 boundary.
func Stages() []Stage {
	return []Stage{
		{Name: "digits", Values: sequence(0, 9, 1)},
		{Name: "teens", Values: sequence(10, 20, 1)},
		{Name: "decades", Values: sequence(10, 100, 10)},
		{Name: "tens", Values: sequence(21, 99, 3)},
		{Name: "hundreds", Values: sequence(100, 1000, 100)},
		{Name: "thousands", Values: sequence(1000, 10000, 1000)},
		{Name: "mixed", Values: []int64{
			105, 340, 512, 999, 1001, 2050, 5006, 8888, 12345, 54321,
		}},
		{Name: "large", Values: []int64{
			10000, 100000, 1000000, 10000000, 100000000,
			120000000, 1000000000, 1000000000000,
		}},
	}
}

// StageByName returns the built-in stage with the given name.
func StageByName(name string) (Stage, error) {
	for _, s := range Stages() {
		if s.Name == name {
			return s, nil
		}
	}
	return Stage{}, fmt.Errorf("unknown stage %q (available: %v)", name, StageNames())
}

// StageNames lists the built-in stage names in progression order.
func StageNames() []string {
	stages := Stages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name
	}
	return names
}

// Merge combines stages into one deduplicated, ascending value list.
func Merge(stages ...Stage) []int64 {
	seen := make(map[int64]bool)
	var values []int64
	for _, s := range stages {
		for _, v := range s.Values {
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

func sequence(from, to, step int64) []int64 {
	var values []int64
	for v := from; v <= to; v += step {
		values = append(values, v)
	}
	return values
}
