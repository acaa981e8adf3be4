package check

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/ktsuji/procheck/pkg/procheck"
)

// sequenceStats extracts integers from file names using a regexp with one
// capture group and summarizes them. Returns nil when no name matches,
// so callers can omit the block entirely.
func sequenceStats(names []string, numberPattern string) *procheck.SequenceStats {
	re, err := regexp.Compile(numberPattern)
	if err != nil {
		return nil
	}

	seen := make(map[int]struct{})
	for _, name := range names {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		seen[n] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}

	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	stats := &procheck.SequenceStats{
		Min:    numbers[0],
		Max:    numbers[len(numbers)-1],
		Unique: len(numbers),
	}

	// Gaps inside the observed range point at lost or unfinished steps.
	for expected, i := stats.Min, 0; expected <= stats.Max; expected++ {
		if numbers[i] == expected {
			i++
			continue
		}
		stats.Missing = append(stats.Missing, expected)
	}

	return stats
}
