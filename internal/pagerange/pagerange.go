// Package pagerange parses user-supplied page range expressions like
// "2-5, 17-20, 25" into sorted page number sets.
package pagerange

import (
	"sort"
	"strconv"
	"strings"
)

// Parse splits a range expression into the sorted unique set of page numbers
// it names. Tokens are comma-separated and each is either a single number or
// an inclusive "a-b" range. Malformed or inverted tokens are skipped rather
// than failing the whole expression; they are returned in invalid so the
// caller can warn about each one.
func Parse(expr string) (pages []int, invalid []string) {
	seen := make(map[int]struct{})

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			start, end, ok := parseRange(part)
			if !ok || start > end {
				invalid = append(invalid, part)
				continue
			}
			for n := start; n <= end; n++ {
				seen[n] = struct{}{}
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			invalid = append(invalid, part)
			continue
		}
		seen[n] = struct{}{}
	}

	pages = make([]int, 0, len(seen))
	for n := range seen {
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return pages, invalid
}

func parseRange(part string) (start, end int, ok bool) {
	bounds := strings.SplitN(part, "-", 2)
	if len(bounds) != 2 {
		return 0, 0, false
	}

	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}
