package pagenum

import (
	"regexp"
	"strconv"
	"strings"
)

// ScanOptions bounds the detection scan.
type ScanOptions struct {
	// HeaderLines is how many leading lines of a page are scanned. Page
	// numbers sit near the top of the page in headers; scanning further
	// down picks up body-text numerals.
	HeaderLines int

	// MaxNumber is the largest printed number considered plausible.
	// Matches above it (years, ISBN fragments, table data) are rejected.
	MaxNumber int
}

// DefaultScanOptions returns the scan defaults: first 5 lines, numbers
// accepted in [1, 9999].
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		HeaderLines: 5,
		MaxNumber:   9999,
	}
}

// pagePattern is one way a printed page number may appear on a line.
// Patterns are tried strictest-first so that labeled forms win over the
// bare-numeral fallback.
type pagePattern struct {
	name  string
	re    *regexp.Regexp
	group int
}

var pagePatterns = []pagePattern{
	// The whole line is a number.
	{name: "bare_line", re: regexp.MustCompile(`^\s*(\d+)\s*$`), group: 1},
	// Number between decorative dashes, e.g. "- 12 -".
	{name: "dashed", re: regexp.MustCompile(`^\s*-*\s*(\d+)\s*-*\s*$`), group: 1},
	// "Page 12".
	{name: "page_word", re: regexp.MustCompile(`(?i)\bpage\s+(\d+)\b`), group: 1},
	// "P 12" or "P. 12".
	{name: "page_abbrev", re: regexp.MustCompile(`(?i)\bp\.?\s*(\d+)\b`), group: 1},
	// Fallback: a standalone short numeral anywhere in the line.
	{name: "standalone", re: regexp.MustCompile(`(?:^|\s)(\d{1,4})(?:\s|$)`), group: 1},
}

// Detect finds a printed page number in a single page's text. It scans the
// first opts.HeaderLines lines and tries each pattern in priority order per
// line; the first accepted match wins. Numbers outside [1, opts.MaxNumber]
// are rejected as implausible and scanning continues. Returns false when no
// line yields an accepted match.
func Detect(text string, opts ScanOptions) (int, bool) {
	if opts.HeaderLines <= 0 || opts.MaxNumber <= 0 {
		opts = DefaultScanOptions()
	}

	lines := strings.Split(text, "\n")
	if len(lines) > opts.HeaderLines {
		lines = lines[:opts.HeaderLines]
	}

	for _, line := range lines {
		for _, p := range pagePatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			num, err := strconv.Atoi(m[p.group])
			if err != nil {
				continue
			}
			if num < 1 || num > opts.MaxNumber {
				continue
			}
			return num, true
		}
	}

	return 0, false
}
