// Package pagenum detects printed page numbers in extracted page text and
// interpolates numbers for pages where detection failed.
//
// Printed numbers are the human-readable numbers on the page itself, which
// rarely line up with physical position: front matter is often unnumbered,
// separator pages break the sequence, and numbering may restart. The package
// builds a map from physical page index (0-based) to printed number in two
// passes: a per-page detection scan, then gap interpolation anchored on the
// detected entries.
package pagenum

import (
	"context"
	"log/slog"
	"sort"
)

// Map associates physical page indices (0-based) with printed page numbers.
// Printed numbers are not required to be unique, monotonic, or contiguous.
type Map map[int]int

// TextFunc returns the extractable text of the page at the given physical
// index. An error means text could not be extracted for that page.
type TextFunc func(idx int) (string, error)

// Scan detects printed page numbers across all pages of a document.
// Pages whose text cannot be extracted are logged and skipped; the scan
// never fails for an individual page. An empty result means no printed
// numbers were found anywhere, which callers should treat as "fall back to
// physical positions".
func Scan(ctx context.Context, pageCount int, text TextFunc, opts ScanOptions, logger *slog.Logger) Map {
	if logger == nil {
		logger = slog.Default()
	}

	m := make(Map)
	for idx := 0; idx < pageCount; idx++ {
		if ctx.Err() != nil {
			return m
		}

		pageText, err := text(idx)
		if err != nil {
			logger.Warn("failed to extract page text", "page", idx+1, "error", err)
			continue
		}

		num, ok := Detect(pageText, opts)
		if !ok {
			continue
		}
		logger.Debug("detected printed page number", "page", idx+1, "printed", num)
		m[idx] = num
	}

	logger.Info("page number scan complete", "pages", pageCount, "detected", len(m))
	return m
}

// Pages returns all physical indices mapped to the given printed number,
// in physical order. Duplicates are expected in real documents and all
// matches are returned.
func (m Map) Pages(printed int) []int {
	var idxs []int
	for idx, num := range m {
		if num == printed {
			idxs = append(idxs, idx)
		}
	}
	sort.Ints(idxs)
	return idxs
}

// Anchors returns the mapped physical indices in ascending order.
func (m Map) Anchors() []int {
	idxs := make([]int, 0, len(m))
	for idx := range m {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	return idxs
}

// Clone returns a copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for idx, num := range m {
		out[idx] = num
	}
	return out
}
