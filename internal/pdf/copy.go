package pdf

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// CopyPages writes a new PDF at outPath containing the given physical pages
// (0-based indices) of inPath, in the order given. Duplicate indices are
// copied once each time they appear.
func CopyPages(inPath, outPath string, pages []int) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to copy")
	}

	// pdfcpu selects pages by 1-based number strings.
	selected := make([]string, len(pages))
	for i, idx := range pages {
		selected[i] = strconv.Itoa(idx + 1)
	}

	if err := api.CollectFile(inPath, outPath, selected, nil); err != nil {
		return fmt.Errorf("failed to copy pages: %w", err)
	}
	return nil
}
