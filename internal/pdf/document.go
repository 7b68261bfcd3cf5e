// Package pdf wraps the PDF libraries behind the small surface the rest of
// the tool needs: page count, per-page text, and copying pages into a new
// document.
package pdf

import (
	"fmt"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Document is an open PDF positioned for per-page text extraction.
type Document struct {
	path      string
	doc       *fitz.Document
	pageCount int
}

// Open opens a PDF for reading. The file is validated up front with pdfcpu
// (which also performs the later page copy) so unreadable inputs fail here
// rather than after a full text scan.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	pageCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for text extraction: %w", err)
	}

	return &Document{
		path:      path,
		doc:       doc,
		pageCount: pageCount,
	}, nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of physical pages.
func (d *Document) PageCount() int {
	return d.pageCount
}

// Text extracts the text of the page at the given physical index (0-based).
func (d *Document) Text(idx int) (string, error) {
	if idx < 0 || idx >= d.pageCount {
		return "", fmt.Errorf("page index %d out of range (document has %d pages)", idx, d.pageCount)
	}
	// go-fitz may see fewer pages than pdfcpu on damaged files; treat that
	// as an extraction failure for the page, not a fatal error.
	if idx >= d.doc.NumPage() {
		return "", fmt.Errorf("page %d not readable for text extraction", idx+1)
	}
	return d.doc.Text(idx)
}

// Close releases the underlying document.
func (d *Document) Close() error {
	return d.doc.Close()
}
