// Package extract assembles a new PDF from a subset of an input PDF's
// pages, selected by the page numbers printed on the pages rather than
// their physical position.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jackzampolin/offprint/internal/pagenum"
	"github.com/jackzampolin/offprint/internal/pagerange"
	"github.com/jackzampolin/offprint/internal/pdf"
)

// Request contains the parameters for a page extraction run.
type Request struct {
	InputPath  string // Source PDF
	OutputPath string // Destination PDF
	Pages      string // Range expression, e.g. "2-5, 17-20, 25"
	Physical   bool   // Interpret pages as physical positions, skipping detection
	Force      bool   // Overwrite an existing output file

	ScanOptions        pagenum.ScanOptions
	InterpolateOptions pagenum.InterpolateOptions

	Logger *slog.Logger // Optional logger for progress updates
}

// Result describes a completed extraction.
type Result struct {
	RunID      string `json:"run_id" yaml:"run_id"`
	InputPath  string `json:"input" yaml:"input"`
	OutputPath string `json:"output" yaml:"output"`
	TotalPages int    `json:"total_pages" yaml:"total_pages"`
	Copied     int    `json:"copied" yaml:"copied"`
	Missing    []int  `json:"missing,omitempty" yaml:"missing,omitempty"` // Requested numbers with no matching page
	Physical   bool   `json:"physical" yaml:"physical"`                   // Whether selection used physical positions
}

// Extract copies the requested pages of the input PDF into a new document.
// Requested numbers are printed page numbers unless req.Physical is set or
// no printed numbers could be detected anywhere in the document, in which
// case selection falls back to physical positions. The run succeeds as long
// as at least one requested page was found; numbers with no match are
// reported in the result.
func Extract(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}
	runID := uuid.New().String()
	log = log.With("run_id", runID)

	requested, invalid := pagerange.Parse(req.Pages)
	for _, tok := range invalid {
		log.Warn("skipping invalid page range token", "token", tok)
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("no valid pages in range expression %q", req.Pages)
	}

	if _, err := os.Stat(req.InputPath); err != nil {
		return nil, fmt.Errorf("input PDF not found: %s", req.InputPath)
	}
	if _, err := os.Stat(req.OutputPath); err == nil && !req.Force {
		return nil, fmt.Errorf("output file %s already exists (use --force to overwrite)", req.OutputPath)
	}

	doc, err := pdf.Open(req.InputPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	total := doc.PageCount()
	log.Info("starting extraction", "input", req.InputPath, "pages", total, "requested", requested)

	physical := req.Physical
	var numbers pagenum.Map
	if !physical {
		detected := pagenum.Scan(ctx, total, doc.Text, req.ScanOptions, log)
		if len(detected) == 0 {
			log.Warn("no printed page numbers detected, falling back to physical positions")
			physical = true
		} else {
			numbers = pagenum.Interpolate(detected, total, req.InterpolateOptions)
			log.Debug("page number map built", "detected", len(detected), "mapped", len(numbers))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selected, missing := selectPages(numbers, requested, total, physical)
	for _, n := range missing {
		log.Warn("no page found for requested number", "number", n, "physical", physical)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("none of the requested pages exist in %s", req.InputPath)
	}

	if err := pdf.CopyPages(req.InputPath, req.OutputPath, selected); err != nil {
		return nil, err
	}

	log.Info("extraction complete", "output", req.OutputPath, "copied", len(selected), "missing", len(missing))

	return &Result{
		RunID:      runID,
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		TotalPages: total,
		Copied:     len(selected),
		Missing:    missing,
		Physical:   physical,
	}, nil
}

// selectPages resolves requested page numbers to physical indices.
// In printed mode every physical page mapped to a requested number is
// included, duplicates and all; in physical mode the numbers are 1-based
// positions. Requested numbers with no match are returned in missing.
func selectPages(m pagenum.Map, requested []int, total int, physical bool) (selected, missing []int) {
	for _, n := range requested {
		if physical {
			if n < 1 || n > total {
				missing = append(missing, n)
				continue
			}
			selected = append(selected, n-1)
			continue
		}

		idxs := m.Pages(n)
		if len(idxs) == 0 {
			missing = append(missing, n)
			continue
		}
		selected = append(selected, idxs...)
	}
	return selected, missing
}
