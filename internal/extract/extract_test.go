package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jackzampolin/offprint/internal/pagenum"
)

func TestSelectPages(t *testing.T) {
	t.Run("printed numbers resolve through the map", func(t *testing.T) {
		m := pagenum.Map{0: 1, 1: 2, 2: 3, 3: 4, 4: 5, 9: 10}

		selected, missing := selectPages(m, []int{1, 5, 10}, 10, false)
		if !reflect.DeepEqual(selected, []int{0, 4, 9}) {
			t.Errorf("selected = %v, want [0 4 9]", selected)
		}
		if missing != nil {
			t.Errorf("missing = %v, want none", missing)
		}
	})

	t.Run("duplicate printed numbers all included", func(t *testing.T) {
		// Two physical pages both printed "7" (e.g. a numbering restart).
		m := pagenum.Map{2: 7, 8: 7}

		selected, missing := selectPages(m, []int{7}, 10, false)
		if !reflect.DeepEqual(selected, []int{2, 8}) {
			t.Errorf("selected = %v, want [2 8]", selected)
		}
		if missing != nil {
			t.Errorf("missing = %v, want none", missing)
		}
	})

	t.Run("unmatched printed numbers reported", func(t *testing.T) {
		m := pagenum.Map{0: 5}

		selected, missing := selectPages(m, []int{5, 99}, 10, false)
		if !reflect.DeepEqual(selected, []int{0}) {
			t.Errorf("selected = %v, want [0]", selected)
		}
		if !reflect.DeepEqual(missing, []int{99}) {
			t.Errorf("missing = %v, want [99]", missing)
		}
	})

	t.Run("physical mode ignores the map", func(t *testing.T) {
		m := pagenum.Map{0: 100}

		selected, missing := selectPages(m, []int{1, 3, 11}, 10, true)
		if !reflect.DeepEqual(selected, []int{0, 2}) {
			t.Errorf("selected = %v, want [0 2]", selected)
		}
		if !reflect.DeepEqual(missing, []int{11}) {
			t.Errorf("missing = %v, want [11]", missing)
		}
	})
}

func TestExtractErrors(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	t.Run("empty range expression", func(t *testing.T) {
		_, err := Extract(ctx, Request{
			InputPath:  "in.pdf",
			OutputPath: "out.pdf",
			Pages:      "x, y-z",
			Logger:     logger,
		})
		if err == nil {
			t.Fatal("expected error for range expression with no valid pages")
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := Extract(ctx, Request{
			InputPath:  filepath.Join(t.TempDir(), "missing.pdf"),
			OutputPath: "out.pdf",
			Pages:      "1-3",
			Logger:     logger,
		})
		if err == nil {
			t.Fatal("expected error for missing input")
		}
	})
}
