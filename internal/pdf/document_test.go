package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("this is plain text, not a PDF"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}

func TestCopyPagesEmptySelection(t *testing.T) {
	err := CopyPages("in.pdf", "out.pdf", nil)
	if err == nil {
		t.Fatal("expected error for empty page selection")
	}
}
