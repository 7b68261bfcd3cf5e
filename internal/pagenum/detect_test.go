package pagenum

import (
	"strconv"
	"testing"
)

func TestDetect(t *testing.T) {
	opts := DefaultScanOptions()

	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{name: "bare number line", text: "42\nChapter Three", want: 42, ok: true},
		{name: "bare number with whitespace", text: "   7  \nbody text", want: 7, ok: true},
		{name: "dashed number", text: "- 12 -\nbody", want: 12, ok: true},
		{name: "page word", text: "Page 128\nIntroduction", want: 128, ok: true},
		{name: "page word lowercase", text: "page 9", want: 9, ok: true},
		{name: "abbreviated with period", text: "P. 33", want: 33, ok: true},
		{name: "abbreviated without period", text: "P 33", want: 33, ok: true},
		{name: "standalone fallback", text: "Annual Report 57 Westfield", want: 57, ok: true},
		{name: "no number at all", text: "Contents\nPreface\nAcknowledgements", ok: false},
		{name: "empty text", text: "", ok: false},
		{name: "five digit number rejected", text: "10235", ok: false},
		{name: "zero rejected", text: "0", ok: false},
		{name: "number past header lines ignored", text: "a\nb\nc\nd\ne\n99", ok: false},
		{name: "number on fifth line found", text: "a\nb\nc\nd\n99", want: 99, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.text, opts)
			if ok != tt.ok {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Detect(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectPriority(t *testing.T) {
	opts := DefaultScanOptions()

	t.Run("first matching line wins", func(t *testing.T) {
		got, ok := Detect("14\n15\n16", opts)
		if !ok || got != 14 {
			t.Errorf("got %d ok=%v, want 14", got, ok)
		}
	})

	t.Run("strict pattern beats fallback on same line", func(t *testing.T) {
		// "Page 3" should win over the bare "1914" via the labeled form.
		got, ok := Detect("Page 3 of the 1914 census", opts)
		if !ok || got != 3 {
			t.Errorf("got %d ok=%v, want 3", got, ok)
		}
	})

	t.Run("out of range match falls through to later pattern", func(t *testing.T) {
		// The bare-line pattern matches 99999 but rejects it; the scan
		// continues to the next line instead of giving up.
		got, ok := Detect("99999\n- 41 -", opts)
		if !ok || got != 41 {
			t.Errorf("got %d ok=%v, want 41", got, ok)
		}
	})
}

func TestDetectBareNumerals(t *testing.T) {
	// Any lone in-range numeral within the scanned prefix must be detected
	// exactly.
	opts := DefaultScanOptions()
	for _, n := range []int{1, 2, 9, 10, 99, 100, 999, 1000, 9999} {
		text := "\n" + strconv.Itoa(n) + "\nsome body text"
		got, ok := Detect(text, opts)
		if !ok || got != n {
			t.Errorf("Detect(bare %d) = %d ok=%v", n, got, ok)
		}
	}
}
