package tagging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rozenlab/glosscard/internal/domain"
)

func TestFirstPage(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"77", 77, true},
		{"77, 102", 77, true},
		{"  102", 102, true},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := FirstPage(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FirstPage(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTagForPage(t *testing.T) {
	ranges := domain.TagRanges{
		{Start: 1, End: 50, Tag: "第一章"},
		{Start: 51, End: 200, Tag: "第二章"},
		{Start: 40, End: 60, Tag: "重叠章"},
	}

	tests := []struct {
		name       string
		pageNumber string
		want       string
	}{
		{"inside first range", "10", "第一章"},
		{"boundary end of first range", "50", "第一章"},
		{"boundary start of second range", "51", "第二章"},
		{"overlap resolved by list order", "45", "第一章"},
		{"outside all ranges", "201", domain.UnknownChapter},
		{"unparseable page number", "n/a", domain.UnknownChapter},
		{"first digit group decides", "50, 300", "第一章"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagForPage(tt.pageNumber, ranges); got != tt.want {
				t.Errorf("TagForPage(%q) = %q, want %q", tt.pageNumber, got, tt.want)
			}
		})
	}
}

func TestTagForPageNoRanges(t *testing.T) {
	if got := TagForPage("42", nil); got != domain.UnknownChapter {
		t.Errorf("TagForPage with no ranges = %q, want %q", got, domain.UnknownChapter)
	}
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveMediaPriority(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "term-0042.png")
	touch(t, dir, "term_0042.png")
	touch(t, dir, "term-042.png")

	got := ResolveMedia("42", dir, "term")
	want := `<img src="term-0042.png">`
	if got != want {
		t.Errorf("ResolveMedia = %q, want %q", got, want)
	}
}

func TestResolveMediaThreeDigitFallback(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "term-042.png")

	got := ResolveMedia("42", dir, "term")
	want := `<img src="term-042.png">`
	if got != want {
		t.Errorf("ResolveMedia = %q, want %q", got, want)
	}

	// The short forms are only probed below 1000.
	touch(t, dir, "term-123.png")
	if got := ResolveMedia("1234", dir, "term"); got != "" {
		t.Errorf("ResolveMedia for large page = %q, want empty", got)
	}
}

func TestResolveMediaMisses(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "term-0042.png")

	tests := []struct {
		name       string
		pageNumber string
		dir        string
	}{
		{"no digits in page number", "abc", dir},
		{"empty directory path", "42", ""},
		{"missing directory", "42", filepath.Join(dir, "nope")},
		{"no matching file", "43", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMedia(tt.pageNumber, tt.dir, "term"); got != "" {
				t.Errorf("ResolveMedia = %q, want empty", got)
			}
		})
	}
}
