package pagesblog

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/eringen/pagesblog/content"
)

func TestRenderCardSize(t *testing.T) {
	var buf bytes.Buffer
	a := content.Builtin()[1]
	if err := RenderCard(&buf, a, "My Awesome Blog"); err != nil {
		t.Fatalf("RenderCard failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode card: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 630 {
		t.Errorf("card is %dx%d, want 1200x630", b.Dx(), b.Dy())
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		input    string
		cols     int
		maxLines int
		expected []string
	}{
		{"Deploying a React App to Cloudflare Pages", 30, 3, []string{"Deploying a React App to", "Cloudflare Pages"}},
		{"short", 30, 3, []string{"short"}},
		{"aaaa bbbb cccc dddd", 9, 1, []string{"aaaa b..."}},
		{"aaaa bbbb cccc dddd", 9, 2, []string{"aaaa bbbb", "cccc dddd"}},
		{"", 30, 3, nil},
	}
	for _, tt := range tests {
		got := wrapText(tt.input, tt.cols, tt.maxLines)
		if strings.Join(got, "|") != strings.Join(tt.expected, "|") {
			t.Errorf("wrapText(%q, %d, %d) = %q, want %q", tt.input, tt.cols, tt.maxLines, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Errorf("truncate = %q, want %q", got, "abc...")
	}
	if got := truncate("abc", 6); got != "abc" {
		t.Errorf("truncate = %q, want %q", got, "abc")
	}
}
