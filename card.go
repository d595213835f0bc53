package pagesblog

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/eringen/pagesblog/content"
)

// Social cards are drawn on a small canvas with the 7x13 bitmap face and
// scaled up with nearest-neighbour so the glyphs stay crisp.
const (
	cardWidth      = 1200
	cardHeight     = 630
	cardScale      = 5
	cardMargin     = 12
	cardLineHeight = 16
	cardMaxLines   = 3
	glyphWidth     = 7
)

var (
	cardBackground = color.RGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 0xff}
	cardAccent     = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	cardInk        = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	cardMuted      = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
)

// RenderCard writes a 1200x630 PNG preview card for a.
func RenderCard(w io.Writer, a content.Article, siteName string) error {
	small := image.NewRGBA(image.Rect(0, 0, cardWidth/cardScale, cardHeight/cardScale))
	draw.Draw(small, small.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)
	draw.Draw(small, image.Rect(0, 0, 4, small.Bounds().Dy()), image.NewUniform(cardAccent), image.Point{}, draw.Src)

	cols := (small.Bounds().Dx() - 2*cardMargin) / glyphWidth
	d := &font.Drawer{Dst: small, Face: basicfont.Face7x13}

	d.Src = image.NewUniform(cardMuted)
	drawText(d, truncate(siteName, cols), cardMargin, 20)

	d.Src = image.NewUniform(cardInk)
	for i, line := range wrapText(a.Title, cols, cardMaxLines) {
		drawText(d, line, cardMargin, 48+i*cardLineHeight)
	}

	d.Src = image.NewUniform(cardMuted)
	drawText(d, truncate("By "+a.Author+" | "+a.PublishedDate, cols), cardMargin, 104)
	drawText(d, truncate(strings.Join(a.Tags, ", "), cols), cardMargin, 118)

	big := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)

	if err := png.Encode(w, big); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawText(d *font.Drawer, s string, x, y int) {
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// wrapText greedily wraps s on spaces into at most maxLines lines of cols
// runes. Overflow is cut with "...".
func wrapText(s string, cols, maxLines int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= cols:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	for i := range lines {
		lines[i] = truncate(lines[i], cols)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) > cols-3 {
			last = last[:cols-3]
		}
		lines[maxLines-1] = string(last) + "..."
	}
	return lines
}

func truncate(s string, cols int) string {
	r := []rune(s)
	if len(r) <= cols {
		return s
	}
	return string(r[:cols-3]) + "..."
}
