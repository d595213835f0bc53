// Package markdown renders the line-based pseudo-markdown used by article
// content. Every line becomes exactly one block; no state carries over from
// one line to the next.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Kind identifies what a single content line renders as.
type Kind int

const (
	Paragraph Kind = iota
	Heading1
	Heading2
	ListItem
	CodeLine
)

const fence = "```"

func (k Kind) String() string {
	switch k {
	case Heading1:
		return "heading1"
	case Heading2:
		return "heading2"
	case ListItem:
		return "list-item"
	case CodeLine:
		return "code"
	default:
		return "paragraph"
	}
}

// Block is one rendered line.
type Block struct {
	Kind Kind
	Text string
}

// Parse classifies each line of text. Rules are checked in order and the
// first match wins, so a fenced line that starts with "# " is a heading.
// Empty text yields no blocks.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classify(line))
	}
	return blocks
}

func classify(line string) Block {
	switch {
	case strings.HasPrefix(line, "# "):
		return Block{Kind: Heading1, Text: line[2:]}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: Heading2, Text: line[3:]}
	case strings.HasPrefix(strings.TrimSpace(line), "- "):
		// The payload is cut from the untrimmed line.
		return Block{Kind: ListItem, Text: line[2:]}
	case strings.Contains(line, fence):
		return Block{Kind: CodeLine, Text: strings.ReplaceAll(line, fence, "")}
	default:
		return Block{Kind: Paragraph, Text: line}
	}
}

// Content returns a templ.Component that renders text as HTML.
func Content(text string) templ.Component {
	return Blocks(Parse(text))
}

// Blocks returns a templ.Component that renders already parsed blocks.
func Blocks(blocks []Block) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderHTML(&buf, blocks)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderHTML writes one element per block to buf. Text is escaped and gets
// no inline formatting.
func RenderHTML(buf *bytes.Buffer, blocks []Block) {
	for _, b := range blocks {
		text := html.EscapeString(b.Text)
		switch b.Kind {
		case Heading1:
			buf.WriteString(`<h1 class="mt-4 mb-2 text-3xl font-bold">` + text + `</h1>`)
		case Heading2:
			buf.WriteString(`<h2 class="mt-3 mb-1 text-2xl font-semibold">` + text + `</h2>`)
		case ListItem:
			buf.WriteString(`<li class="ml-6 list-disc">` + text + `</li>`)
		case CodeLine:
			buf.WriteString(`<pre class="my-4 overflow-x-auto rounded-md bg-gray-800 p-4 text-white"><code>` + text + `</code></pre>`)
		default:
			buf.WriteString(`<p class="my-2">` + text + `</p>`)
		}
	}
}

// Plain renders blocks as text lines, one per block, for terminals and feeds.
func Plain(blocks []Block) string {
	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch blk.Kind {
		case ListItem:
			b.WriteString("• " + blk.Text)
		case CodeLine:
			b.WriteString("    " + blk.Text)
		default:
			b.WriteString(blk.Text)
		}
	}
	return b.String()
}

// Excerpt returns the first non-empty paragraph, cut to at most max runes.
func Excerpt(text string, max int) string {
	for _, b := range Parse(text) {
		if b.Kind != Paragraph {
			continue
		}
		s := strings.TrimSpace(b.Text)
		if s == "" {
			continue
		}
		r := []rune(s)
		if len(r) <= max {
			return s
		}
		return strings.TrimSpace(string(r[:max])) + "…"
	}
	return ""
}
