package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/eringen/pagesblog"
	"github.com/eringen/pagesblog/client"
	"github.com/eringen/pagesblog/content"
	"github.com/eringen/pagesblog/markdown"
)

var (
	h1Style    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	h2Style    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	codeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236"))
	metaStyle  = lipgloss.NewStyle().Faint(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Background(lipgloss.Color("189")).Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newReadCmd() *cobra.Command {
	var baseURL string
	var plain bool
	cmd := &cobra.Command{
		Use:   "read [slug]",
		Short: "List articles, or print one article, from a running server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New("pagesblog")
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(log.WARN)
			r := client.NewReader(client.New(baseURL), logger)
			out := cmd.OutOrStdout()

			r.LoadIndex(cmd.Context())
			idx := r.Index.Snapshot()
			if idx.State == client.Failed {
				fmt.Fprintln(out, errorStyle.Render(idx.Err))
				return errors.New("index unavailable")
			}
			if len(args) == 0 {
				fmt.Fprintln(out, renderIndex(idx.Value))
				return nil
			}

			r.Select(cmd.Context(), args[0])
			art := r.Article.Snapshot()
			if art.State == client.Failed {
				fmt.Fprintln(out, errorStyle.Render(art.Err))
				return errors.New("article unavailable")
			}
			if plain {
				fmt.Fprintln(out, markdown.Plain(markdown.Parse(art.Value.Content)))
				return nil
			}
			fmt.Fprintln(out, renderArticle(art.Value))
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", pagesblog.EnvOr("PAGESBLOG_URL", "http://localhost:3000"), "server base URL")
	cmd.Flags().BoolVar(&plain, "plain", false, "print article content without styling")
	return cmd
}

func renderIndex(index []content.ArticleSummary) string {
	var b strings.Builder
	b.WriteString(h1Style.Render("Articles"))
	for _, s := range index {
		fmt.Fprintf(&b, "\n  %s %s", content.TitleFromPath(s.Path), metaStyle.Render("("+s.Path+")"))
	}
	return b.String()
}

func renderArticle(a content.Article) string {
	var b strings.Builder
	b.WriteString(h1Style.Render(a.Title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("By %s | Published on %s", a.Author, a.PublishedDate)))
	if len(a.Tags) > 0 {
		b.WriteString("\n")
		pills := make([]string, len(a.Tags))
		for i, t := range a.Tags {
			pills[i] = tagStyle.Render(t)
		}
		b.WriteString(strings.Join(pills, " "))
	}
	b.WriteString("\n")
	for _, blk := range markdown.Parse(a.Content) {
		b.WriteString("\n")
		switch blk.Kind {
		case markdown.Heading1:
			b.WriteString(h1Style.Render(blk.Text))
		case markdown.Heading2:
			b.WriteString(h2Style.Render(blk.Text))
		case markdown.ListItem:
			b.WriteString("  • " + blk.Text)
		case markdown.CodeLine:
			b.WriteString(codeStyle.Render("  " + blk.Text))
		default:
			b.WriteString(blk.Text)
		}
	}
	return b.String()
}
