package views

// Site carries the site-wide settings every page needs.
type Site struct {
	Name        string
	Tagline     string
	URL         string
	Description string
	JsonLD      string // WebSite schema, rendered into <head>
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, optional
	JsonLD      string // optional page-level schema
}
