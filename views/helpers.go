package views

import (
	"net/url"

	"github.com/a-h/templ"
)

// PathEscape wraps url.PathEscape for use in links.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// ReadLink is the page link for an article slug.
func ReadLink(slug string) string {
	return "/read/" + PathEscape(slug) + "/"
}

func pageTitle(site Site, meta PageMeta) string {
	if meta.Title == "" {
		return site.Name
	}
	return meta.Title + " | " + site.Name
}

func pageDescription(site Site, meta PageMeta) string {
	if meta.Description != "" {
		return meta.Description
	}
	return site.Description
}

func ogType(meta PageMeta) string {
	if meta.OGType == "" {
		return "website"
	}
	return meta.OGType
}

// jsonLD embeds a JSON-LD document. The documents come from encoding/json,
// which escapes <, > and &, so they are safe inside a script element.
func jsonLD(ld string) templ.Component {
	if ld == "" {
		return templ.NopComponent
	}
	return templ.Raw(`<script type="application/ld+json">` + ld + `</script>`)
}
