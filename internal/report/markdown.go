package report

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

// Format selects the output document type.
type Format string

const (
	// FormatHTML writes the substituted template as is.
	FormatHTML Format = "html"
	// FormatMarkdown converts the substituted template to Markdown.
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts "html", "markdown" or "md" in any case; empty means FormatHTML.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "html":
		return FormatHTML, true
	case "markdown", "md":
		return FormatMarkdown, true
	default:
		return "", false
	}
}

// ToMarkdown converts a rendered HTML document to GitHub flavoured Markdown.
func ToMarkdown(document string) (string, error) {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	out, err := converter.ConvertString(document)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return out + "\n", nil
}

// Encode returns document in the requested format.
func Encode(document string, format Format) (string, error) {
	if format == FormatMarkdown {
		return ToMarkdown(document)
	}
	return document, nil
}
