package report

import (
	"strings"

	"golang.org/x/net/html"
)

// TemplateInfo summarizes a template file.
type TemplateInfo struct {
	Title        string
	Observations int
	Names        int
}

// InspectTemplate counts placeholder tokens and extracts the <title> text, if any.
func InspectTemplate(template string) TemplateInfo {
	return TemplateInfo{
		Title:        templateTitle(template),
		Observations: strings.Count(template, ObservationsToken),
		Names:        strings.Count(template, NameToken),
	}
}

func templateTitle(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var title string
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title != "" {
				return
			}
			extract(c)
		}
	}
	extract(doc)

	return title
}
