package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches page chrome that never belongs to a posting or resume
const noiseSelector = "nav, footer, header, script, style, noscript, iframe, form, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// blockSelector matches elements that end a line of text
const blockSelector = "p, div, section, article, main, li, h1, h2, h3, h4, h5, h6, tr, dt, dd, blockquote, pre"

// ContentSelectors are tried in order to find the main content of a page.
var ContentSelectors = []string{
	".job-description",
	"#job-description",
	".job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	"#content",
	".content",
}

// HTMLToText extracts the readable text of an HTML document. Block elements
// become lines, list items become "- " bullets and table cells are separated
// by " | " so table layouts stay detectable.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var content *goquery.Selection
	for _, selector := range ContentSelectors {
		if s := doc.Find(selector); s.Length() > 0 {
			content = s.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	content.Find("br").ReplaceWithHtml("\n")
	content.Find("li").PrependHtml("- ")
	content.Find("td, th").Each(func(i int, cell *goquery.Selection) {
		if cell.Next().Length() > 0 {
			cell.AppendHtml(" | ")
		}
	})
	content.Find(blockSelector).AppendHtml("\n")

	lines := strings.Split(content.Text(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return CleanText(strings.Join(kept, "\n")), nil
}
