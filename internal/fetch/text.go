package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseElements never carry description text.
const noiseElements = "nav, footer, header, script, style, noscript, iframe, form, .sidebar, .cookie-banner, .share-buttons"

// blockElements end a line in the extracted text.
const blockElements = "p, li, h1, h2, h3, h4, h5, h6, br, div, tr"

// JobPostingSelectors match the description container in common job board
// markup, most specific first.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		"#job-description",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
	}
}

// ExtractMainText returns the text of the first element matching one of
// containers, or of the whole document when none match. Elements matching
// extraNoise are dropped along with the built-in noise. Block elements
// become line breaks; blank lines are removed.
func ExtractMainText(html string, containers []string, extraNoise ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseElements).Remove()
	if len(extraNoise) > 0 {
		doc.Find(strings.Join(extraNoise, ", ")).Remove()
	}

	root := doc.Find("body")
	for _, sel := range containers {
		if match := doc.Find(sel); match.Length() > 0 {
			root = match.First()
			break
		}
	}

	root.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return normalizeLines(root.Text()), nil
}

func normalizeLines(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
