// Package observability provides formatted output for the CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/postpilot/postpilot/internal/adcopy"
	"github.com/postpilot/postpilot/internal/blog"
	"github.com/postpilot/postpilot/internal/content"
	"github.com/postpilot/postpilot/internal/jobboard"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to width runes, marking the cut with "...".
func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for i, item := range items {
		if i == limit {
			fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
			break
		}
		fmt.Fprintf(sb, "  • %s\n", item)
	}
}

// PrintCards outputs the job board, one line pair per card.
func (p *Printer) PrintCards(title string, cards []jobboard.Card) {
	var sb strings.Builder
	if len(cards) == 0 {
		sb.WriteString("No jobs match the current filters.")
		p.printBox(title, sb.String())
		return
	}

	for i, c := range cards {
		if c.Locked {
			fmt.Fprintf(&sb, "[%s] 🔒 %s\n", c.ID, c.UpgradePrompt)
		} else {
			mark := " "
			if c.Bookmarked {
				mark = "★"
			}
			fmt.Fprintf(&sb, "%s [%s] %s at %s\n", mark, c.ID, c.Title, c.Company)
			fmt.Fprintf(&sb, "    %d%% %s · %s · %s · %s", c.MatchScore, c.MatchLevel, c.Location, c.Salary, c.PostedLabel)
			if c.Remote {
				sb.WriteString(" · remote")
			}
			sb.WriteString("\n")
		}
		if c.WhyLowScoreOpen {
			for _, reason := range c.WhyLowScore {
				fmt.Fprintf(&sb, "      - %s\n", reason)
			}
		}
		if i < len(cards)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilter outputs the active filter and the refresh countdown.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFilter(f jobboard.FilterSelection, nextUpdate string) {
	fmt.Fprintf(p.out, "type=%s  experience=%s  remote_only=%t  sort=%s  next update in %s\n",
		f.JobType, f.ExperienceLevel, f.RemoteOnly, f.SortTab, nextUpdate)
}

// PrintJobDetail outputs one job and its enrichment.
func (p *Printer) PrintJobDetail(card jobboard.Card, detail jobboard.Detail) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Company:  %s\n", card.Company)
	fmt.Fprintf(&sb, "Location: %s\n", card.Location)
	fmt.Fprintf(&sb, "Salary:   %s\n", card.Salary)
	fmt.Fprintf(&sb, "Match:    %d%% (%s)\n\n", card.MatchScore, card.MatchLevel)

	if !detail.Available || detail.Description == nil {
		sb.WriteString(detail.Message)
		p.printBox(strings.ToUpper(card.Title), sb.String())
		return
	}

	d := detail.Description
	for _, line := range wrap(d.Overview, boxWidth-4) {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	writeList(&sb, "Responsibilities", d.Responsibilities, maxItemsToShow)
	writeList(&sb, "Requirements", d.Requirements, maxItemsToShow)
	writeList(&sb, "Benefits", d.Benefits, maxItemsToShow)
	fmt.Fprintf(&sb, "\nATS score: %d\n", d.ATS.Score)
	writeList(&sb, "Suggestions", d.ATS.Suggestions, maxItemsToShow)
	if d.ResumeHelp.Summary != "" {
		fmt.Fprintf(&sb, "\nResume: %s\n", d.ResumeHelp.Summary)
	}
	if len(d.ResumeHelp.KeywordsToAdd) > 0 {
		fmt.Fprintf(&sb, "Keywords: %s\n", strings.Join(d.ResumeHelp.KeywordsToAdd, ", "))
	}
	writeList(&sb, "Bullet tips", d.ResumeHelp.BulletPointTips, 3)

	p.printBox(strings.ToUpper(card.Title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdCopy outputs generated ad copy.
func (p *Printer) PrintAdCopy(ad *adcopy.AdCopy) {
	if ad == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Category: %s\n", ad.Category)
	if ad.Audience != "" {
		fmt.Fprintf(&sb, "Audience: %s\n", ad.Audience)
	}
	if ad.DisplayPath != "" {
		fmt.Fprintf(&sb, "Path:     %s\n", ad.DisplayPath)
	}
	sb.WriteString("\n")
	writeList(&sb, "Headlines", ad.Headlines, len(ad.Headlines))
	writeList(&sb, "Descriptions", ad.Descriptions, len(ad.Descriptions))
	for _, text := range []string{ad.PrimaryText, ad.IntroText} {
		if text == "" {
			continue
		}
		sb.WriteString("\n")
		for _, line := range wrap(text, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
	}
	if ad.ScriptHook != "" {
		fmt.Fprintf(&sb, "\nHook: %s\n", ad.ScriptHook)
		writeList(&sb, "Outline", ad.ScriptOutline, len(ad.ScriptOutline))
	}
	fmt.Fprintf(&sb, "\nCTA: %s", ad.CallToAction)

	p.printBox(strings.ToUpper(ad.Platform.String())+" AD", sb.String())
}

// PrintLinkedInPost outputs a generated post with its metadata.
func (p *Printer) PrintLinkedInPost(post *content.LinkedInPost) {
	if post == nil {
		return
	}

	var sb strings.Builder
	for _, line := range wrap(post.PostText, boxWidth-4) {
		sb.WriteString(line + "\n")
	}
	if post.ImageURL != "" {
		fmt.Fprintf(&sb, "\nImage:   %s\n", post.ImageURL)
		fmt.Fprintf(&sb, "Caption: %s\n", post.ImageCaption)
	}
	m := post.Metadata
	fmt.Fprintf(&sb, "\n%d words · %s · %s generator", m.WordCount, m.Tone, m.Generator)

	p.printBox("LINKEDIN POST", sb.String())
}

// PrintBlogPosts outputs a post listing.
func (p *Printer) PrintBlogPosts(posts []blog.Post) {
	var sb strings.Builder
	for i, post := range posts {
		fmt.Fprintf(&sb, "%s  %s\n", post.PublishedAt.Format("2006-01-02"), post.Title)
		fmt.Fprintf(&sb, "    /blog/%s · %s · %d min read\n", post.Slug, post.Category, post.ReadingMinutes)
		if i < len(posts)-1 {
			sb.WriteString("\n")
		}
	}
	if len(posts) == 0 {
		sb.WriteString("No posts.")
	}
	p.printBox("BLOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBlogPost outputs one post's metadata and excerpt.
func (p *Printer) PrintBlogPost(post blog.Post) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "By %s · %s · %d min read\n\n", post.Author, post.PublishedAt.Format("January 2, 2006"), post.ReadingMinutes)
	for _, line := range wrap(post.Excerpt, boxWidth-4) {
		sb.WriteString(line + "\n")
	}
	if len(post.Tags) > 0 {
		fmt.Fprintf(&sb, "\nTags: %s\n", strings.Join(post.Tags, ", "))
	}
	p.printBox(post.Title, strings.TrimSuffix(sb.String(), "\n"))
}
