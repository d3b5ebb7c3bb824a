package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/adcopy"
	"github.com/postpilot/postpilot/internal/blog"
	"github.com/postpilot/postpilot/internal/content"
	"github.com/postpilot/postpilot/internal/jobboard"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func sampleCards(unlocked bool) []jobboard.Card {
	s := jobboard.NewState(jobboard.SampleJobs(testNow))
	s.ToggleExpanded("4")
	return s.Cards(append(s.DerivedView(), s.PremiumView()...), unlocked, testNow)
}

func TestPrintCards(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCards("JOBS", sampleCards(false))
	out := buf.String()

	assert.Contains(t, out, "JOBS")
	assert.Contains(t, out, "Senior Frontend Developer at TechCorp Inc.")
	assert.Contains(t, out, "★ [2]")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "Requires on-site presence in Chicago")
	assert.Contains(t, out, jobboard.UpgradePrompt)
	assert.NotContains(t, out, "Principal Platform Engineer")
}

func TestPrintCards_Unlocked(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCards("JOBS", sampleCards(true))

	assert.Contains(t, buf.String(), "Principal Platform Engineer")
}

func TestPrintCards_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCards("JOBS", nil)

	assert.Contains(t, buf.String(), "No jobs match")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("TITLE", "short\n"+strings.Repeat("long ", 40)+"\n• bullet")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintJobDetail(t *testing.T) {
	details := jobboard.SampleDetails()
	card := sampleCards(false)[0]

	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobDetail(card, details.Lookup(card.ID))
	out := buf.String()

	assert.Contains(t, out, strings.ToUpper(card.Title))
	assert.Contains(t, out, "Responsibilities:")
	assert.Contains(t, out, "ATS score: 87")
	assert.Contains(t, out, "Keywords: TypeScript")
}

func TestPrintJobDetail_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobDetail(jobboard.Card{ID: "4", Title: "Junior Web Developer"}, jobboard.SampleDetails().Lookup("4"))

	assert.Contains(t, buf.String(), jobboard.DescriptionUnavailable)
	assert.NotContains(t, buf.String(), "ATS score")
}

func TestPrintAdCopy(t *testing.T) {
	ad, err := adcopy.Generate(adcopy.GoogleRequest{
		BusinessName: "Acme Bakery",
		Category:     adcopy.CategoryRestaurant,
		Product:      "sourdough bread",
		LandingURL:   "https://acme.example.com/bread",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintAdCopy(ad)
	out := buf.String()

	assert.Contains(t, out, "GOOGLE AD")
	assert.Contains(t, out, "Headlines:")
	assert.Contains(t, out, "CTA: ")
}

func TestPrintAdCopy_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAdCopy(nil)
	assert.Empty(t, buf.String())
}

func TestPrintLinkedInPost(t *testing.T) {
	post := &content.LinkedInPost{
		PostText:     "Hiring is changing.\n\n#Hiring",
		ImageURL:     "https://img.example.com/hiring.png",
		ImageCaption: "Key takeaways on hiring",
		Metadata:     content.PostMetadata{WordCount: 4, Tone: content.ToneProfessional, Generator: content.GeneratorTemplate},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintLinkedInPost(post)
	out := buf.String()

	assert.Contains(t, out, "LINKEDIN POST")
	assert.Contains(t, out, "Hiring is changing.")
	assert.Contains(t, out, "Caption: Key takeaways on hiring")
	assert.Contains(t, out, "4 words · professional · template generator")
}

func TestPrintBlog(t *testing.T) {
	catalog, err := blog.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintBlogPosts(catalog.List(""))
	assert.Contains(t, buf.String(), "/blog/welcome-to-postpilot")

	buf.Reset()
	post, err := catalog.Get("welcome-to-postpilot")
	require.NoError(t, err)
	p.PrintBlogPost(post)
	assert.Contains(t, buf.String(), "min read")
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)
	assert.Equal(t, []string{"a", "", "b"}, wrap("a\n\nb", 10))
}
