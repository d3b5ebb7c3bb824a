// Package blog serves the marketing blog from a post catalog embedded in the
// binary.
package blog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/postpilot/postpilot/internal/fetch"
	"github.com/postpilot/postpilot/internal/schemas"
)

// ErrPostNotFound is returned by Get for unknown slugs.
var ErrPostNotFound = errors.New("post not found")

// WordsPerMinute is the reading speed used for ReadingMinutes.
const WordsPerMinute = 200

// ExcerptLength is the maximum length of an excerpt, in runes.
const ExcerptLength = 160

//go:embed posts.json
var embeddedPosts []byte

// Post is a blog post. Excerpt and ReadingMinutes are derived from BodyHTML.
type Post struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
	CoverImage     string    `json:"cover_image,omitempty"`
	BodyHTML       string    `json:"body_html,omitempty"`
	Excerpt        string    `json:"excerpt"`
	ReadingMinutes int       `json:"reading_minutes"`
}

// Summary returns the post without its body, for listings.
func (p Post) Summary() Post {
	p.BodyHTML = ""
	return p
}

// Catalog is an immutable, slug-indexed set of posts sorted newest first.
type Catalog struct {
	posts  []Post
	bySlug map[string]int
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embeddedPosts)
}

// Parse validates data against the blog schema and builds a catalog.
func Parse(data []byte) (*Catalog, error) {
	if err := schemas.Validate(schemas.BlogPosts, data); err != nil {
		return nil, fmt.Errorf("invalid blog catalog: %w", err)
	}

	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog catalog: %w", err)
	}
	return NewCatalog(posts)
}

// NewCatalog derives excerpts and reading times and indexes posts by slug.
// Duplicate slugs are an error.
func NewCatalog(posts []Post) (*Catalog, error) {
	c := &Catalog{
		posts:  make([]Post, 0, len(posts)),
		bySlug: make(map[string]int, len(posts)),
	}

	for _, p := range posts {
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate blog slug %q", p.Slug)
		}
		text, err := fetch.ExtractMainText(p.BodyHTML, nil)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", p.Slug, err)
		}
		p.Excerpt = excerpt(text, ExcerptLength)
		p.ReadingMinutes = readingMinutes(text)
		c.bySlug[p.Slug] = len(c.posts)
		c.posts = append(c.posts, p)
	}

	sort.SliceStable(c.posts, func(i, j int) bool {
		return c.posts[i].PublishedAt.After(c.posts[j].PublishedAt)
	})
	for i, p := range c.posts {
		c.bySlug[p.Slug] = i
	}
	return c, nil
}

// List returns post summaries, newest first. An empty category matches all
// posts; otherwise matching is case-insensitive.
func (c *Catalog) List(category string) []Post {
	out := make([]Post, 0, len(c.posts))
	for _, p := range c.posts {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p.Summary())
	}
	return out
}

// Get returns the full post for slug, or ErrPostNotFound.
func (c *Catalog) Get(slug string) (Post, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return c.posts[i], nil
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.posts {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func readingMinutes(text string) int {
	words := len(strings.Fields(text))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// excerpt returns the first paragraph of text, cut at a word boundary to at
// most limit runes.
func excerpt(text string, limit int) string {
	first, _, _ := strings.Cut(text, "\n")
	if utf8.RuneCountInString(first) <= limit {
		return first
	}
	cut := string([]rune(first)[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:.") + "..."
}
