package adcopy

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Google search ad limits, in characters.
const (
	GoogleHeadlineMax    = 30
	GoogleDescriptionMax = 90
	googlePathMax        = 15
)

// AdCopy is the generated copy for one ad. Platform-specific fields are
// empty for other platforms.
type AdCopy struct {
	Platform     Platform         `json:"platform"`
	Category     BusinessCategory `json:"category"`
	Headlines    []string         `json:"headlines"`
	Descriptions []string         `json:"descriptions"`
	CallToAction string           `json:"call_to_action"`

	DisplayPath   string   `json:"display_path,omitempty"`
	PrimaryText   string   `json:"primary_text,omitempty"`
	IntroText     string   `json:"intro_text,omitempty"`
	Audience      string   `json:"audience,omitempty"`
	ScriptHook    string   `json:"script_hook,omitempty"`
	ScriptOutline []string `json:"script_outline,omitempty"`
}

// Generate validates req and renders its copy. The output is deterministic
// for a given request.
func Generate(req Request) (*AdCopy, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	switch r := req.(type) {
	case GoogleRequest:
		return generateGoogle(r), nil
	case *GoogleRequest:
		return generateGoogle(*r), nil
	case MetaRequest:
		return generateMeta(r), nil
	case *MetaRequest:
		return generateMeta(*r), nil
	case LinkedInRequest:
		return generateLinkedIn(r), nil
	case *LinkedInRequest:
		return generateLinkedIn(*r), nil
	case YouTubeRequest:
		return generateYouTube(r), nil
	case *YouTubeRequest:
		return generateYouTube(*r), nil
	}
	return nil, fmt.Errorf("unsupported ad request %T", req)
}

func generateGoogle(r GoogleRequest) *AdCopy {
	t := templatesFor(r.Category)
	fill := filler(r.BusinessName, r.Product, "")

	ad := &AdCopy{
		Platform:     PlatformGoogle,
		Category:     r.Category,
		CallToAction: t.cta,
		DisplayPath:  displayPath(r.LandingURL, r.Product),
	}
	for _, h := range t.headlines {
		ad.Headlines = append(ad.Headlines, truncate(fill(h), GoogleHeadlineMax))
	}
	if len(r.Keywords) > 0 {
		ad.Headlines = append(ad.Headlines, truncate(titleCase(r.Keywords[0])+" | "+r.BusinessName, GoogleHeadlineMax))
	}
	for _, d := range t.descriptions {
		ad.Descriptions = append(ad.Descriptions, truncate(fill(d), GoogleDescriptionMax))
	}
	return ad
}

func generateMeta(r MetaRequest) *AdCopy {
	t := templatesFor(r.Category)
	fill := filler(r.BusinessName, r.Product, r.TargetAudience)

	primary := fmt.Sprintf("%s %s for %s.", fill(t.hook), t.benefit, r.TargetAudience)
	if r.Offer != "" {
		primary += " " + r.Offer + "."
	}

	return &AdCopy{
		Platform:     PlatformMeta,
		Category:     r.Category,
		Headlines:    fillAll(fill, t.headlines),
		Descriptions: fillAll(fill, t.descriptions),
		CallToAction: metaCTA(r.Objective, t.cta),
		PrimaryText:  primary,
	}
}

func metaCTA(objective, fallback string) string {
	switch objective {
	case "awareness":
		return "Learn More"
	case "traffic":
		return "See More"
	default:
		return fallback
	}
}

func generateLinkedIn(r LinkedInRequest) *AdCopy {
	t := templatesFor(r.Category)
	fill := filler(r.CompanyName, r.Product, r.TargetRole)

	audience := r.TargetRole
	if r.Industry != "" {
		audience = fmt.Sprintf("%s in %s", r.TargetRole, r.Industry)
	}

	var intro, cta string
	switch r.Objective {
	case "hiring":
		intro = fmt.Sprintf("%s is growing. We're looking for %s who want to build %s with us.", r.CompanyName, pluralRole(r.TargetRole), r.Product)
		cta = "Apply Now"
	case "awareness":
		intro = fmt.Sprintf("%s, meet %s from %s. %s.", pluralRole(r.TargetRole), r.Product, r.CompanyName, t.benefit)
		cta = "Learn More"
	default:
		intro = fmt.Sprintf("Attention %s: %s from %s. %s.", pluralRole(r.TargetRole), r.Product, r.CompanyName, t.benefit)
		cta = "Request Demo"
	}

	return &AdCopy{
		Platform:     PlatformLinkedIn,
		Category:     r.Category,
		Headlines:    fillAll(fill, t.headlines),
		Descriptions: fillAll(fill, t.descriptions),
		CallToAction: cta,
		IntroText:    intro,
		Audience:     audience,
	}
}

func generateYouTube(r YouTubeRequest) *AdCopy {
	t := templatesFor(r.Category)
	fill := filler(r.ChannelName, r.Product, r.TargetAudience)

	outline := []string{
		fmt.Sprintf("0-5s: %s", fill(t.hook)),
		fmt.Sprintf("Problem: what %s struggle with today", r.TargetAudience),
		fmt.Sprintf("Solution: %s from %s", r.Product, r.ChannelName),
	}
	if r.VideoSeconds >= 30 {
		outline = append(outline, fmt.Sprintf("Proof: %s", t.benefit))
	}
	outline = append(outline, fmt.Sprintf("Close (last 5s of %ds): %s", r.VideoSeconds, t.cta))

	return &AdCopy{
		Platform:      PlatformYouTube,
		Category:      r.Category,
		Headlines:     fillAll(fill, t.headlines),
		Descriptions:  fillAll(fill, t.descriptions),
		CallToAction:  t.cta,
		ScriptHook:    fill(t.hook),
		ScriptOutline: outline,
	}
}

func filler(business, product, audience string) func(string) string {
	r := strings.NewReplacer("{business}", business, "{product}", product, "{audience}", audience)
	return r.Replace
}

func fillAll(fill func(string) string, in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fill(s)
	}
	return out
}

// truncate shortens s to at most limit runes, preferring a word boundary in
// the second half of the allowed length.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	cut := string([]rune(s)[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 && utf8.RuneCountInString(cut[:i]) >= limit/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " |:-,")
}

// displayPath builds "example.com/product-slug" from the landing URL.
func displayPath(landing, product string) string {
	host := landing
	if u, err := url.Parse(landing); err == nil && u.Host != "" {
		host = u.Hostname()
	}
	host = strings.TrimPrefix(host, "www.")

	slug := strings.ToLower(strings.Join(strings.Fields(product), "-"))
	if utf8.RuneCountInString(slug) > googlePathMax {
		slug = strings.TrimRight(string([]rune(slug)[:googlePathMax]), "-")
	}
	return host + "/" + slug
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func pluralRole(role string) string {
	if strings.HasSuffix(role, "s") {
		return role
	}
	return role + "s"
}
