package adcopy

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/validation"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want BusinessCategory
	}{
		{"ecommerce", CategoryEcommerce},
		{"E-commerce", CategoryEcommerce},
		{"SaaS", CategorySaaS},
		{"local service", CategoryLocalService},
		{"real_estate", CategoryRealEstate},
		{"Fitness", CategoryFitness},
		{"crypto", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.in))
		})
	}
}

func TestTemplates_EveryCategoryHasCopy(t *testing.T) {
	for c := BusinessCategory(0); c < categoryCount; c++ {
		tmpl := templatesFor(c)
		assert.NotEmpty(t, tmpl.headlines, c.String())
		assert.NotEmpty(t, tmpl.descriptions, c.String())
		assert.NotEmpty(t, tmpl.cta, c.String())
		assert.NotEmpty(t, tmpl.hook, c.String())
	}
	assert.Equal(t, templates[CategoryOther], templatesFor(BusinessCategory(99)))
	assert.Len(t, Categories(), int(categoryCount)-1)
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("LinkedIn")
	require.NoError(t, err)
	assert.Equal(t, PlatformLinkedIn, p)

	_, err = ParsePlatform("tiktok")
	assert.Error(t, err)
}

func TestGenerate_Google(t *testing.T) {
	ad, err := Generate(GoogleRequest{
		BusinessName: "Acme Outdoor Supply Company",
		Category:     CategoryEcommerce,
		Product:      "Ultralight Waterproof Hiking Backpacks",
		LandingURL:   "https://www.acme.example/shop/backpacks",
		Keywords:     []string{"hiking backpack"},
	})
	require.NoError(t, err)

	assert.Equal(t, PlatformGoogle, ad.Platform)
	assert.Equal(t, "Shop Now", ad.CallToAction)
	assert.Len(t, ad.Headlines, 4)
	for _, h := range ad.Headlines {
		assert.LessOrEqual(t, utf8.RuneCountInString(h), GoogleHeadlineMax, h)
		assert.NotEmpty(t, h)
	}
	for _, d := range ad.Descriptions {
		assert.LessOrEqual(t, utf8.RuneCountInString(d), GoogleDescriptionMax, d)
	}
	assert.Equal(t, "acme.example/ultralight-wate", ad.DisplayPath)
	assert.Empty(t, ad.PrimaryText)
}

func TestGenerate_IsDeterministic(t *testing.T) {
	req := MetaRequest{
		BusinessName:   "Green Bowl",
		Category:       CategoryRestaurant,
		Product:        "poke bowls",
		TargetAudience: "office workers downtown",
		Objective:      "conversions",
		Offer:          "20% off your first order",
	}
	a, err := Generate(req)
	require.NoError(t, err)
	b, err := Generate(&req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "Order Now", a.CallToAction)
	assert.Contains(t, a.PrimaryText, "office workers downtown")
	assert.Contains(t, a.PrimaryText, "20% off your first order")
}

func TestGenerate_UnknownCategoryUsesDefault(t *testing.T) {
	ad, err := Generate(YouTubeRequest{
		ChannelName:    "Widget Co",
		Category:       ParseCategory("quantum widgets"),
		Product:        "widgets",
		TargetAudience: "makers",
		VideoSeconds:   15,
	})
	require.NoError(t, err)

	assert.Equal(t, CategoryOther, ad.Category)
	assert.Equal(t, "Learn More", ad.CallToAction)
	assert.Equal(t, "Discover widgets", ad.Headlines[0])
	assert.Equal(t, "Looking for widgets? Here's why people choose Widget Co.", ad.ScriptHook)
	assert.Len(t, ad.ScriptOutline, 4, "short videos skip the proof beat")
}

func TestGenerate_LinkedInObjectives(t *testing.T) {
	base := LinkedInRequest{
		CompanyName: "Ledgerly",
		Category:    CategorySaaS,
		Product:     "automated bookkeeping",
		TargetRole:  "CFO",
		Industry:    "retail",
	}

	tests := []struct {
		objective string
		cta       string
	}{
		{"leads", "Request Demo"},
		{"awareness", "Learn More"},
		{"hiring", "Apply Now"},
	}

	for _, tt := range tests {
		t.Run(tt.objective, func(t *testing.T) {
			req := base
			req.Objective = tt.objective
			ad, err := Generate(req)
			require.NoError(t, err)
			assert.Equal(t, tt.cta, ad.CallToAction)
			assert.Equal(t, "CFO in retail", ad.Audience)
			assert.Contains(t, ad.IntroText, "CFOs")
		})
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	_, err := Generate(GoogleRequest{
		BusinessName: "",
		Product:      "shoes",
		LandingURL:   "not a url",
		Keywords:     []string{"ok", ""},
	})
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)

	fields := verr.Messages()
	assert.Equal(t, "is required", fields["business_name"])
	assert.Equal(t, "must be a valid URL", fields["landing_url"])
	assert.Equal(t, "is required", fields["keywords[1]"])
	assert.NotContains(t, fields, "product")
}

func TestGenerate_OneOfAndRange(t *testing.T) {
	_, err := Generate(YouTubeRequest{
		ChannelName:    "c",
		Product:        "p",
		TargetAudience: "a",
		VideoSeconds:   600,
	})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []validation.FieldError{{Field: "video_seconds", Message: "must be at most 180"}}, verr.Fields)

	_, err = Generate(MetaRequest{
		BusinessName:   "b",
		Product:        "p",
		TargetAudience: "a",
		Objective:      "virality",
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "objective", verr.Fields[0].Field)
	assert.Equal(t, "must be one of: awareness, traffic, conversions", verr.Fields[0].Message)
}

func TestGenerate_NilRequest(t *testing.T) {
	_, err := Generate(nil)
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
}

func TestNewRequest_DecodesJSON(t *testing.T) {
	req, err := NewRequest(PlatformMeta)
	require.NoError(t, err)

	body := `{"business_name":"FitHub","category":"Fitness","product":"spin classes","target_audience":"new parents","objective":"awareness"}`
	require.NoError(t, json.Unmarshal([]byte(body), req))

	ad, err := Generate(req)
	require.NoError(t, err)
	assert.Equal(t, CategoryFitness, ad.Category)
	assert.Equal(t, "Learn More", ad.CallToAction)

	out, err := json.Marshal(ad)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"platform":"meta"`)
	assert.Contains(t, string(out), `"category":"fitness"`)
}
