package adcopy

import "strings"

// BusinessCategory selects the copy templates for a business. The zero
// value is CategoryOther, which uses the default templates.
type BusinessCategory int

const (
	CategoryOther BusinessCategory = iota
	CategoryEcommerce
	CategorySaaS
	CategoryLocalService
	CategoryRestaurant
	CategoryHealthcare
	CategoryEducation
	CategoryRealEstate
	CategoryFitness

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryOther:        "other",
	CategoryEcommerce:    "ecommerce",
	CategorySaaS:         "saas",
	CategoryLocalService: "local-service",
	CategoryRestaurant:   "restaurant",
	CategoryHealthcare:   "healthcare",
	CategoryEducation:    "education",
	CategoryRealEstate:   "real-estate",
	CategoryFitness:      "fitness",
}

// Categories returns every known category, excluding CategoryOther.
func Categories() []BusinessCategory {
	out := make([]BusinessCategory, 0, categoryCount-1)
	for c := CategoryOther + 1; c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c BusinessCategory) valid() bool {
	return c >= 0 && c < categoryCount
}

func (c BusinessCategory) String() string {
	if !c.valid() {
		return categoryNames[CategoryOther]
	}
	return categoryNames[c]
}

// ParseCategory maps free-form input such as "E-commerce" or "real estate"
// to a category. Unknown input yields CategoryOther.
func ParseCategory(s string) BusinessCategory {
	key := normalizeCategory(s)
	for i, name := range categoryNames {
		if normalizeCategory(name) == key {
			return BusinessCategory(i)
		}
	}
	return CategoryOther
}

func normalizeCategory(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

func (c BusinessCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText never fails; unknown categories become CategoryOther.
func (c *BusinessCategory) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}
