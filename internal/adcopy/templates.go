package adcopy

// categoryTemplates holds the copy fragments for one business category.
// Placeholders: {business}, {product}, {audience}.
type categoryTemplates struct {
	headlines    []string
	descriptions []string
	benefit      string
	cta          string
	hook         string
}

// templates is indexed by BusinessCategory; CategoryOther is the default
// branch.
var templates = [categoryCount]categoryTemplates{
	CategoryOther: {
		headlines: []string{
			"Discover {product}",
			"{business}: Built for You",
			"Try {product} Today",
		},
		descriptions: []string{
			"{business} brings you {product}. See what makes us different.",
			"Quality you can count on. Get started with {product} today.",
		},
		benefit: "Quality you can count on",
		cta:     "Learn More",
		hook:    "Looking for {product}? Here's why people choose {business}.",
	},
	CategoryEcommerce: {
		headlines: []string{
			"Shop {product} Online",
			"{product} | Free Shipping",
			"New {product} Just Dropped",
		},
		descriptions: []string{
			"Order {product} from {business} with fast, free shipping and easy returns.",
			"Top-rated {product}. Limited stock, so shop now before it's gone.",
		},
		benefit: "Free shipping and easy returns",
		cta:     "Shop Now",
		hook:    "Stop scrolling: this {product} is selling out fast.",
	},
	CategorySaaS: {
		headlines: []string{
			"{product}: Start Free",
			"Automate Work with {product}",
			"{business} | Free Trial",
		},
		descriptions: []string{
			"{product} helps teams save hours every week. Start your free trial today.",
			"Join teams using {business}. No credit card required.",
		},
		benefit: "Save hours every week",
		cta:     "Start Free Trial",
		hook:    "What if {product} gave your team back ten hours a week?",
	},
	CategoryLocalService: {
		headlines: []string{
			"Trusted {product} Near You",
			"{business}: Book Today",
			"Same-Week {product}",
		},
		descriptions: []string{
			"Local, licensed and reviewed. {business} delivers {product} you can trust.",
			"Get a free quote for {product}. Friendly pros, fair prices.",
		},
		benefit: "Licensed local professionals",
		cta:     "Get a Quote",
		hook:    "Need {product} this week? {business} is around the corner.",
	},
	CategoryRestaurant: {
		headlines: []string{
			"Try Our {product}",
			"{business}: Order Online",
			"Fresh {product} Tonight",
		},
		descriptions: []string{
			"{business} serves {product} made fresh daily. Dine in, take out or delivery.",
			"Hungry? Order {product} online and skip the wait.",
		},
		benefit: "Made fresh daily",
		cta:     "Order Now",
		hook:    "This is the {product} everyone in town is talking about.",
	},
	CategoryHealthcare: {
		headlines: []string{
			"{product} You Can Trust",
			"{business}: Book a Visit",
			"Same-Day {product}",
		},
		descriptions: []string{
			"Compassionate care from {business}. Book {product} online in minutes.",
			"Experienced providers and most insurance accepted.",
		},
		benefit: "Experienced, compassionate providers",
		cta:     "Book Appointment",
		hook:    "Your health can't wait. Here's how {business} makes {product} simple.",
	},
	CategoryEducation: {
		headlines: []string{
			"Learn {product} Online",
			"{business}: Enroll Today",
			"Master {product} Fast",
		},
		descriptions: []string{
			"Build real skills with {product} from {business}. Learn at your own pace.",
			"Expert instructors and hands-on projects. Enrollment is open now.",
		},
		benefit: "Learn at your own pace",
		cta:     "Enroll Now",
		hook:    "Want to learn {product} in weeks, not years?",
	},
	CategoryRealEstate: {
		headlines: []string{
			"Find Your {product}",
			"{business}: Local Experts",
			"Tour {product} This Week",
		},
		descriptions: []string{
			"{business} helps you find {product} that fits your life and budget.",
			"Local market experts. Schedule a free consultation today.",
		},
		benefit: "Local market expertise",
		cta:     "Schedule a Tour",
		hook:    "Think {product} is out of reach? {business} can show you otherwise.",
	},
	CategoryFitness: {
		headlines: []string{
			"Get Fit with {product}",
			"{business}: First Week Free",
			"{product} That Works",
		},
		descriptions: []string{
			"Reach your goals with {product} at {business}. Your first week is on us.",
			"Expert coaching, flexible schedules and real results.",
		},
		benefit: "Your first week is free",
		cta:     "Join Today",
		hook:    "Thirty days with {product} changed everything. Here's how.",
	},
}

func templatesFor(c BusinessCategory) categoryTemplates {
	if !c.valid() {
		c = CategoryOther
	}
	return templates[c]
}
