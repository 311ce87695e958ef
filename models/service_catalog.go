package models

// ServiceDefinition describes one of the fixed lending products the site
// generates location pages for. The catalog is deliberately in code: products
// change rarely and every entry multiplies the page count by the town total.
type ServiceDefinition struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ServiceCatalog is the fixed set of products offered in every location
var ServiceCatalog = []ServiceDefinition{
	{Slug: "development-finance", Name: "Development Finance"},
	{Slug: "bridging-loans", Name: "Bridging Loans"},
	{Slug: "mezzanine-finance", Name: "Mezzanine Finance"},
	{Slug: "commercial-mortgages", Name: "Commercial Mortgages"},
	{Slug: "auction-finance", Name: "Auction Finance"},
	{Slug: "refurbishment-loans", Name: "Refurbishment Loans"},
	{Slug: "land-loans", Name: "Land & Planning Loans"},
}

// ServiceBySlug looks up a catalog entry; ok is false for unknown slugs
func ServiceBySlug(slug string) (ServiceDefinition, bool) {
	for _, s := range ServiceCatalog {
		if s.Slug == slug {
			return s, true
		}
	}
	return ServiceDefinition{}, false
}
