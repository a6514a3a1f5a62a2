package models

import "fmt"

// Site identifies which of the two branded frontends a row belongs to.
// It is a closed set: anything else is rejected at the HTTP boundary.
type Site string

const (
	SiteServices  Site = "lb_services"
	SiteInteriors Site = "lb_interiors"
)

// ParseSite validates a raw site discriminator. Unknown values are an error,
// they never fall back to a default tenant.
func ParseSite(raw string) (Site, error) {
	switch Site(raw) {
	case SiteServices, SiteInteriors:
		return Site(raw), nil
	}
	return "", fmt.Errorf("invalid site %q, must be %s or %s", raw, SiteServices, SiteInteriors)
}

// ImageFolder returns the object-storage key prefix for blog images of this site.
func (s Site) ImageFolder() string {
	if s == SiteInteriors {
		return "lb-interiors-blog"
	}
	return "lb-services-blog"
}

func (s Site) String() string { return string(s) }
