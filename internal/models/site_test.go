package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSite(t *testing.T) {
	site, err := ParseSite("lb_services")
	assert.NoError(t, err)
	assert.Equal(t, SiteServices, site)

	site, err = ParseSite("lb_interiors")
	assert.NoError(t, err)
	assert.Equal(t, SiteInteriors, site)
}

func TestParseSiteRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "lb_servicesx", "LB_SERVICES", "default", "lb services"} {
		_, err := ParseSite(raw)
		assert.Error(t, err, "ParseSite(%q) should fail", raw)
	}
}

func TestSiteImageFolder(t *testing.T) {
	assert.Equal(t, "lb-services-blog", SiteServices.ImageFolder())
	assert.Equal(t, "lb-interiors-blog", SiteInteriors.ImageFolder())
}

func TestValidContactStatus(t *testing.T) {
	for _, s := range []string{ContactNew, ContactInProgress, ContactCompleted, ContactClosed} {
		assert.True(t, ValidContactStatus(s))
	}
	for _, s := range []string{"", "resolved", "contacted", "NEW"} {
		assert.False(t, ValidContactStatus(s))
	}
}

func TestValidBlogStatus(t *testing.T) {
	for _, s := range []string{BlogDraft, BlogPublished, BlogArchived} {
		assert.True(t, ValidBlogStatus(s))
	}
	assert.False(t, ValidBlogStatus("published!"))
	assert.False(t, ValidBlogStatus(""))
}
