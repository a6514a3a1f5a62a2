package models

// Blog statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
	BlogArchived  = "archived"
)

// ValidBlogStatus reports whether s is a known blog status.
func ValidBlogStatus(s string) bool {
	return s == BlogDraft || s == BlogPublished || s == BlogArchived
}

// BlogModel is a blog post. Both sites share one table; rows are scoped by
// the site column, and slugs are unique per site rather than globally.
type BlogModel struct {
	Base
	Site        Site        `json:"blog_site"        gorm:"type:varchar(20);not null;uniqueIndex:idx_blogs_site_slug;index"`
	Title       string      `json:"blog_title"       gorm:"not null"`
	Slug        string      `json:"blog_slug"        gorm:"not null;uniqueIndex:idx_blogs_site_slug"`
	Excerpt     string      `json:"blog_excerpt"     gorm:"type:text"`
	Description string      `json:"blog_description" gorm:"type:text"`
	Content     string      `json:"blog_content"     gorm:"type:longtext"`
	Image       string      `json:"blog_image"`
	ImageKey    string      `json:"-"                gorm:"column:blog_image_key"`
	Tags        StringArray `json:"blog_tags"        gorm:"type:text"`
	Author      string      `json:"blog_author"      gorm:"not null"`
	Status      string      `json:"blog_status"      gorm:"type:varchar(20);default:draft;index"`
	Views       int         `json:"blog_views"       gorm:"default:0"`
	CreatedBy   string      `json:"created_by"       gorm:"type:char(36);index"`
}

func (BlogModel) TableName() string { return "blogs" }
