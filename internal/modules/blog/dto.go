package blog

import (
	"mime/multipart"
	"strings"

	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/response"
)

// CreateBlogDTO is the multipart form body for creating a blog post.
type CreateBlogDTO struct {
	Title       string `form:"blog_title"`
	Excerpt     string `form:"blog_excerpt"`
	Description string `form:"blog_description"`
	Content     string `form:"blog_content"`
	Tags        string `form:"blog_tags"` // comma-separated
	Author      string `form:"blog_author"`
	Site        string `form:"blog_site"`
	Status      string `form:"blog_status"`
}

func (d *CreateBlogDTO) validate() ([]response.FieldError, models.Site) {
	var errs []response.FieldError
	d.Title = strings.TrimSpace(d.Title)
	d.Content = strings.TrimSpace(d.Content)
	d.Author = strings.TrimSpace(d.Author)

	if d.Title == "" {
		errs = append(errs, response.FieldError{Field: "blog_title", Message: "Title is required"})
	}
	if d.Content == "" {
		errs = append(errs, response.FieldError{Field: "blog_content", Message: "Content is required"})
	}
	if d.Author == "" {
		errs = append(errs, response.FieldError{Field: "blog_author", Message: "Author is required"})
	}
	site, err := models.ParseSite(d.Site)
	if err != nil {
		errs = append(errs, response.FieldError{Field: "blog_site", Message: "Invalid site, must be lb_services or lb_interiors"})
	}
	if d.Status != "" && !models.ValidBlogStatus(d.Status) {
		errs = append(errs, response.FieldError{Field: "blog_status", Message: "Invalid status"})
	}
	return errs, site
}

// UpdateBlogDTO is the partial-update body. Nil means the field is absent and
// stays unchanged; a present empty string clears free-text fields but is
// rejected for the status enum.
type UpdateBlogDTO struct {
	Title       *string `json:"blog_title"`
	Excerpt     *string `json:"blog_excerpt"`
	Description *string `json:"blog_description"`
	Content     *string `json:"blog_content"`
	Tags        *string `json:"blog_tags"`
	Author      *string `json:"blog_author"`
	Status      *string `json:"blog_status"`
}

func (d *UpdateBlogDTO) validate() []response.FieldError {
	var errs []response.FieldError
	if d.Title != nil && strings.TrimSpace(*d.Title) == "" {
		errs = append(errs, response.FieldError{Field: "blog_title", Message: "Title cannot be empty"})
	}
	if d.Status != nil && !models.ValidBlogStatus(*d.Status) {
		errs = append(errs, response.FieldError{Field: "blog_status", Message: "Invalid status"})
	}
	return errs
}

// updateDTOFromForm reads a multipart form into the DTO, keeping the
// absent-vs-empty distinction the JSON path gets for free.
func updateDTOFromForm(form *multipart.Form) *UpdateBlogDTO {
	get := func(key string) *string {
		vs, ok := form.Value[key]
		if !ok || len(vs) == 0 {
			return nil
		}
		v := vs[0]
		return &v
	}
	return &UpdateBlogDTO{
		Title:       get("blog_title"),
		Excerpt:     get("blog_excerpt"),
		Description: get("blog_description"),
		Content:     get("blog_content"),
		Tags:        get("blog_tags"),
		Author:      get("blog_author"),
		Status:      get("blog_status"),
	}
}

// parseTags splits a comma-separated tag string, dropping empties.
func parseTags(raw string) models.StringArray {
	parts := strings.Split(raw, ",")
	tags := make(models.StringArray, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// UploadedImage carries a decoded multipart file into the service layer.
type UploadedImage struct {
	Name        string
	ContentType string
	Data        []byte
}
