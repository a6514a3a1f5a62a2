package blog

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lb-platform/core/internal/middleware"
	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/pagination"
	"github.com/lb-platform/core/internal/pkg/response"
	"go.uber.org/zap"
)

const defaultPageSize = 10

// Handler handles blog HTTP requests.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts blog routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("", authMW, h.create)
	rg.GET("", h.list)
	rg.GET("/:blog_slug", h.getBySlug)
	rg.PUT("/:blog_id", authMW, h.update)
	rg.DELETE("/:blog_id", authMW, h.delete)
}

// create POST /api/blog  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	errs, site := dto.validate()
	if len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.BadRequest(c, "Could not read uploaded image")
		return
	}

	admin := middleware.CurrentAdmin(c)
	post, err := h.svc.Create(c.Request.Context(), &dto, site, image, admin.ID)
	if err != nil {
		if errors.Is(err, errUploadFailed) {
			response.BadRequest(c, err.Error())
			return
		}
		h.log.Error("create blog failed", zap.Error(err))
		response.InternalError(c, "Server error while creating blog", err)
		return
	}

	response.Created(c, "Blog created successfully", gin.H{
		"blog_id":   post.ID,
		"blog_slug": post.Slug,
	})
}

// list GET /api/blog
func (h *Handler) list(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	status := c.Query("blog_status")
	if status != "" && !models.ValidBlogStatus(status) {
		response.BadRequest(c, "Invalid status")
		return
	}

	q := pagination.FromContext(c, defaultPageSize)
	posts, pag, err := h.svc.List(c.Request.Context(), site, status, q)
	if err != nil {
		h.log.Error("list blogs failed", zap.Error(err))
		response.InternalError(c, "Server error while fetching blogs", err)
		return
	}

	response.OK(c, "", gin.H{"blogs": posts, "pagination": pag})
}

// getBySlug GET /api/blog/:blog_slug
func (h *Handler) getBySlug(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	post, err := h.svc.GetBySlug(c.Request.Context(), site, c.Param("blog_slug"))
	if err != nil {
		h.log.Error("get blog failed", zap.Error(err))
		response.InternalError(c, "Server error while fetching blog", err)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog not found")
		return
	}

	// Best-effort: a lost increment only skews the advisory view count.
	if err := h.svc.IncrementViews(c.Request.Context(), post.ID); err == nil {
		post.Views++
	}

	response.OK(c, "", gin.H{"blog": post})
}

// update PUT /api/blog/:blog_id  [auth]
func (h *Handler) update(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	dto, err := bindUpdate(c)
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := dto.validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.BadRequest(c, "Could not read uploaded image")
		return
	}

	post, err := h.svc.Update(c.Request.Context(), site, c.Param("blog_id"), dto, image)
	if err != nil {
		if errors.Is(err, errUploadFailed) {
			response.BadRequest(c, err.Error())
			return
		}
		h.log.Error("update blog failed", zap.Error(err))
		response.InternalError(c, "Server error while updating blog", err)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog not found")
		return
	}

	response.OK(c, "Blog updated successfully", nil)
}

// delete DELETE /api/blog/:blog_id  [auth]
func (h *Handler) delete(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), site, c.Param("blog_id"))
	if err != nil {
		h.log.Error("delete blog failed", zap.Error(err))
		response.InternalError(c, "Server error while deleting blog", err)
		return
	}
	if !deleted {
		response.NotFound(c, "Blog not found")
		return
	}

	response.OK(c, "Blog deleted successfully", nil)
}

// siteFromQuery resolves the blog_site query param, writing the 400 itself
// when the param is missing or not one of the two known sites.
func siteFromQuery(c *gin.Context) (models.Site, bool) {
	raw := c.Query("blog_site")
	if raw == "" {
		response.BadRequest(c, "blog_site parameter is required (lb_services or lb_interiors)")
		return "", false
	}
	site, err := models.ParseSite(raw)
	if err != nil {
		response.BadRequest(c, "Invalid site, must be lb_services or lb_interiors")
		return "", false
	}
	return site, true
}

// bindUpdate accepts either JSON or multipart form bodies for updates; the
// multipart path goes through the form so absent fields stay nil.
func bindUpdate(c *gin.Context) (*UpdateBlogDTO, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return updateDTOFromForm(form), nil
	}
	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// readImage pulls the optional blog_image file out of a multipart request.
func readImage(c *gin.Context) (*UploadedImage, error) {
	fh, err := c.FormFile("blog_image")
	if err != nil {
		// No multipart body or no file part: not an error, just no image.
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return &UploadedImage{Name: fh.Filename, ContentType: contentType, Data: data}, nil
}
