package contact

import (
	"github.com/gin-gonic/gin"
	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/pagination"
	"github.com/lb-platform/core/internal/pkg/response"
	"go.uber.org/zap"
)

const defaultPageSize = 20

// Handler handles contact HTTP requests.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts contact routes. The two submission endpoints are
// public (behind the rate limiter); everything else is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, limitMW gin.HandlerFunc) {
	rg.POST("/services", limitMW, h.submitServices)
	rg.POST("/interiors", limitMW, h.submitInteriors)

	rg.GET("", authMW, h.list)
	rg.GET("/stats", authMW, h.stats)
	rg.GET("/:contact_id", authMW, h.getByID)
	rg.PUT("/:contact_id/status", authMW, h.updateStatus)
	rg.DELETE("/:contact_id", authMW, h.delete)
}

// submitServices POST /api/contact/services
func (h *Handler) submitServices(c *gin.Context) {
	var dto ServicesDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := dto.validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	lead, err := h.svc.SubmitServices(c.Request.Context(), &dto, c.ClientIP())
	if err != nil {
		h.log.Error("submit services contact failed", zap.Error(err))
		response.InternalError(c, "Server error while submitting contact form", err)
		return
	}

	response.Created(c, "Thank you! We have received your message and will contact you soon.", gin.H{
		"contact_id": lead.ID,
	})
}

// submitInteriors POST /api/contact/interiors
func (h *Handler) submitInteriors(c *gin.Context) {
	var dto InteriorsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := dto.validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	lead, err := h.svc.SubmitInteriors(c.Request.Context(), &dto, c.ClientIP())
	if err != nil {
		h.log.Error("submit interiors contact failed", zap.Error(err))
		response.InternalError(c, "Server error while submitting consultation request", err)
		return
	}

	response.Created(c, "Thank you for your interest! Our team will contact you soon to discuss your project.", gin.H{
		"contact_id": lead.ID,
	})
}

// list GET /api/contact  [auth]
func (h *Handler) list(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	status := c.Query("contact_status")
	if status != "" && !models.ValidContactStatus(status) {
		response.BadRequest(c, "Valid contact_status is required (new, in_progress, completed, closed)")
		return
	}

	q := pagination.FromContext(c, defaultPageSize)
	leads, pag, err := h.svc.List(c.Request.Context(), site, status, q)
	if err != nil {
		h.log.Error("list contacts failed", zap.Error(err))
		response.InternalError(c, "Server error while fetching contacts", err)
		return
	}

	response.OK(c, "", gin.H{"contacts": leads, "pagination": pag})
}

// stats GET /api/contact/stats  [auth]
func (h *Handler) stats(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	stats, err := h.svc.GetStats(c.Request.Context(), site)
	if err != nil {
		h.log.Error("contact stats failed", zap.Error(err))
		response.InternalError(c, "Server error while fetching statistics", err)
		return
	}

	response.OK(c, "", gin.H{"stats": stats})
}

// getByID GET /api/contact/:contact_id  [auth]
func (h *Handler) getByID(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	lead, err := h.svc.GetByID(c.Request.Context(), site, c.Param("contact_id"))
	if err != nil {
		h.log.Error("get contact failed", zap.Error(err))
		response.InternalError(c, "Server error while fetching contact", err)
		return
	}
	if lead == nil {
		response.NotFound(c, "Contact not found")
		return
	}

	response.OK(c, "", gin.H{"contact": lead})
}

// updateStatus PUT /api/contact/:contact_id/status  [auth]
func (h *Handler) updateStatus(c *gin.Context) {
	var dto UpdateStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Site == "" {
		response.BadRequest(c, "contact_site is required")
		return
	}
	site, err := models.ParseSite(dto.Site)
	if err != nil {
		response.BadRequest(c, "Invalid site, must be lb_services or lb_interiors")
		return
	}
	if !models.ValidContactStatus(dto.Status) {
		response.BadRequest(c, "Valid contact_status is required (new, in_progress, completed, closed)")
		return
	}

	found, err := h.svc.UpdateStatus(c.Request.Context(), site, c.Param("contact_id"), dto.Status)
	if err != nil {
		h.log.Error("update contact status failed", zap.Error(err))
		response.InternalError(c, "Server error while updating contact status", err)
		return
	}
	if !found {
		response.NotFound(c, "Contact not found")
		return
	}

	response.OK(c, "Contact status updated successfully", nil)
}

// delete DELETE /api/contact/:contact_id  [auth]
func (h *Handler) delete(c *gin.Context) {
	site, ok := siteFromQuery(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), site, c.Param("contact_id"))
	if err != nil {
		h.log.Error("delete contact failed", zap.Error(err))
		response.InternalError(c, "Server error while deleting contact", err)
		return
	}
	if !deleted {
		response.NotFound(c, "Contact not found")
		return
	}

	response.OK(c, "Contact deleted successfully", nil)
}

// siteFromQuery resolves the contact_site query param, writing the 400 itself
// when the param is missing or unknown.
func siteFromQuery(c *gin.Context) (models.Site, bool) {
	raw := c.Query("contact_site")
	if raw == "" {
		response.BadRequest(c, "contact_site parameter is required (lb_services or lb_interiors)")
		return "", false
	}
	site, err := models.ParseSite(raw)
	if err != nil {
		response.BadRequest(c, "Invalid site, must be lb_services or lb_interiors")
		return "", false
	}
	return site, true
}
