package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lb-platform/core/internal/middleware"
	"github.com/lb-platform/core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles auth HTTP requests.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
	rg.GET("/profile", authMW, h.profile)
}

// signup POST /api/auth/signup
func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := dto.validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	admin, err := h.svc.Signup(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.BadRequest(c, "Admin with this email already exists")
			return
		}
		h.log.Error("signup failed", zap.Error(err))
		response.InternalError(c, "Server error during signup", err)
		return
	}

	response.Created(c, "Admin registered successfully", gin.H{"admin_id": admin.ID})
}

// login POST /api/auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := dto.validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	token, admin, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidCredentials):
			response.BadRequest(c, "Invalid email or password")
		case errors.Is(err, errInactive):
			response.BadRequest(c, "Your account is inactive")
		default:
			h.log.Error("login failed", zap.Error(err))
			response.InternalError(c, "Server error during login", err)
		}
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token": token,
		"admin": toSummary(admin),
	})
}

// profile GET /api/auth/profile  [auth]
func (h *Handler) profile(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		response.Unauthorized(c, "Admin not found or inactive")
		return
	}
	response.OK(c, "", gin.H{"admin": toSummary(admin)})
}
