package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lb-platform/core/internal/middleware"
	"github.com/lb-platform/core/internal/modules/auth"
	"github.com/lb-platform/core/internal/modules/blog"
	"github.com/lb-platform/core/internal/modules/contact"
	"github.com/lb-platform/core/internal/modules/health"
	"github.com/lb-platform/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth(a.db, a.tokens)
	limitMW := middleware.RateLimit(a.rdb)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method not allowed"})
	})

	health.RegisterRoutes(r)

	api := r.Group("/api")

	authSvc := auth.NewService(a.db, a.tokens)
	auth.NewHandler(authSvc, a.logger).RegisterRoutes(api.Group("/auth"), authMW)

	blogSvc := blog.NewService(a.db, a.images, a.logger)
	blog.NewHandler(blogSvc, a.logger).RegisterRoutes(api.Group("/blog"), authMW)

	contactSvc := contact.NewService(a.db)
	contact.NewHandler(contactSvc, a.logger).RegisterRoutes(api.Group("/contact"), authMW, limitMW)
}

// debugErrors marks requests so 500 responses may echo internal error detail.
// Mounted in development only.
func debugErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(response.ContextKeyDebug, true)
		c.Next()
	}
}
