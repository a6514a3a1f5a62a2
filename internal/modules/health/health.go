package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the root health/endpoint-map route.
func RegisterRoutes(r gin.IRoutes) {
	r.GET("/", index)
}

func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "LB Blog & Contact API is running",
		"endpoints": gin.H{
			"auth": gin.H{
				"signup":  "POST /api/auth/signup",
				"login":   "POST /api/auth/login",
				"profile": "GET /api/auth/profile (Protected)",
			},
			"blog": gin.H{
				"create":    "POST /api/blog (Protected)",
				"getAll":    "GET /api/blog?blog_site=lb_services",
				"getBySlug": "GET /api/blog/:slug?blog_site=lb_services",
				"update":    "PUT /api/blog/:id?blog_site=lb_services (Protected)",
				"delete":    "DELETE /api/blog/:id?blog_site=lb_services (Protected)",
			},
			"contact": gin.H{
				"submitServices":  "POST /api/contact/services (Public)",
				"submitInteriors": "POST /api/contact/interiors (Public)",
				"getAll":          "GET /api/contact?contact_site=lb_services (Protected)",
				"getStats":        "GET /api/contact/stats?contact_site=lb_services (Protected)",
				"getById":         "GET /api/contact/:id?contact_site=lb_services (Protected)",
				"updateStatus":    "PUT /api/contact/:id/status (Protected)",
				"delete":          "DELETE /api/contact/:id?contact_site=lb_services (Protected)",
			},
		},
	})
}
