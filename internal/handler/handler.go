package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nebari-dev/nebari-software-pack-template/internal/logger"
	"github.com/nebari-dev/nebari-software-pack-template/internal/middleware"
)

const pageTitle = "Auth-Aware Nebari Pack"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the public routes. The engine must already have
// the identity middleware and the embedded templates installed.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)
	r.GET("/", h.index)
	r.GET("/api/me", h.me)

	for _, route := range r.Routes() {
		logger.Debug("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}
}

// health is the liveness probe.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// index renders the caller's identity as read from the gateway cookie.
func (h *Handler) index(c *gin.Context) {
	p := middleware.PrincipalFromContext(c.Request.Context())

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":         pageTitle,
		"authenticated": p.Authenticated,
		"user_info":     p.UserInfo,
	})
}

func (h *Handler) me(c *gin.Context) {
	p := middleware.PrincipalFromContext(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"authenticated": p.Authenticated,
		"user_info":     p.UserInfo,
	})
}
