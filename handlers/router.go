package handlers

import (
	"folio/database"
	"folio/middleware"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	AllowedOrigins []string
	// StaticDir holds the built front end. Empty disables static serving.
	StaticDir string
}

// NewRouter wires middleware and routes around store.
func NewRouter(store database.Store, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), middleware.CORS(opts.AllowedOrigins))

	r.GET("/health", HealthCheck)
	r.GET("/ready", Ready(store))

	api := r.Group("/api")
	api.POST("/messages", CreateMessage(store))
	api.GET("/projects", ListProjects(store))
	api.GET("/projects/:id", GetProject(store))

	if opts.StaticDir != "" {
		r.NoRoute(serveSPA(opts.StaticDir))
	}

	return r
}

// serveSPA serves files from dir and falls back to index.html so client-side
// routes resolve. Unknown /api paths stay 404.
func serveSPA(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")

	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if strings.HasPrefix(urlPath, "/api/") || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+urlPath)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		c.File(index)
	}
}
