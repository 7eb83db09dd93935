package ui

import (
	"io/fs"
	"net/http"

	"cancerdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware and static assets
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID(s.logger))

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		// embed guarantees the directory; keep serving pages without assets
		s.logger.Error("static filesystem unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}
