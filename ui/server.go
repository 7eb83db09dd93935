package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"cancerdash/internal"
	"cancerdash/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// Server is the dashboard web server.
type Server struct {
	router    *gin.Engine
	state     *dashboard.State
	page      dashboard.Page
	templates *template.Template
	logger    *internal.Logger
}

// NewServer builds the page layout once and wires routes for a loaded state.
func NewServer(state *dashboard.State, logger *internal.Logger) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to create templates filesystem: %w", err)
	}
	templates, err := template.New("").Funcs(funcMap()).ParseFS(templatesFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.New(),
		state:     state,
		page:      dashboard.BuildLayout(state),
		templates: templates,
		logger:    logger.With("Server"),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	// Update channel used by the page when a selector changes
	s.router.POST("/_dash-update-component", s.handleUpdateComponent)

	s.router.GET("/api/options", s.handleOptions)
	s.router.GET("/api/chart", s.handleChartJSON)
	s.router.GET("/api/chart.png", s.handleChartPNG)
}

// Handler exposes the router for an http.Server or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
