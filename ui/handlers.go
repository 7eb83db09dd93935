package ui

import (
	"context"
	stderrors "errors"
	"net/http"

	"cancerdash/domain/cancer"
	"cancerdash/domain/chart"
	"cancerdash/internal/dashboard"
	"cancerdash/internal/errors"
	"cancerdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// inputValue is one input of an update request.
type inputValue struct {
	ID       string `json:"id"`
	Property string `json:"property"`
	Value    string `json:"value"`
}

// updateRequest asks for an output to be recomputed from the current
// values of its inputs.
type updateRequest struct {
	Output string       `json:"output" binding:"required"`
	Inputs []inputValue `json:"inputs"`
}

// indexData is what index.html renders.
type indexData struct {
	Page      dashboard.Page
	Callbacks []callbackBinding
}

// callbackBinding tells the page which inputs drive which output.
type callbackBinding struct {
	Output string   `json:"output"`
	Inputs []string `json:"inputs"`
}

// handleIndex renders the dashboard page
func (s *Server) handleIndex(c *gin.Context) {
	var bindings []callbackBinding
	for _, cb := range s.state.Callbacks.Callbacks() {
		b := callbackBinding{Output: cb.Output.Key()}
		for _, in := range cb.Inputs {
			b.Inputs = append(b.Inputs, in.Key())
		}
		bindings = append(bindings, b)
	}

	s.renderTemplate(c, "index.html", indexData{Page: s.page, Callbacks: bindings})
}

// handleUpdateComponent recomputes one output from its inputs
func (s *Server) handleUpdateComponent(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.Wrap(errors.InvalidInput(err.Error()), "invalid update request"))
		return
	}

	output, err := dashboard.ParseProperty(req.Output)
	if err != nil {
		s.respondError(c, err)
		return
	}

	values := make(map[string]string, len(req.Inputs))
	for _, in := range req.Inputs {
		values[dashboard.Property{ID: in.ID, Property: in.Property}.Key()] = in.Value
	}
	s.logger.Trace("update %s from %v", req.Output, values)

	result, err := s.state.Callbacks.Dispatch(c.Request.Context(), req.Output, values)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{
			output.ID: gin.H{output.Property: result},
		},
	})
}

// handleOptions returns the selector options and defaults
func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions":       s.page.Region,
		"cancer_types":  s.page.Cancer,
		"default_graph": dashboard.GraphID,
	})
}

// handleChartJSON returns the chart for ?region=&cancer= as JSON
func (s *Server) handleChartJSON(c *gin.Context) {
	spec, err := s.chartFromQuery(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

// handleChartPNG returns the chart for ?region=&cancer= as a PNG image
func (s *Server) handleChartPNG(c *gin.Context) {
	spec, err := s.chartFromQuery(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(spec.Valued()) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	img, err := RenderPNG(spec, DefaultImageSize)
	if err != nil {
		s.respondError(c, errors.Wrap(err, "failed to draw chart"))
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// chartFromQuery renders through the registered graph callback so every
// route shares one code path.
func (s *Server) chartFromQuery(c *gin.Context) (*chart.Spec, error) {
	values := map[string]string{
		dashboard.RegionDropdownID + ".value": c.DefaultQuery("region", cancer.AllRegions),
		dashboard.CancerDropdownID + ".value": c.DefaultQuery("cancer", s.page.Cancer.Value),
	}
	result, err := s.state.Callbacks.Dispatch(c.Request.Context(), dashboard.GraphID+".figure", values)
	if err != nil {
		return nil, err
	}
	spec, ok := result.(*chart.Spec)
	if !ok {
		return nil, errors.InternalError("graph callback returned an unexpected value")
	}
	return spec, nil
}

// respondError logs a failed request and maps the error code to a status.
func (s *Server) respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)
	if stderrors.Is(err, context.Canceled) {
		status = http.StatusRequestTimeout
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request %s %s failed (%s): %v", middleware.GetRequestID(c), c.Request.URL.Path, code, err)
	} else {
		s.logger.Warn("request %s %s rejected (%s): %v", middleware.GetRequestID(c), c.Request.URL.Path, code, err)
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error":      err.Error(),
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

func statusForCode(code string) int {
	switch code {
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	default:
		// Render failures (unknown column, non-numeric cell) surface as
		// server errors, like any other failure inside the callback.
		return http.StatusInternalServerError
	}
}
