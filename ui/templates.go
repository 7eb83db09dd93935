package ui

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"selected": func(current, value string) bool { return current == value },
	}
}

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Render to a buffer first so a template error never sends a half page.
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template %s failed: %v", templateName, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("writing %s response: %v", templateName, err)
	}
}
