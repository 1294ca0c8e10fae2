package web

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/dxdelvin/FinanceAI-DocsAnalyze/internal/config"
	"github.com/gin-gonic/gin"
)

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.Port
}

// getBaseTemplateData creates the common data every page handler passes to
// the base layout.
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:       title,
		AppName:     s.Config.AppName,
		AppVersion:  config.AppVersion,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		Port:        s.GetPort(),
		Debug:       s.Config.Debug,
	}
}

// renderTemplate renders a page inside the base layout. Output is buffered so
// a mid-render failure still yields a clean error response instead of a torn
// half-written page.
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	tmpl := s.lookupTemplate(templateName)
	if tmpl == nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", "unknown template: "+templateName)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("[WEB]: Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// renderError renders the error page, falling back to plain text when the
// error page itself cannot be rendered.
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	log.Printf("[ERROR]: statusCode=%d message='%s' err='%s'", statusCode, message, errstring)
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData("Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	tmpl := s.lookupTemplate("error.html")
	if tmpl == nil {
		c.String(statusCode, "Error: %s", message)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", errorData); err != nil {
		log.Printf("[WEB]: Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s", message)
		return
	}
	c.Data(statusCode, "text/html; charset=utf-8", buf.Bytes())
}
