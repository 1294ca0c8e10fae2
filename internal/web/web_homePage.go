package web

import (
	"github.com/gin-gonic/gin"
)

// homePage handles the root page ("/")
func (s *WebServer) homePage(c *gin.Context) {
	data := s.getBaseTemplateData("Home")
	s.renderTemplate(c, "home.html", data)
}
