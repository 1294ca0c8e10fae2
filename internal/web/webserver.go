// Package web provides the HTTP server and web interface for FinanceAI-DocsAnalyze.
package web

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/dxdelvin/FinanceAI-DocsAnalyze/internal/config"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// WebServer represents the web server
type WebServer struct {
	Router    *gin.Engine
	Config    *config.Settings
	StartTime time.Time // Track server start time for uptime calculations

	tmplMux   sync.RWMutex
	templates map[string]*template.Template // page name -> page parsed with the base layout

	watcher       *fsnotify.Watcher // template reloader, debug mode only
	robotsTxtPath string            // Path to robots.txt file if it exists
}

// TemplateData represents common template data
type TemplateData struct {
	Title       string
	AppName     string
	AppVersion  string
	CurrentTime string
	Port        int
	Debug       bool
}

// NewServer creates a new web server instance. Every call builds a fresh
// server; a missing template or static directory is a fatal setup error.
func NewServer(cfg *config.Settings) (*WebServer, error) {
	// Set Gin to release mode for production
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Configure Gin to trust reverse proxy headers
	// Set trusted proxies for common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if cfg.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	server := &WebServer{
		Router: router,
		Config: cfg,
	}

	// Apply access log, recovery and security middleware
	router.Use(server.ApacheLogFormat())
	router.Use(gin.Recovery())
	router.Use(secure.New(secureConfig))

	if err := server.checkDirs(); err != nil {
		return nil, err
	}
	if err := server.loadTemplates(); err != nil {
		return nil, err
	}
	if cfg.Debug {
		if err := server.watchTemplates(); err != nil {
			log.Printf("[WEB]: Warning: template watcher unavailable: %v", err)
		}
	}

	// Check if a robots.txt file exists next to the static directory
	robotsPath := filepath.Join(filepath.Dir(cfg.StaticDir), "robots.txt")
	if _, err := os.Stat(robotsPath); err == nil {
		server.robotsTxtPath = robotsPath
		log.Printf("[WEB]: Found robots.txt file at: %s", robotsPath)
	} else {
		log.Printf("[WEB]: No robots.txt file found, will use inline version")
	}

	server.setupRoutes()
	return server, nil
}

// checkDirs verifies the template and static directories exist. Setup cannot
// partially fail: a missing directory aborts startup.
func (s *WebServer) checkDirs() error {
	for _, dir := range []string{s.Config.TemplateDir, s.Config.StaticDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("required directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("required directory %s: not a directory", dir)
		}
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Static files first (highest priority)
	s.Router.Static("/static", s.Config.StaticDir)

	// Handle favicon to keep it off the page routes
	s.Router.GET("/favicon.ico", func(c *gin.Context) {
		c.File(filepath.Join(s.Config.StaticDir, "favicon.ico"))
	})
	s.Router.GET("/robots.txt", func(c *gin.Context) {
		// Check if we have a physical robots.txt file
		if s.robotsTxtPath != "" {
			c.File(s.robotsTxtPath)
		} else {
			// Fallback to inline robots.txt with all allowed
			c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
		}
	})
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	// API routes
	s.Router.GET("/api/health", s.getHealth)
	s.Router.GET("/api/health/", s.getHealth)

	// Web pages
	s.Router.GET("/", s.homePage)
}

// Addr returns the listen address derived from the configured host and port.
func (s *WebServer) Addr() string {
	return net.JoinHostPort(s.Config.Host, strconv.Itoa(s.Config.Port))
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := s.Addr()
	s.StartTime = time.Now() // Set the start time for uptime calculations
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		log.Printf("[WEB]: Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("[WEB]: Starting HTTP server on %s", addr)
	return s.Router.Run(addr)
}

// Close logs the uptime and releases the debug template watcher if one is
// running.
func (s *WebServer) Close() error {
	if !s.StartTime.IsZero() {
		log.Printf("[WEB]: Server uptime: %s", time.Since(s.StartTime).Round(time.Second))
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// ApacheLogFormat returns an access-log middleware writing combined log lines.
func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
