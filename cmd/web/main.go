// Web server entrypoint for FinanceAI-DocsAnalyze
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/dxdelvin/FinanceAI-DocsAnalyze/internal/config"
	"github.com/dxdelvin/FinanceAI-DocsAnalyze/internal/web"
	prof "github.com/go-while/go-cpu-mem-profiler"
)

var (
	// command-line flags
	webhost      string
	webport      int
	webssl       bool
	webcertFile  string
	webkeyFile   string
	debugMode    bool
	envFile      string
	templateDir  string
	staticDir    string
	pprofWebAddr string
	showVersion  bool
)

var Prof *prof.Profiler

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.StringVar(&webhost, "webhost", "", "Bind address for the web server (overrides HOST)")
	flag.IntVar(&webport, "webport", 0, "Web server port (overrides PORT)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&debugMode, "debug", false, "Enable debug mode (overrides DEBUG)")
	flag.StringVar(&envFile, "envfile", ".env", "Path to env file with KEY=value pairs (a missing file is ignored)")
	flag.StringVar(&templateDir, "templates", "", "Template directory (default: web/templates)")
	flag.StringVar(&staticDir, "static", "", "Static assets directory (default: web/static)")
	flag.StringVar(&pprofWebAddr, "pprofweb", "", "Start pprof web server on this address (e.g. :51111)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("FinanceAI-DocsAnalyze web server (version: %s)\n", appVersion)
		os.Exit(0)
	}

	log.Printf("Starting FinanceAI-DocsAnalyze: Web Server (version: %s)", appVersion)

	// Load configuration from the environment, with the env file as fallback source
	config.LoadEnvFile(envFile)
	settings := config.Load()

	// Override config with command-line flags if provided
	if webhost != "" {
		settings.Host = webhost
		log.Printf("[WEB]: Overriding bind host with command-line flag: %s", settings.Host)
	}
	if webport > 0 {
		// Validate port
		if webport < 1024 || webport > 65535 {
			log.Fatalf("[WEB]: Invalid port number: %d (must be between 1024 and 65535)", webport)
		}
		settings.Port = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", settings.Port)
	}
	if webssl {
		settings.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		settings.CertFile = webcertFile
		log.Printf("[WEB]: SSL cert file set: %s", settings.CertFile)
	}
	if webkeyFile != "" {
		settings.KeyFile = webkeyFile
		log.Printf("[WEB]: SSL key file set: %s", settings.KeyFile)
	}
	if debugMode {
		settings.Debug = true
		log.Printf("[WEB]: Debug mode enabled via command-line flag")
	}
	if templateDir != "" {
		settings.TemplateDir = templateDir
	}
	if staticDir != "" {
		settings.StaticDir = staticDir
	}
	log.Printf("[WEB]: Using WEB configuration: %#v", settings)

	if pprofWebAddr != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(pprofWebAddr)
		log.Printf("[WEB]: pprof web server listening on %s", pprofWebAddr)
	}

	server, err := web.NewServer(settings)
	if err != nil {
		log.Fatalf("[WEB]: Failed to set up web server: %v", err)
	}

	protocol := "http"
	if settings.SSL {
		protocol = "https"
	}
	log.Printf("[WEB]: Starting %s web server on %s://%s", settings.AppName, protocol, server.Addr())

	// Set up cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt) // Cross-platform (Ctrl+C on both Windows and Linux)

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	// Start update file monitor in a separate goroutine
	updateFileChan := make(chan bool, 1)
	go monitorUpdateFile(updateFileChan)

	// Wait for either shutdown signal, server error, or update file
	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	case <-updateFileChan:
		log.Printf("[WEB]: Update file detected, initiating graceful shutdown for update...")
	}

	if err := server.Close(); err != nil {
		log.Printf("[WEB]: Error closing web server: %v", err)
	}
	log.Printf("[WEB]: Graceful shutdown completed")
} // end main
