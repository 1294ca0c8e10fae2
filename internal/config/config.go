// Package config provides configuration management for FinanceAI-DocsAnalyze.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var AppVersion = "-unset-" // will be set at build time

// Environment variable names read by Load
const (
	EnvHost    = "HOST"
	EnvPort    = "PORT"
	EnvDebug   = "DEBUG"
	EnvAppName = "APP_NAME"
)

const (
	// Defaults applied when a variable is absent or unusable
	DefaultHost    = "127.0.0.1"
	DefaultPort    = 8000
	DefaultDebug   = false
	DefaultAppName = "FinanceAI"

	// Default asset locations, relative to the working directory
	DefaultTemplateDir = "web/templates"
	DefaultStaticDir   = "web/static"
)

// Settings holds the web server configuration. Built once at startup and
// passed explicitly to whoever needs it; nothing mutates it afterwards.
type Settings struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Debug       bool   `json:"debug"`
	AppName     string `json:"app_name"`
	SSL         bool   `json:"ssl"`
	CertFile    string `json:"cert_file,omitempty"`
	KeyFile     string `json:"key_file,omitempty"`
	TemplateDir string `json:"template_dir"`
	StaticDir   string `json:"static_dir"`
}

// LoadEnvFile loads a flat key=value file into the process environment.
// Variables already present in the environment keep their values. A missing
// file is not an error.
func LoadEnvFile(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("[CONFIG]: Failed to load env file %s: %v", path, err)
		return
	}
	log.Printf("[CONFIG]: Loaded environment from %s", path)
}

// Load builds Settings from the process environment. Every field has a
// default, so Load never fails: absent or malformed values fall back and the
// fallback is logged.
func Load() *Settings {
	return &Settings{
		Host:        envString(EnvHost, DefaultHost),
		Port:        envPort(EnvPort, DefaultPort),
		Debug:       envBool(EnvDebug, DefaultDebug),
		AppName:     envString(EnvAppName, DefaultAppName),
		TemplateDir: DefaultTemplateDir,
		StaticDir:   DefaultStaticDir,
	}
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envPort(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 || p > 65535 {
		log.Printf("[CONFIG]: Invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return p
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[CONFIG]: Invalid %s=%q, using default %t", key, v, def)
		return def
	}
	return b
}
