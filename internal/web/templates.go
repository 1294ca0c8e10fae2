package web

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// pageTemplates lists every page rendered inside the base layout.
var pageTemplates = []string{
	"home.html",
	"error.html",
}

// loadTemplates parses each page together with the base layout and swaps the
// parsed set in atomically. Called once at startup and again on reload.
func (s *WebServer) loadTemplates() error {
	basePath := filepath.Join(s.Config.TemplateDir, "base.html")
	parsed := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		tmpl, err := template.ParseFiles(basePath, filepath.Join(s.Config.TemplateDir, page))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}
	s.tmplMux.Lock()
	s.templates = parsed
	s.tmplMux.Unlock()
	return nil
}

// lookupTemplate returns the parsed template for a page, or nil if unknown.
func (s *WebServer) lookupTemplate(name string) *template.Template {
	s.tmplMux.RLock()
	defer s.tmplMux.RUnlock()
	return s.templates[name]
}

// watchTemplates reloads the template set whenever a .html file in the
// template directory changes. Debug mode only; production parses once.
func (s *WebServer) watchTemplates() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.Config.TemplateDir); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if filepath.Ext(event.Name) != ".html" {
					continue
				}
				if err := s.loadTemplates(); err != nil {
					// Editors save in steps, a later event usually completes the set
					log.Printf("[WEB]: Template reload failed after change to %s: %v", event.Name, err)
					continue
				}
				log.Printf("[WEB]: Templates reloaded after change to %s", event.Name)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WEB]: Template watcher error: %v", werr)
			}
		}
	}()
	log.Printf("[WEB]: Debug mode: watching %s for template changes", s.Config.TemplateDir)
	return nil
}
