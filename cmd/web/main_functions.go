package main

import (
	"log"
	"os"
	"time"
)

// monitorUpdateFile polls for a '.update' marker dropped by deploy tooling
// and triggers a graceful shutdown. The marker is renamed before signaling.
func monitorUpdateFile(shutdownChan chan<- bool) {
	updateFilePath := ".update"
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	log.Printf("[WEB]: Update file monitor started, checking for '%s' every 60 seconds", updateFilePath)

	for range ticker.C {
		if _, err := os.Stat(updateFilePath); err != nil {
			// File doesn't exist, continue monitoring
			continue
		}
		log.Printf("[WEB]: Update file '%s' detected, triggering graceful shutdown", updateFilePath)

		if err := os.Rename(updateFilePath, updateFilePath+".todo"); err != nil {
			log.Printf("[WEB]: Warning: Failed to rename update file '%s': %v", updateFilePath, err)
			continue
		}

		// Signal shutdown
		select {
		case shutdownChan <- true:
			log.Printf("[WEB]: Shutdown signal sent via update file monitor")
		default:
			log.Printf("[WEB]: Shutdown channel already signaled")
		}
		return
	}
}
