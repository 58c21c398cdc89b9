package utils

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"homelearn/config"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long a temp upload may sit before the sweeper removes it.
// Course files are deleted inline after ingestion; anything older than this
// belongs to a request that died mid-flight.
const staleAfter = time.Hour

// InitializeUploadSweeper starts the hourly sweep of the temp upload dir.
func InitializeUploadSweeper() {
	log.Println("[UPLOAD-SWEEPER] Initializing upload sweeper...")

	c := cron.New()
	c.AddFunc("@hourly", SweepTmpUploads)
	c.Start()

	log.Println("[UPLOAD-SWEEPER] Upload sweeper started - runs hourly")
}

// SweepTmpUploads removes stale files from the temp upload directory.
func SweepTmpUploads() {
	tmpDir := TmpUploadDir(config.AppConfig.UploadDir)

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[UPLOAD-SWEEPER] Error reading %s: %v", tmpDir, err)
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < staleAfter {
			continue
		}
		if err := os.Remove(filepath.Join(tmpDir, entry.Name())); err != nil {
			log.Printf("[UPLOAD-SWEEPER] Error removing %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("[UPLOAD-SWEEPER] Removed %d stale upload(s)", removed)
	}
}
