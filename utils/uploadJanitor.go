package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"matrimony/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logJanitor logs janitor events with timestamp
func logJanitor(message string) {
	log.Printf("[UPLOAD-JANITOR %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeUploadJanitor schedules SweepOrphanedUploads. An empty schedule
// disables it and returns a nil scheduler.
func InitializeUploadJanitor(db *gorm.DB, store *FileStore, schedule string, grace time.Duration) (*cron.Cron, error) {
	if schedule == "" {
		logJanitor("Disabled (JANITOR_SCHEDULE is empty)")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		removed, err := SweepOrphanedUploads(db, store, grace)
		if err != nil {
			logJanitor("Sweep failed: " + err.Error())
			return
		}
		logJanitor(fmt.Sprintf("Sweep finished, removed %d orphaned file(s)", removed))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logJanitor("Started with schedule " + schedule)
	return c, nil
}

// SweepOrphanedUploads deletes files older than grace that no row points at.
// These are left behind when a request dies between the disk write and the insert.
func SweepOrphanedUploads(db *gorm.DB, store *FileStore, grace time.Duration) (int, error) {
	referenced, err := referencedUploads(db)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-grace)
	removed := 0
	for _, folder := range AllowedFolders {
		entries, err := os.ReadDir(filepath.Join(store.Root, folder))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, err
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			url := "/" + folder + "/" + entry.Name()
			if referenced[UploadKey(url)] {
				continue
			}
			if err := store.Remove(url); err != nil {
				logJanitor("Error removing " + url + ": " + err.Error())
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// referencedUploads collects every stored path, keyed by UploadKey. Document
// rows written by multer hold "uploads/<name>" without the leading slash.
func referencedUploads(db *gorm.DB) (map[string]bool, error) {
	referenced := make(map[string]bool)

	plucks := []struct {
		model  interface{}
		column string
	}{
		{&models.SliderImage{}, "imageUrl"},
		{&models.GalleryImage{}, "imageUrl"},
		{&models.BureauDocument{}, "file_path"},
		{&models.DistributorDocument{}, "file_path"},
	}
	for _, p := range plucks {
		var urls []string
		if err := db.Model(p.model).Pluck(p.column, &urls).Error; err != nil {
			return nil, err
		}
		for _, u := range urls {
			referenced[UploadKey(u)] = true
		}
	}

	var banners []*string
	if err := db.Model(&models.Bureau{}).Pluck("welcomeImageBanner", &banners).Error; err != nil {
		return nil, err
	}
	for _, b := range banners {
		if b != nil {
			referenced[UploadKey(*b)] = true
		}
	}

	return referenced, nil
}
