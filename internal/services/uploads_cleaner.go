package services

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// UploadsCleaner periodically removes stale files from the upload
// directory. Uploads are normally deleted right after parsing, the cleaner
// catches files left behind by crashes and aborted requests.
type UploadsCleaner struct {
	dir    string
	maxAge time.Duration
	cron   *cron.Cron
}

func NewUploadsCleaner(dir string, maxAge time.Duration, schedule string) (*UploadsCleaner, error) {

	cleaner := &UploadsCleaner{dir: dir, maxAge: maxAge, cron: cron.New()}

	_, err := cleaner.cron.AddFunc(schedule, func() {
		cleaner.clean()
	})
	if err != nil {
		return nil, err
	}

	cleaner.cron.Start()
	log.Infof("uploads cleaner started with schedule %s", schedule)
	return cleaner, nil
}

func (c *UploadsCleaner) Stop() {
	c.cron.Stop()
}

func (c *UploadsCleaner) clean() {

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		log.Errorf("uploads cleaner: failed to read %s: %v", c.dir, err)
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

		if time.Since(info.ModTime()) < c.maxAge {
			continue
		}

		path := filepath.Join(c.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Errorf("uploads cleaner: failed to remove %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Infof("uploads cleaner removed %d stale files", removed)
	}
}
