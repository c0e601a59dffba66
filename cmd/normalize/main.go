// One-shot batch normalization of asset URLs across all stored block
// content and media records. Replaces the pile of historical per-shape
// rewrite scripts with a single pass over the consolidated rule table.
//
//	go run ./cmd/normalize -dry-run
package main

import (
	"flag"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/apperr"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/domain/media"
	"wellnesstal-backend/internal/normalize"

	"github.com/sirupsen/logrus"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report changes without writing")
	flag.Parse()

	config.LoadEnv()
	database.InitDB()

	log := logrus.WithField("cmd", "normalize")
	n := normalize.New(config.PUBLIC_BASE_URL)

	var batch *apperr.PartialBatchFailure
	fieldsChanged := 0
	blocksChanged := 0

	var blocks []content.Block
	if err := database.DB.Find(&blocks).Error; err != nil {
		log.WithError(err).Fatal("failed to load blocks")
	}
	log.Infof("scanning %d blocks", len(blocks))

	// sequential on purpose: deterministic audit output, no write races
	// on a page's block set
	for _, b := range blocks {
		out, stats, err := n.Document(b.Content)
		if err != nil {
			log.WithField("block", b.ID).WithError(err).Error("unreadable content, skipping")
			batch = batch.Add(b.ID, err)
			continue
		}
		for _, bad := range stats.Malformed {
			log.WithField("block", b.ID).Warnf("malformed URL left untouched: %s", bad)
		}
		if stats.Changed == 0 {
			continue
		}

		blocksChanged++
		fieldsChanged += stats.Changed
		log.WithField("block", b.ID).Infof("%d field(s) rewritten (type=%s)", stats.Changed, b.Type)

		if *dryRun {
			continue
		}
		if err := database.DB.Model(&content.Block{}).
			Where("id = ?", b.ID).
			Update("content", []byte(out)).Error; err != nil {
			log.WithField("block", b.ID).WithError(err).Error("update failed, continuing")
			batch = batch.Add(b.ID, err)
		}
	}

	// media rows carry the canonical URL denormalized; keep them in step
	var files []media.MediaFile
	if err := database.DB.Find(&files).Error; err != nil {
		log.WithError(err).Fatal("failed to load media files")
	}
	for _, f := range files {
		want := config.PUBLIC_BASE_URL + "/api/images/" + f.Path
		if f.URL == want {
			continue
		}
		fieldsChanged++
		log.WithField("media", f.ID).Infof("url %s -> %s", f.URL, want)
		if *dryRun {
			continue
		}
		if err := database.DB.Model(&media.MediaFile{}).
			Where("id = ?", f.ID).
			Update("url", want).Error; err != nil {
			log.WithField("media", f.ID).WithError(err).Error("update failed, continuing")
			batch = batch.Add(f.ID, err)
		}
	}

	log.Infof("done: %d blocks changed, %d fields rewritten (dry-run=%v)", blocksChanged, fieldsChanged, *dryRun)
	if err := batch.OrNil(); err != nil {
		log.Fatal(err)
	}
}
