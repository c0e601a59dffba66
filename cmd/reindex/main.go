// One-shot repair of block positions for every page: collapses gaps and
// duplicates into a dense 0..N-1 sequence and pushes footer and seo
// blocks back to the end where older writes left them stranded.
//
//	go run ./cmd/reindex -dry-run
package main

import (
	"context"
	"flag"
	"sort"

	"wellnesstal-backend/config"
	"wellnesstal-backend/database"
	"wellnesstal-backend/internal/apperr"
	"wellnesstal-backend/internal/domain/content"
	"wellnesstal-backend/internal/store"

	"github.com/sirupsen/logrus"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report affected pages without writing")
	flag.Parse()

	config.LoadEnv()
	database.InitDB()

	ctx := context.Background()
	log := logrus.WithField("cmd", "reindex")
	s := store.New(database.DB)

	var pages []content.Page
	if err := database.DB.Order("slug ASC").Find(&pages).Error; err != nil {
		log.WithError(err).Fatal("failed to load pages")
	}
	log.Infof("scanning %d pages", len(pages))

	var batch *apperr.PartialBatchFailure
	changedPages := 0

	for _, p := range pages {
		plog := log.WithField("slug", p.Slug)

		blocks, err := s.ListAllBlocks(ctx, p.ID)
		if err != nil {
			plog.WithError(err).Error("failed to load blocks, continuing")
			batch = batch.Add(p.ID, err)
			continue
		}
		moved := countOutOfOrder(blocks)
		if moved == 0 {
			continue
		}
		changedPages++
		if *dryRun {
			plog.Infof("%d block(s) would move", moved)
			continue
		}
		if err := s.ReindexPositions(ctx, p.ID); err != nil {
			plog.WithError(err).Error("reindex failed, continuing")
			batch = batch.Add(p.ID, err)
			continue
		}
		plog.Infof("%d block(s) moved", moved)
	}

	log.Infof("done: %d of %d pages touched (dry-run=%v)", changedPages, len(pages), *dryRun)
	if err := batch.OrNil(); err != nil {
		log.Fatal(err)
	}
}

// countOutOfOrder applies the write path's target ordering without
// persisting anything and counts the blocks whose position would change.
func countOutOfOrder(blocks []content.Block) int {
	ordered := make([]content.Block, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := content.PinnedRank(ordered[i].Type), content.PinnedRank(ordered[j].Type)
		if (ri >= 0) != (rj >= 0) {
			return rj >= 0
		}
		if ri >= 0 && rj >= 0 && ri != rj {
			return ri < rj
		}
		return false
	})
	moved := 0
	for i, b := range ordered {
		if b.Position != i {
			moved++
		}
	}
	return moved
}
