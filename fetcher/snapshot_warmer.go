package fetcher

import (
	"go.uber.org/zap"

	"stockdir/services"
)

// SnapshotWarmer walks the company directory and resolves today's snapshot
// for every entry, so the daily cache is populated before request traffic
// arrives. Companies whose snapshot already exists cost one cache probe and
// nothing else.
type SnapshotWarmer struct {
	directory *services.DirectoryService
	snapshots *services.SnapshotService
	logger    *zap.SugaredLogger
}

func NewSnapshotWarmer(directory *services.DirectoryService, snapshots *services.SnapshotService, logger *zap.SugaredLogger) *SnapshotWarmer {
	return &SnapshotWarmer{
		directory: directory,
		snapshots: snapshots,
		logger:    logger,
	}
}

func (w *SnapshotWarmer) Run() {
	logger := w.logger

	logger.Info("Running snapshot warm-up job...")

	companies, err := w.directory.List()
	if err != nil {
		logger.Errorf("Failed to fetch list of companies from database: %v", err)
		return
	}

	for _, company := range companies {
		logger.Infof("Warming snapshot for %v", company.Symbol)

		if _, err := w.snapshots.GetSnapshot(company.ID); err != nil {
			logger.Infof("Unable to warm snapshot for %v: %v", company.Symbol, err)
		}
	}
}
