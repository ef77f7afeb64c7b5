package exports

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const leaderLockTTL = 2 * time.Minute

// SnapshotWorker periodically publishes the export. Only the instance
// holding the leader lock uploads on a given tick.
type SnapshotWorker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	exports contracts.ExportUsecase
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewSnapshotWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, exportUsecase contracts.ExportUsecase) *SnapshotWorker {
	return &SnapshotWorker{log: log, cfg: cfg, locker: lockerSvc, exports: exportUsecase}
}

// Start schedules the snapshot. An empty cron spec leaves the worker idle.
func (w *SnapshotWorker) Start(ctx context.Context) {
	spec := w.cfg.Export.SnapshotCronSpec
	if spec == "" {
		w.log.Info("exports.worker: snapshot disabled")
		return
	}

	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.log.Warn("exports.worker: invalid cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running snapshot to finish.
func (w *SnapshotWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *SnapshotWorker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyExportSnapshotLeader, leaderLockTTL)
	if err != nil {
		w.log.Warn("exports.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("exports.worker: another instance holds the leader lock")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyExportSnapshotLeader, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisKeyExportSnapshotLeader, token, leaderLockTTL); err != nil {
					w.log.Warn("exports.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	object, err := w.exports.Publish(ctx)
	if err != nil {
		w.log.Warn("exports.worker: snapshot failed", zap.Error(err))
		return
	}
	w.log.Info("exports.worker: snapshot published",
		zap.String(constvars.LoggingObjectNameKey, object.ObjectName),
		zap.Int(constvars.LoggingCountKey, object.Records),
	)
}
