package reconcile

import (
	"context"

	"github.com/oneconcern/vaultmon/pkg/hierarchy"
	"github.com/oneconcern/vaultmon/pkg/reconcile/status"
	"github.com/oneconcern/vaultmon/pkg/storage"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// Walker reconciles all the documents found under a directory of the vault
type Walker struct {
	engine   *Engine
	logger   *zap.Logger
	reporter func(FileResult)
	runID    string
}

// NewWalker over the vault of an engine
func NewWalker(engine *Engine, opts ...WalkerOption) *Walker {
	w := &Walker{
		engine: engine,
		logger: engine.logger,
	}
	for _, apply := range opts {
		apply(w)
	}
	return w
}

func (w *Walker) newRun(dryRun bool) (*Engine, *zap.Logger, Stats) {
	runID := w.runID
	if runID == "" {
		runID = ksuid.New().String()
	}
	run := zap.String("run", runID)
	return w.engine.scoped(run), w.logger.With(run), NewStats(runID, dryRun)
}

func (w *Walker) report(logger *zap.Logger, stats *Stats, r FileResult) {
	stats.Add(r)
	w.notify(logger, r)
}

func (w *Walker) notify(logger *zap.Logger, r FileResult) {
	if r.Failed() {
		logger.Warn("document not reconciled",
			zap.String("path", r.Path),
			zap.String("category", string(r.Category)),
			zap.Error(r.Err),
		)
	}
	if w.reporter != nil {
		w.reporter(r)
	}
}

// Walk visits the documents under root depth-first, in lexical order, and reconciles them.
// Hidden files and directories are skipped. When root is a document, only this document is reconciled.
//
// A failure on one document or one sub-directory is recorded in the stats and the walk
// goes on. Walk returns an error when root cannot be listed, and status.ErrInterrupted
// when the context is cancelled: the stats then hold the documents processed so far.
func (w *Walker) Walk(ctx context.Context, root string, rctx hierarchy.Context, dryRun bool) (Stats, error) {
	engine, logger, stats := w.newRun(dryRun)

	key, err := storage.CleanKey(root)
	if err != nil {
		return stats, err
	}
	entry, err := engine.store.Stat(ctx, key)
	if err != nil {
		return stats, err
	}

	logger.Info("walk started",
		zap.String("root", key),
		zap.String("store", engine.store.String()),
		zap.Bool("dry-run", dryRun),
	)

	if !entry.IsDir {
		if !hierarchy.HasExtension(entry.Name, engine.resolver.Extensions()) {
			return stats, status.ErrNotDocument.Wrapf("%q", key)
		}
		w.report(logger, &stats, engine.Reconcile(ctx, key, rctx, dryRun))
	} else {
		entries, err := engine.store.ReadDir(ctx, key)
		if err != nil {
			return stats, err
		}
		if err = w.visit(ctx, engine, logger, &stats, entries, rctx); err != nil {
			logger.Warn("walk interrupted", zap.Int("processed", stats.Processed), zap.Error(err))
			return stats, err
		}
	}

	logger.Info("walk completed",
		zap.Int("processed", stats.Processed),
		zap.Int("modified", stats.Modified),
		zap.Int("markers", stats.Markers),
		zap.Int("errors", stats.Errors),
	)
	return stats, nil
}

func (w *Walker) visit(ctx context.Context, engine *Engine, logger *zap.Logger, stats *Stats, entries []storage.Entry, rctx hierarchy.Context) error {
	extensions := engine.resolver.Extensions()
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return status.ErrInterrupted.Wrap(err)
		}
		if storage.IsHidden(e.Name) {
			continue
		}
		if !e.IsDir {
			if hierarchy.HasExtension(e.Name, extensions) {
				w.report(logger, stats, engine.Reconcile(ctx, e.Key, rctx, stats.DryRun))
			}
			continue
		}

		children, err := engine.store.ReadDir(ctx, e.Key)
		if err != nil {
			res := (&FileResult{Path: e.Key, DryRun: stats.DryRun}).fail(status.ErrRead.Wrap(err))
			stats.AddUnlisted(res)
			w.notify(logger, res)
			continue
		}
		if err := w.visit(ctx, engine, logger, stats, children, rctx); err != nil {
			return err
		}
	}
	return nil
}

// ReconcileOne reconciles a single document
func (w *Walker) ReconcileOne(ctx context.Context, key string, rctx hierarchy.Context, dryRun bool) (FileResult, Stats) {
	engine, logger, stats := w.newRun(dryRun)
	res := engine.Reconcile(ctx, key, rctx, dryRun)
	w.report(logger, &stats, res)
	return res, stats
}

// Inspect a document
func (w *Walker) Inspect(ctx context.Context, key string, rctx hierarchy.Context) (Inspection, error) {
	return w.engine.Inspect(ctx, key, rctx)
}

// Resolve the hierarchy of a document
func (w *Walker) Resolve(ctx context.Context, key string, rctx hierarchy.Context) (hierarchy.Info, error) {
	return w.engine.resolver.Resolve(ctx, key, rctx)
}
