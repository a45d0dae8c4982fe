package reconcile

import (
	"bytes"
	"context"

	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"github.com/oneconcern/vaultmon/pkg/hierarchy"
	"github.com/oneconcern/vaultmon/pkg/reconcile/status"
	"github.com/oneconcern/vaultmon/pkg/storage"
	"go.uber.org/zap"
)

// Engine brings the hierarchy fields declared by a document in line with the hierarchy
// resolved from its location in the vault.
type Engine struct {
	store        storage.Store
	codec        *frontmatter.Codec
	logger       *zap.Logger
	resolver     *hierarchy.Resolver
	resolverOpts []hierarchy.Option
}

// New reconciliation engine over a vault store
func New(store storage.Store, opts ...EngineOption) *Engine {
	e := &Engine{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, apply := range opts {
		apply(e)
	}
	if e.codec == nil {
		e.codec = frontmatter.New(frontmatter.Logger(e.logger))
	}
	ropts := append([]hierarchy.Option{hierarchy.Logger(e.logger), hierarchy.Codec(e.codec)}, e.resolverOpts...)
	e.resolver = hierarchy.New(store, ropts...)
	return e
}

// Resolver used by the engine
func (e *Engine) Resolver() *hierarchy.Resolver {
	return e.resolver
}

// Store of the vault
func (e *Engine) Store() storage.Store {
	return e.store
}

// scoped engine, with its own marker cache and extra logging fields
func (e *Engine) scoped(fields ...zap.Field) *Engine {
	c := *e
	c.resolver = e.resolver.Scoped(fields...)
	if len(fields) > 0 {
		c.logger = e.logger.With(fields...)
		c.codec = e.codec.With(fields...)
	}
	return &c
}

// Reconcile a single document.
//
// Marker documents are left untouched. A hierarchy field is written when it is resolved
// and the document either does not declare it or declares a different value. Every other
// field, and the body, are kept as is. In dry-run mode, the result reports what would be
// written but the store is not updated.
//
// Errors are reported in the result, never returned.
func (e *Engine) Reconcile(ctx context.Context, key string, rctx hierarchy.Context, dryRun bool) FileResult {
	res := FileResult{Path: key, DryRun: dryRun}
	logger := e.logger.With(zap.String("path", key))

	b, err := storage.ReadAll(ctx, e.store, key)
	if err != nil {
		return res.fail(status.ErrRead.Wrap(err))
	}

	doc := e.codec.With(zap.String("path", key)).Parse(b)
	res.Recovered = doc.Recovered
	if hierarchy.IsMarker(doc.Header) {
		logger.Debug("marker document left untouched")
		res.Marker = true
		return res
	}

	info, err := e.resolver.Resolve(ctx, key, rctx)
	if err != nil {
		return res.fail(status.ErrResolve.Wrap(err))
	}
	res.Info = info

	updated, fields := apply(doc.Header, info)
	if len(fields) == 0 {
		logger.Debug("document up to date")
		return res
	}
	res.Modified = true
	res.FieldsUpdated = fields

	if dryRun {
		logger.Info("document would be updated", zap.Strings("fields", fields))
		return res
	}

	out, err := e.codec.Rewrite(doc, updated)
	if err != nil {
		return res.fail(status.ErrWrite.Wrap(err))
	}
	if err := e.store.Put(ctx, key, bytes.NewReader(out)); err != nil {
		return res.fail(status.ErrWrite.Wrap(err))
	}
	logger.Info("document updated", zap.Strings("fields", fields))
	return res
}

// apply the resolved hierarchy to a copy of a header. Fields new to the header are
// appended in hierarchy order.
func apply(h *frontmatter.Header, info hierarchy.Info) (*frontmatter.Header, []string) {
	var fields []string
	updated := h.Clone()
	for _, l := range hierarchy.Fields {
		v := info.Get(l)
		if !v.Resolved() {
			continue
		}
		if existing, ok := h.String(l.Field()); ok && existing == v.Value {
			continue
		}
		updated.Set(l.Field(), v.Value)
		fields = append(fields, l.Field())
	}
	return updated, fields
}
