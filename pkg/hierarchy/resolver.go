package hierarchy

import (
	"context"
	"path"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/oneconcern/vaultmon/pkg/errors"
	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"github.com/oneconcern/vaultmon/pkg/storage"
	"go.uber.org/zap"
)

var (
	// ErrOutsideVault is returned when a document is not located under the vault root
	ErrOutsideVault = errors.New("document is outside of the vault root")

	// ErrScan is returned when an ancestor directory cannot be listed
	ErrScan = errors.New("cannot scan ancestor directory")
)

// Resolver computes the hierarchy inherited by documents from the marker documents
// declared in their ancestor directories.
//
// A resolver only reads from its store.
type Resolver struct {
	store          storage.Store
	codec          *frontmatter.Codec
	logger         *zap.Logger
	policy         Policy
	skip           map[string]struct{}
	defaultProgram string
	extensions     []string
	rootName       string
	cacheSize      int

	// markers by directory, only for scoped resolvers
	cache *lru.Cache
}

// New resolver reading documents from a store
func New(store storage.Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:          store,
		logger:         zap.NewNop(),
		policy:         DefaultPolicy,
		defaultProgram: DefaultProgram,
		extensions:     DefaultExtensions,
		cacheSize:      DefaultCacheSize,
	}
	SkipSegments(DefaultSkipSegments)(r)
	for _, apply := range opts {
		apply(r)
	}
	if r.codec == nil {
		r.codec = frontmatter.New(frontmatter.Logger(r.logger))
	}
	return r
}

// Scoped returns a resolver with the same settings and its own marker cache.
//
// Markers are read once per directory by a scoped resolver: it must not outlive
// a pass over the vault during which markers are not modified.
// Fields are added to the logging context of the scoped resolver.
func (r *Resolver) Scoped(fields ...zap.Field) *Resolver {
	c := *r
	c.cache = nil
	if len(fields) > 0 {
		c.logger = r.logger.With(fields...)
		c.codec = r.codec.With(fields...)
	}
	if r.cacheSize > 0 {
		// lru.New only fails on a non-positive size
		c.cache, _ = lru.New(r.cacheSize)
	}
	return &c
}

// Extensions of vault documents
func (r *Resolver) Extensions() []string {
	return append([]string(nil), r.extensions...)
}

// Resolve the hierarchy of a document.
//
// The program override of the context always wins. Otherwise, each level is taken from
// the markers found in ancestor directories, selected by the policy, then inferred from
// the position of the document in the vault. A document with no program resolved gets
// the default program. Course and class are left unresolved rather than guessed.
func (r *Resolver) Resolve(ctx context.Context, key string, rctx Context) (Info, error) {
	var info Info
	if rctx.ProgramOverride != "" {
		info.Program = Value{Value: rctx.ProgramOverride, Source: SourceOverride}
	}

	key, root, dirs, err := r.ancestors(key, rctx)
	if err != nil {
		return info, err
	}

	markers, err := r.collect(ctx, dirs)
	if err != nil {
		return info, err
	}
	for _, l := range Fields {
		if info.Get(l).Resolved() {
			continue
		}
		if m, ok := r.policy.Select(l, markers); ok {
			info.set(l, Value{Value: m.Value, Source: SourceMarker, From: m.Key})
		}
	}

	segments := r.semanticSegments(dirs[0], root)
	for i, l := range Fields {
		if info.Get(l).Resolved() || i >= len(segments) {
			continue
		}
		info.set(l, Value{Value: segments[i], Source: SourcePath, From: segments[i]})
	}

	if !info.Program.Resolved() {
		r.logger.Info("ambiguous hierarchy: no program marker nor path segment, using default program",
			zap.String("path", key),
			zap.String("program", r.defaultProgram),
		)
		info.Program = Value{Value: r.defaultProgram, Source: SourceDefault}
	}

	r.logger.Debug("resolved hierarchy",
		zap.String("path", key),
		zap.Stringer("program", info.Program),
		zap.Stringer("course", info.Course),
		zap.Stringer("class", info.Class),
	)
	return info, nil
}

// Markers lists the markers found in the ancestor directories of a document, nearest first
func (r *Resolver) Markers(ctx context.Context, key string, rctx Context) ([]Marker, error) {
	_, _, dirs, err := r.ancestors(key, rctx)
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, dirs)
}

// ancestors lists the directories from the one holding the document (depth 0) up to the vault root
func (r *Resolver) ancestors(key string, rctx Context) (string, string, []string, error) {
	k, err := storage.CleanKey(key)
	if err != nil {
		return "", "", nil, err
	}
	root, err := rctx.Root()
	if err != nil {
		return "", "", nil, err
	}
	if k == root || !within(k, root) {
		return "", "", nil, ErrOutsideVault.Wrapf("%q is not under %q", key, root)
	}

	var dirs []string
	for dir := storage.Dir(k); ; dir = storage.Dir(dir) {
		dirs = append(dirs, dir)
		if dir == root {
			break
		}
	}
	return k, root, dirs, nil
}

func within(key, root string) bool {
	return root == storage.Root || key == root || strings.HasPrefix(key, root+"/")
}

func (r *Resolver) collect(ctx context.Context, dirs []string) ([]Marker, error) {
	var markers []Marker
	for depth, dir := range dirs {
		found, err := r.markersIn(ctx, dir)
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			m.Depth = depth
			markers = append(markers, m)
		}
	}
	return markers, nil
}

// markersIn reads the markers declared by the documents of a single directory, in directory order
func (r *Resolver) markersIn(ctx context.Context, dir string) ([]Marker, error) {
	if r.cache != nil {
		if v, ok := r.cache.Get(dir); ok {
			return v.([]Marker), nil
		}
	}

	entries, err := r.store.ReadDir(ctx, dir)
	if err != nil {
		return nil, ErrScan.Wrap(err)
	}

	var markers []Marker
	for _, e := range entries {
		if e.IsDir || storage.IsHidden(e.Name) || !HasExtension(e.Name, r.extensions) {
			continue
		}
		b, err := storage.ReadAll(ctx, r.store, e.Key)
		if err != nil {
			r.logger.Warn("skipping unreadable document while looking for markers",
				zap.String("path", e.Key), zap.Error(err))
			continue
		}
		doc := r.codec.With(zap.String("path", e.Key)).Parse(b)
		l, ok := MarkerLevel(doc.Header)
		if !ok {
			continue
		}
		value := r.markerValue(doc.Header, dir)
		if value == "" {
			r.logger.Debug("ignoring marker with no title at the vault root", zap.String("path", e.Key))
			continue
		}
		markers = append(markers, Marker{Level: l, Value: value, Key: e.Key})
	}

	if r.cache != nil {
		r.cache.Add(dir, markers)
	}
	return markers, nil
}

// markerValue is the title declared by a marker, or the name of its directory
func (r *Resolver) markerValue(h *frontmatter.Header, dir string) string {
	if title, ok := h.String("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if dir == storage.Root {
		return r.rootName
	}
	return path.Base(dir)
}

// semanticSegments are the directory names between the vault root and a directory,
// without the names which carry no hierarchy meaning
func (r *Resolver) semanticSegments(dir, root string) []string {
	rel := dir
	if root != storage.Root {
		rel = strings.TrimPrefix(strings.TrimPrefix(dir, root), "/")
	}
	if rel == "" || rel == storage.Root {
		return nil
	}

	var segments []string
	for _, s := range strings.Split(rel, "/") {
		if s == "" || storage.IsHidden(s) || r.isSkipped(s) {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func (r *Resolver) isSkipped(segment string) bool {
	if _, ok := r.skip[strings.ToLower(segment)]; ok {
		return true
	}
	return isNumber(segment)
}

func isNumber(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
