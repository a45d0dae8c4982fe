package reconcile

import (
	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"github.com/oneconcern/vaultmon/pkg/hierarchy"
	"go.uber.org/zap"
)

// EngineOption is a functor to build an engine with some options
type EngineOption func(*Engine)

// WalkerOption is a functor to build a walker with some options
type WalkerOption func(*Walker)

// Logger for the engine
func Logger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Codec used to read and rewrite documents
func Codec(c *frontmatter.Codec) EngineOption {
	return func(e *Engine) {
		if c != nil {
			e.codec = c
		}
	}
}

// ResolverOptions are passed to the hierarchy resolver of the engine
func ResolverOptions(opts ...hierarchy.Option) EngineOption {
	return func(e *Engine) {
		e.resolverOpts = append(e.resolverOpts, opts...)
	}
}

// Reporter is called with the result of every document visited by a walk
func Reporter(fn func(FileResult)) WalkerOption {
	return func(w *Walker) {
		w.reporter = fn
	}
}

// WalkLogger sets the logger of a walker. It defaults to the logger of its engine
func WalkLogger(l *zap.Logger) WalkerOption {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// RunID forces the identifier of walks, which is otherwise generated for each run
func RunID(id string) WalkerOption {
	return func(w *Walker) {
		w.runID = id
	}
}
