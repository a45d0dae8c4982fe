package hierarchy

import (
	"strings"

	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"go.uber.org/zap"
)

const (
	// DefaultProgram is the program of documents for which no program could be resolved
	DefaultProgram = "Default Program"

	// DefaultCacheSize is the number of directories for which markers are kept in a scoped resolver
	DefaultCacheSize = 1024
)

var (
	// DefaultExtensions are the extensions of vault documents
	DefaultExtensions = []string{".md"}

	// DefaultSkipSegments are directory names which carry no hierarchy meaning.
	// Numbered directories (e.g. "01") are skipped as well.
	DefaultSkipSegments = []string{"projects", "materials", "resources", "attachments", "archive"}
)

// Option is a functor to build a resolver with some options
type Option func(*Resolver)

// Logger for the resolver
func Logger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// Codec used to parse ancestor documents
func Codec(c *frontmatter.Codec) Option {
	return func(r *Resolver) {
		if c != nil {
			r.codec = c
		}
	}
}

// WithPolicy sets the marker selection policy. It defaults to DefaultPolicy
func WithPolicy(p Policy) Option {
	return func(r *Resolver) {
		if len(p) > 0 {
			r.policy = p
		}
	}
}

// SkipSegments replaces the set of non-semantic directory names ignored by positional inference
func SkipSegments(names []string) Option {
	return func(r *Resolver) {
		r.skip = make(map[string]struct{}, len(names))
		for _, n := range names {
			r.skip[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
		}
	}
}

// WithDefaultProgram sets the program of documents for which nothing could be resolved
func WithDefaultProgram(program string) Option {
	return func(r *Resolver) {
		if program != "" {
			r.defaultProgram = program
		}
	}
}

// Extensions of documents considered as marker candidates. It defaults to DefaultExtensions
func Extensions(exts []string) Option {
	return func(r *Resolver) {
		if len(exts) == 0 {
			return
		}
		r.extensions = NormalizeExtensions(exts)
	}
}

// RootName names the vault root directory, used as the value of markers located there without a title
func RootName(name string) Option {
	return func(r *Resolver) {
		r.rootName = name
	}
}

// CacheSize sets the size of the marker cache of scoped resolvers. 0 disables caching
func CacheSize(size int) Option {
	return func(r *Resolver) {
		if size >= 0 {
			r.cacheSize = size
		}
	}
}

// NormalizeExtensions lower-cases extensions and makes sure they start with a dot
func NormalizeExtensions(exts []string) []string {
	res := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		res = append(res, e)
	}
	return res
}

// HasExtension tells if a name has one of the given extensions (case insensitive)
func HasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, e := range exts {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}
