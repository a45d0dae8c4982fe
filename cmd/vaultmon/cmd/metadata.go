package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/vaultmon/pkg/dlogger"
	"github.com/oneconcern/vaultmon/pkg/hierarchy"
	"github.com/oneconcern/vaultmon/pkg/reconcile"
	"github.com/oneconcern/vaultmon/pkg/storage"
	"github.com/oneconcern/vaultmon/pkg/storage/localfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// metadataCmd represents the note metadata related commands
var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Commands to manage the metadata of notes",
	Long: `Commands to manage the hierarchy fields (program, course, class) declared by the frontmatter of notes.

The hierarchy of a note is resolved from the index notes found in its parent directories:
  - the outermost "program-index" note sets the program
  - the nearest "course-index" and "class-index" notes set the course and class

When no index note applies, the hierarchy is inferred from the names of parent directories.
`,
}

func init() {
	addProgramFlag(metadataCmd)
	addExtensionsFlag(metadataCmd)
	addSkipSegmentsFlag(metadataCmd)
	addDefaultProgramFlag(metadataCmd)
	addCacheSizeFlag(metadataCmd)
	rootCmd.AddCommand(metadataCmd)
}

// vaultSession holds what commands need to work on the vault
type vaultSession struct {
	root   string
	store  storage.Store
	engine *reconcile.Engine
	rctx   hierarchy.Context
	logger *zap.Logger
}

func newVaultSession() (*vaultSession, error) {
	logger, err := dlogger.GetLoggerWithFormat(vaultmonFlags.root.logLevel, vaultmonFlags.root.logFormat)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(vaultmonFlags.vault.path)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("vault %q is not a directory", root)
	}

	opts := []hierarchy.Option{hierarchy.RootName(filepath.Base(root))}
	if len(vaultmonFlags.vault.extensions) > 0 {
		opts = append(opts, hierarchy.Extensions(vaultmonFlags.vault.extensions))
	}
	if len(vaultmonFlags.vault.skipSegments) > 0 {
		opts = append(opts, hierarchy.SkipSegments(vaultmonFlags.vault.skipSegments))
	}
	if vaultmonFlags.vault.defaultProgram != "" {
		opts = append(opts, hierarchy.WithDefaultProgram(vaultmonFlags.vault.defaultProgram))
	}
	if vaultmonFlags.vault.cacheSize > 0 {
		opts = append(opts, hierarchy.CacheSize(vaultmonFlags.vault.cacheSize))
	}

	store := storage.Instrument(logger, localfs.NewAt(root))
	return &vaultSession{
		root:   root,
		store:  store,
		engine: reconcile.New(store, reconcile.Logger(logger), reconcile.ResolverOptions(opts...)),
		rctx:   hierarchy.Context{ProgramOverride: strings.TrimSpace(vaultmonFlags.vault.program)},
		logger: logger,
	}, nil
}

func (s *vaultSession) close() {
	_ = s.logger.Sync()
}

// key of a path given on the command line. Paths are relative to the current
// directory, or else to the vault root.
func (s *vaultSession) key(arg string) (string, error) {
	if arg == "" {
		return storage.Root, nil
	}
	p := arg
	if !filepath.IsAbs(p) {
		if _, err := os.Stat(p); err != nil {
			p = filepath.Join(s.root, p)
		}
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is outside of the vault %q", arg, s.root)
	}
	return storage.CleanKey(filepath.ToSlash(rel))
}

func (s *vaultSession) walker(opts ...reconcile.WalkerOption) *reconcile.Walker {
	return reconcile.NewWalker(s.engine, opts...)
}
