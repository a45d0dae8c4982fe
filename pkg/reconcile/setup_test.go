package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"github.com/oneconcern/vaultmon/pkg/storage"
	"github.com/oneconcern/vaultmon/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	notePath  = "MBA/Accounting/Class01/note.md"
	classPath = "MBA/Accounting/Class01/class-index.md"
)

var scenarioVault = map[string]string{
	"MBA/program-index.md":            "---\ntype: program-index\ntitle: MBA\n---\n# MBA\n",
	"MBA/Accounting/course-index.md":  "---\ntype: course-index\ntitle: Accounting\n---\n",
	classPath:                         "---\ntype: class-index\ntitle: Class01\n---\n",
	notePath:                          "---\ntitle: Note\n---\nSome *body*\n\n---\nwith a rule\n",
	"MBA/Accounting/Class01/todo.txt": "not a document",
}

func setupVault(t testing.TB, files map[string]string) (storage.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0755))
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return localfs.New(fs), fs
}

func readFile(t testing.TB, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}

func headerOf(t testing.TB, fs afero.Fs, name string) *frontmatter.Header {
	t.Helper()
	doc := frontmatter.Parse([]byte(readFile(t, fs, name)))
	require.True(t, doc.HasHeader, "expected %s to have a header", name)
	return doc.Header
}

func snapshot(t testing.TB, fs afero.Fs) map[string]string {
	t.Helper()
	res := make(map[string]string)
	require.NoError(t, afero.Walk(fs, ".", func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		res[p] = readFile(t, fs, p)
		return nil
	}))
	return res
}

func localfsOver(fs afero.Fs) storage.Store {
	return localfs.New(fs)
}
