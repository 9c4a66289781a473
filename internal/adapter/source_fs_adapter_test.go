package adapter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mole-works/mend/internal/adapter"
	m "github.com/mole-works/mend/internal/model"
)

// scratchProject lays out a small C project under a temp dir.
func scratchProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"main.c":          "int main() { return 0; }\n",
		"util.h":          "extern int helper(void);\n",
		"README.md":       "docs\n",
		"sub/helper.c":    "int helper(void) { return 1; }\n",
		"sub/deep/leaf.c": "FOO(bar)\n",
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir
}

func origins(sources []m.Source) []string {
	paths := make([]string, 0, len(sources))
	for _, source := range sources {
		paths = append(paths, string(source.Origin))
	}

	return paths
}

func TestGetNonRecursiveStopsAtRoot(t *testing.T) {
	dir := scratchProject(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	sources, err := fsAdapter.Get([]m.Path{m.Path(dir)}, nil)
	require.NoError(t, err)

	paths := origins(sources)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "main.c"),
		filepath.Join(dir, "util.h"),
	}, paths)
}

func TestGetRecursive(t *testing.T) {
	dir := scratchProject(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	sources, err := fsAdapter.Get([]m.Path{m.Path(dir + "/...")}, nil)
	require.NoError(t, err)

	paths := origins(sources)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "main.c"),
		filepath.Join(dir, "util.h"),
		filepath.Join(dir, "sub", "helper.c"),
		filepath.Join(dir, "sub", "deep", "leaf.c"),
	}, paths)
}

func TestGetExcludePatterns(t *testing.T) {
	dir := scratchProject(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	sources, err := fsAdapter.Get([]m.Path{m.Path(dir + "/...")}, []string{`sub/`})
	require.NoError(t, err)

	paths := origins(sources)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "main.c"),
		filepath.Join(dir, "util.h"),
	}, paths)
}

func TestGetRejectsInvalidExclude(t *testing.T) {
	dir := scratchProject(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	_, err := fsAdapter.Get([]m.Path{m.Path(dir)}, []string{`[broken`})
	require.ErrorContains(t, err, "invalid exclude pattern")
}

func TestGetSingleFileRoot(t *testing.T) {
	dir := scratchProject(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	file := filepath.Join(dir, "main.c")

	sources, err := fsAdapter.Get([]m.Path{m.Path(file)}, nil)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.Equal(t, file, string(sources[0].Origin))
	require.Len(t, sources[0].Hash, 64) // hex-encoded SHA-256
}

func TestGetDeduplicatesOverlappingRoots(t *testing.T) {
	dir := scratchProject(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	file := filepath.Join(dir, "main.c")

	sources, err := fsAdapter.Get([]m.Path{m.Path(file), m.Path(file)}, nil)
	require.NoError(t, err)
	require.Len(t, sources, 1)
}

func TestGetMissingRoot(t *testing.T) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	_, err := fsAdapter.Get([]m.Path{m.Path(filepath.Join(t.TempDir(), "nope"))}, nil)
	require.ErrorContains(t, err, "root path error")
}

func TestReadFileAndHashAgree(t *testing.T) {
	dir := scratchProject(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	file := m.Path(filepath.Join(dir, "main.c"))

	content, err := fsAdapter.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "int main() { return 0; }\n", string(content))

	hashA, err := fsAdapter.HashFile(file)
	require.NoError(t, err)

	hashB, err := fsAdapter.HashFile(file)
	require.NoError(t, err)
	require.Equal(t, hashA, hashB)
}
