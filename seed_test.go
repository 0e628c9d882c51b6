package imfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/imfs/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
- path: /docs
  type: dir
- path: /docs/readme.md
  type: file
  contents: "hello"
- path: /docs/guides/
  type: dir
- path: empty.txt
  type: file
`

const seedJSON = `[
  {"path": "/docs", "type": "dir"},
  {"path": "/docs/readme.md", "type": "file", "contents": "hello"},
  {"path": "/docs/guides/", "type": "dir"},
  {"path": "empty.txt", "type": "file"}
]`

func writeSeed(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	want := []SeedEntry{
		{Path: "/docs", Type: DirNodeType},
		{Path: "/docs/readme.md", Type: FileNodeType, Contents: "hello"},
		{Path: "/docs/guides/", Type: DirNodeType},
		{Path: "empty.txt", Type: FileNodeType},
	}

	for _, c := range []struct{ file, data string }{
		{"seed.yaml", seedYAML},
		{"seed.yml", seedYAML},
		{"seed.json", seedJSON},
	} {
		t.Run(c.file, func(t *testing.T) {
			t.Parallel()
			entries, err := LoadSeedFile(writeSeed(t, c.file, c.data))
			require.NoError(t, err)
			assert.Equal(t, want, entries)
		})
	}
}

func TestLoadSeedFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))

	_, err = LoadSeedFile(writeSeed(t, "seed.txt", seedYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown seed file extension")

	_, err = LoadSeedFile(writeSeed(t, "seed.json", "{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal seed file")
}

func TestApplySeed(t *testing.T) {
	t.Parallel()

	entries, err := LoadSeedFile(writeSeed(t, "seed.yaml", seedYAML))
	require.NoError(t, err)
	ns := New(nil)

	applied := ApplySeed(ns, entries)

	assert.Equal(t, 4, applied)
	want := "/\n" +
		"  docs/\n" +
		"    readme.md\n" +
		"    guides/\n" +
		"  empty.txt\n"
	assert.Equal(t, want, ns.Tree())
	got, err := ns.Read("/docs/readme.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "/", ns.Pwd(), "seeding must not move the cursor")
}

func TestApplySeed_SkipsInvalid(t *testing.T) {
	t.Parallel()

	ns := New(nil)
	entries := []SeedEntry{
		{Path: "/a", Type: DirNodeType},
		{Path: "/a", Type: DirNodeType},             // duplicate
		{Path: "/missing/child", Type: DirNodeType}, // parent absent
		{Path: "/bad*name", Type: FileNodeType},     // invalid char
		{Path: "/a/link", Type: "symlink"},          // unknown type
		{Path: "/a/f", Type: FileNodeType, Contents: "x"},
	}

	applied := ApplySeed(ns, entries)

	assert.Equal(t, 2, applied)
	kind, err := ns.Stat("/a/f")
	require.NoError(t, err)
	assert.Equal(t, namespace.FileKind, kind)
}
