package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"/", []string{}},
		{"", []string{}},
		{"/a/b", []string{"a", "b"}},
		{"/a//b/", []string{"a", "b"}},
		{"/a/b/", []string{"a", "b"}},
		{"/a/b ", []string{"a", "b"}},
		{"/a/b /", []string{"a", "b"}},
		{"  /a  ", []string{"a"}},
		{"///", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitPath(tt.in))
		})
	}
}

func TestSplitFilePath(t *testing.T) {
	t.Parallel()

	dir, name, ok := splitFilePath("/a/b/f.txt")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, dir)
	assert.Equal(t, "f.txt", name)

	dir, name, ok = splitFilePath("/f")
	require.True(t, ok)
	assert.Empty(t, dir)
	assert.Equal(t, "f", name)

	_, _, ok = splitFilePath("/")
	assert.False(t, ok)
}

// buildTree makes /a/b (dirs) and /a/f (file)
func buildTree() *Node {
	root := NewDirNode("")
	a := NewDirNode("a")
	a.AddChild(NewDirNode("b"))
	a.AddChild(NewFileNode("f"))
	root.AddChild(a)
	return root
}

func TestWalkDirs(t *testing.T) {
	t.Parallel()

	root := buildTree()

	t.Run("Root", func(t *testing.T) {
		t.Parallel()
		n, err := walkDirs(root, nil)
		require.NoError(t, err)
		assert.Same(t, root, n)
	})

	t.Run("Nested", func(t *testing.T) {
		t.Parallel()
		n, err := walkDirs(root, []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, "b", n.Name())
	})

	t.Run("Missing", func(t *testing.T) {
		t.Parallel()
		_, err := walkDirs(root, []string{"a", "nope"})
		assert.ErrorIs(t, err, ErrPathNotFound)
	})

	t.Run("ThroughFile", func(t *testing.T) {
		t.Parallel()
		_, err := walkDirs(root, []string{"a", "f"})
		assert.ErrorIs(t, err, ErrNotADirectory)
	})

	t.Run("InvalidSegment", func(t *testing.T) {
		t.Parallel()
		_, err := walkDirs(root, []string{"a", "b*"})
		assert.ErrorIs(t, err, ErrInvalidPathCharacter)
	})

	t.Run("MissingBeforeInvalid", func(t *testing.T) {
		t.Parallel()
		_, err := walkDirs(root, []string{"nope", "b*"})
		assert.ErrorIs(t, err, ErrPathNotFound, "segments are checked in walk order")
	})
}
