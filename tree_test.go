package translatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := Merge([]SourceUnit{{Origin: "a.toml", Root: Group{
		"menu": Group{
			"open":  Leaf{en: "Open", fr: "Ouvrir"},
			"close": Leaf{en: "Close"},
		},
		"about": Group{"title": Leaf{es: "Acerca de"}},
	}}}, Alphabetical, Ignore)
	require.NoError(t, err)
	return tree
}

func TestTree_Walk(t *testing.T) {
	tree := sampleTree(t)
	var paths []string
	tree.Walk(func(p Path, _ Leaf) { paths = append(paths, p.String()) })
	assert.Equal(t, []string{"about.title", "menu.close", "menu.open"}, paths)
}

func TestTree_Languages(t *testing.T) {
	assert.Equal(t, []Language{en, es, fr}, sampleTree(t).Languages())
	assert.Empty(t, (&Tree{root: Group{}}).Languages())
}

func TestTree_LeafIsCopy(t *testing.T) {
	tree := sampleTree(t)
	leaf, err := tree.Leaf(ParsePath("menu.open"))
	require.NoError(t, err)
	leaf[en] = "changed"

	got, err := tree.Resolve(ParsePath("menu.open"), en)
	require.NoError(t, err)
	assert.Equal(t, "Open", got)

	_, err = tree.Leaf(ParsePath("menu"))
	require.ErrorIs(t, err, ErrPathNotFound)
}

func TestTree_NilSafe(t *testing.T) {
	var tree *Tree
	_, err := tree.Resolve(ParsePath("a.b"), en)
	require.ErrorIs(t, err, ErrPathNotFound)
	tree.Walk(func(Path, Leaf) { t.Fatal("walked a nil tree") })
}

func TestPath(t *testing.T) {
	assert.Nil(t, ParsePath(""))
	assert.Equal(t, Path{"a", "b"}, ParsePath("a.b"))

	base := make(Path, 1, 4)
	base[0] = "root"
	x := base.Join("x")
	y := base.Join("y")
	assert.Equal(t, "root.x", x.String())
	assert.Equal(t, "root.y", y.String())
}
