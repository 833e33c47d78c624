package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifei6671/translatable"
)

func TestCheck(t *testing.T) {
	en := translatable.MustParseLanguage("en")
	es := translatable.MustParseLanguage("es")

	tree, err := translatable.Merge([]translatable.SourceUnit{{
		Origin: "app.toml",
		Root: translatable.Group{
			"common": translatable.Group{
				"ok":      translatable.Leaf{en: "OK", es: "Vale"},
				"hello":   translatable.Leaf{en: "Hello {name}"},
				"invalid": translatable.Leaf{en: "Hi {first name}", es: "Hola {name}"},
			},
		},
	}}, translatable.Alphabetical, translatable.Ignore)
	require.NoError(t, err)

	res := Check(tree)
	assert.Equal(t, []string{"en", "es"}, res.Languages)
	assert.Equal(t, 3, res.Leaves)
	assert.True(t, res.HasIssues())
	assert.Equal(t, map[string][]string{"common.hello": {"es"}}, res.MissingLanguages)
	require.Contains(t, res.TemplateErrors, "common.invalid")
	assert.Contains(t, res.TemplateErrors["common.invalid"], "en")
	assert.NotContains(t, res.TemplateErrors["common.invalid"], "es")
	assert.Equal(t, []string{"common.hello", "common.invalid"}, res.Paths())
}

func TestCheck_Clean(t *testing.T) {
	en := translatable.MustParseLanguage("en")
	tree, err := translatable.Merge([]translatable.SourceUnit{{
		Origin: "app.toml",
		Root:   translatable.Group{"a": translatable.Group{"b": translatable.Leaf{en: "fine"}}},
	}}, translatable.Alphabetical, translatable.Ignore)
	require.NoError(t, err)

	res := Check(tree)
	assert.False(t, res.HasIssues())
	assert.Empty(t, res.Paths())
}
