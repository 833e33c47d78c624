package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lifei6671/translatable/cmd/translatable-lint/checker"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(t.TempDir(), "none.toml"),
		"--path", "../../testdata/translations",
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLint_Text(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Total translations: 6")
	assert.Contains(t, out, "--- [greetings.good_morning] ---")
	assert.NotContains(t, out, "No issues found")
}

func TestLint_YAML(t *testing.T) {
	out, err := execute(t, "--format", "yaml")
	require.NoError(t, err)

	var res checker.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"en", "es", "fr"}, res.Languages)
	assert.Equal(t, []string{"es", "fr"}, res.MissingLanguages["greetings.good_morning"])
	assert.Equal(t, []string{"fr"}, res.MissingLanguages["common.greeting"])
	assert.Empty(t, res.TemplateErrors)
}

func TestLint_Fail(t *testing.T) {
	_, err := execute(t, "--fail")
	require.ErrorIs(t, err, errIssuesFound)

	_, err = execute(t, "--overlap", "Replace")
	require.Error(t, err)

	_, err = execute(t, "--format", "json")
	require.Error(t, err)
}
