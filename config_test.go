package translatable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), "", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "./translations", cfg.Path)
	assert.Equal(t, Alphabetical, cfg.SeekMode)
	assert.Equal(t, Ignore, cfg.Overlap)
	assert.True(t, cfg.FallbackLanguage.IsZero())
}

func TestLoadConfig_File(t *testing.T) {
	file := writeFile(t, "translatable.toml", `
locales_path = "./locales"
seek_mode = "Unalphabetical"
overlap = "Overwrite"
fallback_language = "en"
`)
	cfg, err := loadConfig(file, "", nil)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Path:             "./locales",
		SeekMode:         Unalphabetical,
		Overlap:          Overwrite,
		FallbackLanguage: en,
	}, cfg)
}

func TestLoadConfig_Priority(t *testing.T) {
	file := writeFile(t, "translatable.toml", "locales_path = \"from-file\"\noverlap = \"Overwrite\"\n")
	dotenv := writeFile(t, ".env", "TRANSLATABLE_LOCALES_PATH=from-dotenv\nTRANSLATABLE_SEEK_MODE=Unalphabetical\n")

	cfg, err := loadConfig(file, dotenv, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Path)
	assert.Equal(t, Unalphabetical, cfg.SeekMode)
	assert.Equal(t, Overwrite, cfg.Overlap)

	cfg, err = loadConfig(file, dotenv, []string{"TRANSLATABLE_LOCALES_PATH=from-env", "UNRELATED=1"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Path)
	assert.Equal(t, Unalphabetical, cfg.SeekMode)
}

func TestLoadConfig_ProcessEnvironment(t *testing.T) {
	t.Setenv("TRANSLATABLE_OVERLAP", "Overwrite")
	t.Setenv("TRANSLATABLE_FALLBACK_LANGUAGE", "fr")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Overwrite, cfg.Overlap)
	assert.Equal(t, fr, cfg.FallbackLanguage)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		environ []string
	}{
		{name: "unknown key", file: "locale_path = \"x\"\n"},
		{name: "broken toml", file: "seek_mode = \n"},
		{name: "bad seek mode", file: "seek_mode = \"alphabetical\"\n"},
		{name: "bad overlap", environ: []string{"TRANSLATABLE_OVERLAP=Replace"}},
		{name: "bad fallback", environ: []string{"TRANSLATABLE_FALLBACK_LANGUAGE=english"}},
		{name: "blank path", environ: []string{"TRANSLATABLE_LOCALES_PATH=   "}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file := writeFile(t, "translatable.toml", tc.file)
			_, err := loadConfig(file, "", tc.environ)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
