package translatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	t.Run("ParseLanguage_Success", func(t *testing.T) {
		lang, err := ParseLanguage("es")
		require.NoError(t, err)
		assert.Equal(t, "es", lang.Code())
		assert.Equal(t, "Spanish", lang.Name())
		assert.False(t, lang.IsZero())
	})
	t.Run("ParseLanguage_Fail", func(t *testing.T) {
		for _, code := range []string{"zz", "", "ES", "es-ES", "eng", " es"} {
			_, err := ParseLanguage(code)
			require.ErrorIs(t, err, ErrInvalidLanguage, code)

			var langErr *InvalidLanguageError
			require.ErrorAs(t, err, &langErr)
			assert.Equal(t, code, langErr.Code)
		}
	})
	t.Run("MustParseLanguage_Panics", func(t *testing.T) {
		assert.Panics(t, func() { MustParseLanguage("zz") })
	})
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 184)
	assert.Equal(t, "aa", langs[0].Code())
	assert.Equal(t, "zu", langs[len(langs)-1].Code())
	for _, lang := range langs {
		assert.NotEmpty(t, lang.Name(), lang.Code())
	}
}

func TestLanguage_Text(t *testing.T) {
	var lang Language
	require.NoError(t, lang.UnmarshalText([]byte("fr")))
	assert.Equal(t, "fr", lang.String())

	out, err := lang.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fr", string(out))

	require.ErrorIs(t, lang.UnmarshalText([]byte("xx")), ErrInvalidLanguage)
	assert.Equal(t, "fr", lang.Code())
	assert.Equal(t, "fr", lang.Tag().String())
}

func TestMatchAcceptLanguage(t *testing.T) {
	testCases := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "es-ES,es;q=0.9,en;q=0.8", want: "es", ok: true},
		{header: "en;q=0.5, de;q=0.9", want: "de", ok: true},
		{header: "zh-Hant-TW", want: "zh", ok: true},
		{header: "*", ok: false},
		{header: "", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.header, func(t *testing.T) {
			lang, ok := MatchAcceptLanguage(tc.header)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, lang.Code())
			}
		})
	}
}
