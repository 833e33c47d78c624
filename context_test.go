package translatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetingsContext struct {
	Formal      string
	Informal    string `translation:"informal"`
	GoodMorning string
	Ignored     int    `translation:"-"`
}

func TestBundle_Fill(t *testing.T) {
	b := newTestBundle(t, testConfig())
	base := ParsePath("greetings")

	t.Run("Fill_AllFields", func(t *testing.T) {
		var ctx greetingsContext
		require.NoError(t, b.Fill(&ctx, base, en, Args{"user": "Sam"}))
		assert.Equal(t, "Nice to meet you.", ctx.Formal)
		assert.Equal(t, "What's good Sam?", ctx.Informal)
		assert.Equal(t, "Good morning, Sam.", ctx.GoodMorning)
		assert.Zero(t, ctx.Ignored)
	})
	t.Run("Fill_LeavesDstOnError", func(t *testing.T) {
		ctx := greetingsContext{Formal: "unchanged"}
		err := b.Fill(&ctx, base, es, Args{"user": "Sam"})
		require.ErrorIs(t, err, ErrLanguageNotFound)
		assert.Contains(t, err.Error(), "GoodMorning")
		assert.Equal(t, "unchanged", ctx.Formal)
		assert.Empty(t, ctx.Informal)
	})
	t.Run("Fill_WithFallback", func(t *testing.T) {
		cfg := testConfig()
		cfg.FallbackLanguage = en
		b := newTestBundle(t, cfg)

		var ctx greetingsContext
		require.NoError(t, b.Fill(&ctx, base, es, Args{"user": "Sam"}))
		assert.Equal(t, "¿Qué tal Sam?", ctx.Informal)
		assert.Equal(t, "Good morning, Sam.", ctx.GoodMorning)
	})
	t.Run("Fill_RejectsNonPointer", func(t *testing.T) {
		var ctx greetingsContext
		var ctxErr *ContextError
		require.ErrorAs(t, b.Fill(ctx, base, en, nil), &ctxErr)
		require.ErrorAs(t, b.Fill((*greetingsContext)(nil), base, en, nil), &ctxErr)
		n := 3
		require.ErrorAs(t, b.Fill(&n, base, en, nil), &ctxErr)
	})
}

func TestBundle_CheckContext(t *testing.T) {
	b := newTestBundle(t, testConfig())
	require.NoError(t, b.CheckContext(greetingsContext{}, ParsePath("greetings")))

	err := b.CheckContext(greetingsContext{}, ParsePath("common"))
	require.ErrorIs(t, err, ErrPathNotFound)

	type badField struct {
		Count int
	}
	var ctxErr *ContextError
	require.ErrorAs(t, b.CheckContext(&badField{}, ParsePath("greetings")), &ctxErr)
	assert.Equal(t, "Count", ctxErr.Field)

	cfg := testConfig()
	cfg.FallbackLanguage = es
	withFallback := newTestBundle(t, cfg)
	require.ErrorIs(t, withFallback.CheckContext(greetingsContext{}, ParsePath("greetings")), ErrLanguageNotFound)
}
