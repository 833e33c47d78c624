package translatable

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Bundle owns a merged Tree together with the configuration it was built
// from. Build one at startup and share it; a Bundle is read-only after New
// returns.
type Bundle struct {
	tree     *Tree
	config   Config
	logger   *zap.Logger
	parallel int
}

// Option configures a Bundle.
type Option func(*Bundle)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bundle) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithConcurrency bounds parallel file parsing during load.
func WithConcurrency(n int) Option {
	return func(b *Bundle) {
		b.parallel = n
	}
}

// New loads the store at cfg.Path.
func New(cfg Config, opts ...Option) (*Bundle, error) {
	return NewFromFS(os.DirFS(cfg.Path), cfg, opts...)
}

// MustNew is like New but panics on error. Intended for program
// initialization.
func MustNew(cfg Config, opts ...Option) *Bundle {
	b, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// NewFromFS loads the store from fsys instead of cfg.Path, e.g. an embed.FS.
func NewFromFS(fsys fs.FS, cfg Config, opts ...Option) (*Bundle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Bundle{
		config: cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	loader := NewLoader(fsys, WithLoaderConcurrency(b.parallel), WithLoaderLogger(b.logger))
	units, err := loader.Load(context.Background())
	if err != nil {
		b.logger.Error("failed to load translations", zap.String("path", cfg.Path), zap.Error(err))
		return nil, err
	}

	tree, stats, err := MergeWithStats(units, cfg.SeekMode, cfg.Overlap, WithMergeLogger(b.logger))
	if err != nil {
		b.logger.Error("failed to merge translations", zap.String("path", cfg.Path), zap.Error(err))
		return nil, err
	}
	b.tree = tree

	b.logger.Info("translations loaded",
		zap.String("path", cfg.Path),
		zap.Stringer("seek_mode", cfg.SeekMode),
		zap.Stringer("overlap", cfg.Overlap),
		zap.Int("files", stats.Units),
		zap.Int("leaves", stats.Leaves),
		zap.Int("overwritten", stats.Overwritten),
		zap.Int("ignored", stats.Ignored),
	)
	return b, nil
}

// NewFromTree wraps an already merged tree.
func NewFromTree(tree *Tree, cfg Config, opts ...Option) *Bundle {
	b := &Bundle{
		tree:   tree,
		config: cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tree returns the merged store.
func (b *Bundle) Tree() *Tree { return b.tree }

// Config returns the configuration the bundle was built with.
func (b *Bundle) Config() Config { return b.config }

// Fallback returns the configured fallback language, if any.
func (b *Bundle) Fallback() (Language, bool) {
	return b.config.FallbackLanguage, !b.config.FallbackLanguage.IsZero()
}

///////////////////////////////////////////////////////////////////////////////
// RESOLUTION PIPELINE
///////////////////////////////////////////////////////////////////////////////

// resolve returns the raw text for lang at path, falling back to the
// configured fallback language. Every entry point goes through here.
func (b *Bundle) resolve(path Path, lang Language) (string, error) {
	text, err := b.tree.Resolve(path, lang)
	if err == nil || !errors.Is(err, ErrLanguageNotFound) {
		return text, err
	}
	if fallback, ok := b.Fallback(); ok && fallback != lang {
		if text, ferr := b.tree.Resolve(path, fallback); ferr == nil {
			return text, nil
		}
	}
	return "", err
}

// template resolves and parses in one step.
func (b *Bundle) template(path Path, lang Language) (Template, error) {
	text, err := b.resolve(path, lang)
	if err != nil {
		return Template{}, err
	}
	return ParseTemplate(text)
}

func (b *Bundle) render(path Path, lang Language, args Args) (string, error) {
	tpl, err := b.template(path, lang)
	if err != nil {
		return "", err
	}
	return tpl.Render(args)
}

// Translate renders path in an already validated language.
func (b *Bundle) Translate(lang Language, path Path, args Args) (string, error) {
	if lang.IsZero() {
		return "", &InvalidLanguageError{}
	}
	return b.render(path, lang, args)
}

// TranslateString validates code against the catalog, then renders path.
func (b *Bundle) TranslateString(code string, path Path, args Args) (string, error) {
	lang, err := ParseLanguage(code)
	if err != nil {
		return "", err
	}
	return b.render(path, lang, args)
}
