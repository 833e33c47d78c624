package translatable

import (
	"fmt"
	"slices"
)

// Handle is a translation whose language and path were validated up front.
// Rendering cannot fail as long as the caller supplies the names declared at
// Prepare.
type Handle struct {
	path     Path
	language Language
	tpl      Template
}

// Prepare validates lang and path once and parses the text. names declares
// the placeholder values the caller will pass to Render; a template that
// uses any other name is rejected here.
func (b *Bundle) Prepare(lang Language, path Path, names ...string) (*Handle, error) {
	if lang.IsZero() {
		return nil, &InvalidLanguageError{}
	}
	tpl, err := b.template(path, lang)
	if err != nil {
		return nil, err
	}
	for _, ph := range tpl.Placeholders() {
		if !slices.Contains(names, ph.Name) {
			return nil, &TemplateError{Kind: ErrMissingValue, Identifier: ph.Name, Offset: ph.Start}
		}
	}
	return &Handle{path: slices.Clone(path), language: lang, tpl: tpl}, nil
}

// MustPrepare is like Prepare but panics on error. Use it for package level
// handles so that a broken store stops the program at startup.
func (b *Bundle) MustPrepare(lang Language, path Path, names ...string) *Handle {
	h, err := b.Prepare(lang, path, names...)
	if err != nil {
		panic(err)
	}
	return h
}

// IsConstant reports whether the text has no placeholders.
func (h *Handle) IsConstant() bool { return h.tpl.IsConstant() }

// Text returns the raw text, placeholders and escapes untouched.
func (h *Handle) Text() string { return h.tpl.Source() }

// Path returns the path the handle was prepared for.
func (h *Handle) Path() Path { return slices.Clone(h.path) }

// Language returns the language the handle was prepared for.
func (h *Handle) Language() Language { return h.language }

// Render substitutes args. It panics if args lacks a name that was declared
// at Prepare and used by the text.
func (h *Handle) Render(args Args) string {
	s, err := h.tpl.Render(args)
	if err != nil {
		panic(fmt.Sprintf("translatable: render %s/%s: %v", h.language, h.path, err))
	}
	return s
}

// PathHandle is a translation whose path was validated up front while the
// language is chosen per call.
type PathHandle struct {
	bundle *Bundle
	path   Path
}

// PreparePath checks once that path names a leaf. When a fallback language
// is configured it must be available at path too.
func (b *Bundle) PreparePath(path Path) (*PathHandle, error) {
	leaf, err := b.tree.lookup(path)
	if err != nil {
		return nil, err
	}
	if fallback, ok := b.Fallback(); ok {
		if _, ok := leaf[fallback]; !ok {
			return nil, &LanguageNotFoundError{Path: path, Language: fallback}
		}
	}
	return &PathHandle{bundle: b, path: slices.Clone(path)}, nil
}

// MustPreparePath is like PreparePath but panics on error.
func (b *Bundle) MustPreparePath(path Path) *PathHandle {
	h, err := b.PreparePath(path)
	if err != nil {
		panic(err)
	}
	return h
}

// Path returns the validated path.
func (h *PathHandle) Path() Path { return slices.Clone(h.path) }

// Translate validates code and renders the prepared path in it.
func (h *PathHandle) Translate(code string, args Args) (string, error) {
	return h.bundle.TranslateString(code, h.path, args)
}

// TranslateLanguage renders the prepared path in lang.
func (h *PathHandle) TranslateLanguage(lang Language, args Args) (string, error) {
	return h.bundle.Translate(lang, h.path, args)
}
