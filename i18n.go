// Package translatable resolves translations stored as a tree of TOML or
// YAML documents (category → subcategory → language → text) and substitutes
// {name} placeholders.
//
// A store is loaded and merged once into an immutable Tree. Lookups then go
// through a Bundle, either with values fixed ahead of time (Prepare,
// PreparePath, Locale) or entirely at call time (TranslateString).
package translatable

import "slices"

// Locale is a translation entry point bound to a language chain: the chosen
// language first, then the bundle's fallback.
type Locale struct {
	bundle *Bundle
	langs  []Language
}

// Locale returns a view that translates into lang.
func (b *Bundle) Locale(lang Language) *Locale {
	chain := []Language{lang}
	if fallback, ok := b.Fallback(); ok && fallback != lang {
		chain = append(chain, fallback)
	}
	return &Locale{bundle: b, langs: chain}
}

// Language returns the primary language of the view.
func (l *Locale) Language() Language { return l.langs[0] }

// Chain reports the languages a lookup tries, in order. It describes what
// Bundle.Translate does with the bundle's fallback; T does not walk it itself.
func (l *Locale) Chain() []Language { return slices.Clone(l.langs) }

// T renders path: T(ParsePath("user.login.success"), Args{"name": "Tom"}).
func (l *Locale) T(path Path, args Args) (string, error) {
	return l.bundle.Translate(l.langs[0], path, args)
}

// Text is T with a dotted path.
func (l *Locale) Text(path string, args Args) (string, error) {
	return l.T(ParsePath(path), args)
}

// Prepare returns a Handle for path in this locale's language.
func (l *Locale) Prepare(path Path, names ...string) (*Handle, error) {
	return l.bundle.Prepare(l.langs[0], path, names...)
}
