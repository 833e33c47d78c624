// Package goi18n exposes a translatable store as a go-i18n bundle, so code
// written against github.com/nicksnyder/go-i18n can read the same files.
package goi18n

import (
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/lifei6671/translatable"
)

// NewBundle registers every leaf of tree as a go-i18n message. The message ID
// is the dotted path; {name} placeholders become {{.name}} template actions.
//
// go-i18n refuses languages it has no plural rule for. Those are skipped and
// returned so the caller can decide whether that matters.
func NewBundle(tree *translatable.Tree, defaultLang translatable.Language) (*i18n.Bundle, []translatable.Language, error) {
	bundle := i18n.NewBundle(defaultLang.Tag())

	unsupported := map[translatable.Language]bool{}
	var firstErr error
	tree.Walk(func(path translatable.Path, leaf translatable.Leaf) {
		if firstErr != nil {
			return
		}
		for lang, text := range leaf {
			if unsupported[lang] {
				continue
			}
			other, err := ConvertTemplate(text)
			if err != nil {
				firstErr = fmt.Errorf("%s [%s]: %w", path, lang, err)
				return
			}
			msg := &i18n.Message{ID: path.String(), Other: other}
			if err := bundle.AddMessages(lang.Tag(), msg); err != nil {
				unsupported[lang] = true
			}
		}
	})
	if firstErr != nil {
		return nil, nil, firstErr
	}

	var skipped []translatable.Language
	for _, lang := range tree.Languages() {
		if unsupported[lang] {
			skipped = append(skipped, lang)
		}
	}
	return bundle, skipped, nil
}

// ConvertTemplate rewrites a translatable template into text/template syntax.
func ConvertTemplate(text string) (string, error) {
	tpl, err := translatable.ParseTemplate(text)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	for _, node := range tpl.Nodes() {
		switch n := node.(type) {
		case *translatable.TextNode:
			// A literal brace next to an action would be read as a delimiter.
			buf.WriteString(strings.ReplaceAll(n.Text, "{", `{{"{"}}`))
		case *translatable.PlaceholderNode:
			buf.WriteString("{{." + n.Name + "}}")
		}
	}
	return buf.String(), nil
}

// Localize is a convenience wrapper around i18n.Localizer for one message.
// go-i18n renders through text/template, so a value missing from args comes
// out as "<no value>" instead of failing with ErrMissingValue.
func Localize(bundle *i18n.Bundle, path translatable.Path, args translatable.Args, langs ...string) (string, error) {
	localizer := i18n.NewLocalizer(bundle, langs...)
	return localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    path.String(),
		TemplateData: map[string]any(args),
	})
}
