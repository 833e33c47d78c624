package checker

import (
	"sort"

	"github.com/lifei6671/translatable"
)

// Result is the outcome of checking a merged store.
type Result struct {
	Languages []string `yaml:"languages"`
	// Leaves is the number of translation objects in the store.
	Leaves int `yaml:"leaves"`
	// MissingLanguages lists, per path, the store languages it has no text for.
	MissingLanguages map[string][]string `yaml:"missing_languages,omitempty"`
	// TemplateErrors holds path -> language -> placeholder syntax error.
	TemplateErrors map[string]map[string]string `yaml:"template_errors,omitempty"`
}

// HasIssues reports whether anything was found.
func (r *Result) HasIssues() bool {
	return len(r.MissingLanguages) > 0 || len(r.TemplateErrors) > 0
}

// Paths returns every path with an issue, sorted.
func (r *Result) Paths() []string {
	set := map[string]struct{}{}
	for p := range r.MissingLanguages {
		set[p] = struct{}{}
	}
	for p := range r.TemplateErrors {
		set[p] = struct{}{}
	}
	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Check performs:
//  1. language alignment: every leaf should carry every language used anywhere
//     in the store
//  2. template syntax via translatable.ValidateTemplate
func Check(tree *translatable.Tree) *Result {
	langs := tree.Languages()
	res := &Result{
		Languages:        make([]string, 0, len(langs)),
		MissingLanguages: map[string][]string{},
		TemplateErrors:   map[string]map[string]string{},
	}
	for _, lang := range langs {
		res.Languages = append(res.Languages, lang.Code())
	}

	tree.Walk(func(path translatable.Path, leaf translatable.Leaf) {
		res.Leaves++
		key := path.String()

		for _, lang := range langs {
			text, ok := leaf[lang]
			if !ok {
				res.MissingLanguages[key] = append(res.MissingLanguages[key], lang.Code())
				continue
			}
			if err := translatable.ValidateTemplate(text); err != nil {
				if res.TemplateErrors[key] == nil {
					res.TemplateErrors[key] = map[string]string{}
				}
				res.TemplateErrors[key][lang.Code()] = err.Error()
			}
		}
	})
	return res
}
