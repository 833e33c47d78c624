package translatable

import (
	"maps"
	"sort"
)

// Tree is the merged translation store. It is never modified after Merge
// returns, so any number of goroutines may read it without locking.
type Tree struct {
	root Group
}

// lookup walks path down to its leaf. The returned leaf is shared with the
// tree and must not be modified.
func (t *Tree) lookup(path Path) (Leaf, error) {
	if t == nil || len(path) == 0 {
		return nil, &PathNotFoundError{Path: path}
	}
	var current Node = t.root
	for _, seg := range path {
		group, ok := current.(Group)
		if !ok {
			return nil, &PathNotFoundError{Path: path}
		}
		current, ok = group[seg]
		if !ok {
			return nil, &PathNotFoundError{Path: path}
		}
	}
	leaf, ok := current.(Leaf)
	if !ok {
		return nil, &PathNotFoundError{Path: path}
	}
	return leaf, nil
}

// Resolve returns the raw, unsubstituted text at path for lang.
func (t *Tree) Resolve(path Path, lang Language) (string, error) {
	leaf, err := t.lookup(path)
	if err != nil {
		return "", err
	}
	text, ok := leaf[lang]
	if !ok {
		return "", &LanguageNotFoundError{Path: path, Language: lang}
	}
	return text, nil
}

// Leaf returns a copy of the translations stored at path.
func (t *Tree) Leaf(path Path) (Leaf, error) {
	leaf, err := t.lookup(path)
	if err != nil {
		return nil, err
	}
	return maps.Clone(leaf), nil
}

// Walk calls fn for every leaf in ascending path order. fn receives copies.
func (t *Tree) Walk(fn func(path Path, leaf Leaf)) {
	if t == nil {
		return
	}
	walkGroup(nil, t.root, fn)
}

func walkGroup(at Path, g Group, fn func(Path, Leaf)) {
	for _, key := range sortedKeys(g) {
		switch child := g[key].(type) {
		case Group:
			walkGroup(at.Join(key), child, fn)
		case Leaf:
			fn(at.Join(key), maps.Clone(child))
		}
	}
}

// Languages lists every language that appears in at least one leaf.
func (t *Tree) Languages() []Language {
	seen := map[Language]struct{}{}
	t.Walk(func(_ Path, leaf Leaf) {
		for lang := range leaf {
			seen[lang] = struct{}{}
		}
	})
	out := make([]Language, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })
	return out
}
