package translatable

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// SeekMode orders source files before they are merged.
type SeekMode int

const (
	// Alphabetical merges files in ascending origin order.
	Alphabetical SeekMode = iota
	// Unalphabetical merges files in descending origin order.
	Unalphabetical
)

func (m SeekMode) String() string {
	switch m {
	case Alphabetical:
		return "Alphabetical"
	case Unalphabetical:
		return "Unalphabetical"
	}
	return fmt.Sprintf("SeekMode(%d)", int(m))
}

func (m SeekMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *SeekMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Alphabetical":
		*m = Alphabetical
	case "Unalphabetical":
		*m = Unalphabetical
	default:
		return &ConfigError{Key: "seek_mode", Value: string(text)}
	}
	return nil
}

// Overlap decides which value wins when two files define the same
// translation.
type Overlap int

const (
	// Ignore keeps the first value seen.
	Ignore Overlap = iota
	// Overwrite lets later files replace earlier values.
	Overwrite
)

func (o Overlap) String() string {
	switch o {
	case Ignore:
		return "Ignore"
	case Overwrite:
		return "Overwrite"
	}
	return fmt.Sprintf("Overlap(%d)", int(o))
}

func (o Overlap) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Overlap) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Ignore":
		*o = Ignore
	case "Overwrite":
		*o = Overwrite
	default:
		return &ConfigError{Key: "overlap", Value: string(text)}
	}
	return nil
}

// MergeStats counts the overlap decisions taken during a merge.
type MergeStats struct {
	Units       int
	Leaves      int
	Overwritten int
	Ignored     int
}

// MergeOption configures a merge.
type MergeOption func(*merger)

// WithMergeLogger logs every overlap decision at debug level.
func WithMergeLogger(logger *zap.Logger) MergeOption {
	return func(m *merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Merge folds units into a single Tree. Units are ordered by origin according
// to order, with input position breaking ties. The units themselves are not
// modified.
func Merge(units []SourceUnit, order SeekMode, overlap Overlap, opts ...MergeOption) (*Tree, error) {
	tree, _, err := MergeWithStats(units, order, overlap, opts...)
	return tree, err
}

// MergeWithStats is Merge plus a count of the overlap decisions.
func MergeWithStats(units []SourceUnit, order SeekMode, overlap Overlap, opts ...MergeOption) (*Tree, MergeStats, error) {
	sorted := make([]SourceUnit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		c := strings.Compare(sorted[i].Origin, sorted[j].Origin)
		if order == Unalphabetical {
			return c > 0
		}
		return c < 0
	})

	m := &merger{
		overlap: overlap,
		root:    Group{},
		owners:  map[string]string{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, unit := range sorted {
		if err := m.mergeGroup(nil, m.root, unit.Root, unit.Origin); err != nil {
			return nil, MergeStats{}, err
		}
	}
	m.stats.Units = len(sorted)

	tree := &Tree{root: m.root}
	tree.Walk(func(_ Path, _ Leaf) { m.stats.Leaves++ })
	return tree, m.stats, nil
}

type merger struct {
	overlap Overlap
	root    Group
	// owners remembers which origin first created each node, for conflict
	// messages.
	owners map[string]string
	stats  MergeStats
	logger *zap.Logger
}

func (m *merger) mergeGroup(at Path, dst, src Group, origin string) error {
	for _, key := range sortedKeys(src) {
		childPath := at.Join(key)
		id := childPath.String()
		existing, ok := dst[key]
		if !ok {
			dst[key] = cloneNode(src[key])
			m.own(childPath, dst[key], origin)
			continue
		}

		switch incoming := src[key].(type) {
		case Group:
			current, isGroup := existing.(Group)
			if !isGroup {
				return &ConflictError{Path: childPath, Origin: origin, Previous: m.owners[id]}
			}
			if err := m.mergeGroup(childPath, current, incoming, origin); err != nil {
				return err
			}
		case Leaf:
			current, isLeaf := existing.(Leaf)
			if !isLeaf {
				return &ConflictError{Path: childPath, Origin: origin, Previous: m.owners[id]}
			}
			m.mergeLeaf(childPath, current, incoming, origin)
		}
	}
	return m.checkUniform(at, dst, src, origin)
}

// own records origin as the creator of n and everything below it.
func (m *merger) own(at Path, n Node, origin string) {
	m.owners[at.String()] = origin
	if g, ok := n.(Group); ok {
		for key, child := range g {
			m.own(at.Join(key), child, origin)
		}
	}
}

func (m *merger) mergeLeaf(at Path, dst, src Leaf, origin string) {
	for _, lang := range sortedLanguages(src) {
		text := src[lang]
		if _, exists := dst[lang]; !exists {
			dst[lang] = text
			continue
		}
		decision := "ignored"
		if m.overlap == Overwrite {
			dst[lang] = text
			decision = "overwritten"
			m.stats.Overwritten++
		} else {
			m.stats.Ignored++
		}
		m.logger.Debug("translation overlap",
			zap.Stringer("path", at),
			zap.Stringer("language", lang),
			zap.String("origin", origin),
			zap.String("decision", decision),
		)
	}
}

// checkUniform rejects a group that ended up with both groups and leaves as
// children after src was folded in. The error names a key src brought in and
// a sibling of the other kind.
func (m *merger) checkUniform(at Path, dst, src Group, origin string) error {
	var leaves, groups []string
	for _, key := range sortedKeys(dst) {
		if _, isLeaf := dst[key].(Leaf); isLeaf {
			leaves = append(leaves, key)
		} else {
			groups = append(groups, key)
		}
	}
	if len(leaves) == 0 || len(groups) == 0 {
		return nil
	}

	incoming, sibling := conflictingPair(src, leaves, groups)
	return &ConflictError{
		Path:     at.Join(incoming),
		Origin:   origin,
		Previous: m.owners[at.Join(sibling).String()],
		Sibling:  at.Join(sibling),
	}
}

// conflictingPair picks a key present in src and a sibling of the other kind
// that src did not define.
func conflictingPair(src Group, leaves, groups []string) (incoming, sibling string) {
	for _, kinds := range [][2][]string{{leaves, groups}, {groups, leaves}} {
		for _, a := range kinds[0] {
			if _, ok := src[a]; !ok {
				continue
			}
			for _, b := range kinds[1] {
				if _, ok := src[b]; !ok {
					return a, b
				}
			}
		}
	}
	return groups[0], leaves[0]
}

func sortedLanguages(l Leaf) []Language {
	langs := make([]Language, 0, len(l))
	for lang := range l {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].code < langs[j].code })
	return langs
}
