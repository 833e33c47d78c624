package translatable

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"path"
	"runtime"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// SourceUnit is one parsed store file.
type SourceUnit struct {
	// Origin is the slash separated path of the file relative to the store root.
	Origin string
	Root   Group
}

// Loader reads translation documents from a file system. It applies no
// ordering; Merge does.
type Loader struct {
	fsys        fs.FS
	concurrency int
	logger      *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderConcurrency bounds how many files Load parses at once.
func WithLoaderConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithLoaderLogger sets the logger used for per-file debug output.
func WithLoaderLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader returns a Loader over fsys, typically os.DirFS(root).
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:        fsys,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Files lists the regular files below the root in walk order.
func (l *Loader) Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, &ParseError{Origin: ".", Err: err}
	}
	return files, nil
}

// Units yields one SourceUnit per file, parsing lazily as the sequence is
// consumed. Iteration stops after the first error.
func (l *Loader) Units() iter.Seq2[SourceUnit, error] {
	return func(yield func(SourceUnit, error) bool) {
		files, err := l.Files()
		if err != nil {
			yield(SourceUnit{}, err)
			return
		}
		for _, origin := range files {
			unit, err := l.LoadFile(origin)
			if !yield(unit, err) || err != nil {
				return
			}
		}
	}
}

// Load parses every file, in parallel up to the configured concurrency.
// The returned slice follows walk order regardless of completion order.
func (l *Loader) Load(ctx context.Context) ([]SourceUnit, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	units := make([]SourceUnit, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, origin := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			unit, err := l.LoadFile(origin)
			if err != nil {
				return err
			}
			units[i] = unit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}

// LoadFile reads and converts a single document.
func (l *Loader) LoadFile(origin string) (SourceUnit, error) {
	data, err := fs.ReadFile(l.fsys, origin)
	if err != nil {
		return SourceUnit{}, &ParseError{Origin: origin, Err: err}
	}
	doc, err := decodeDocument(origin, data)
	if err != nil {
		return SourceUnit{}, &ParseError{Origin: origin, Err: err}
	}
	root, err := buildGroup(origin, nil, doc)
	if err != nil {
		return SourceUnit{}, err
	}
	l.logger.Debug("translation file loaded", zap.String("origin", origin), zap.Int("keys", len(root)))
	return SourceUnit{Origin: origin, Root: root}, nil
}

func decodeDocument(origin string, data []byte) (map[string]any, error) {
	doc := map[string]any{}
	switch ext := path.Ext(origin); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("toml unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
	return doc, nil
}

///////////////////////////////////////////////////////////////////////////////
// GENERIC TREE -> NODE
///////////////////////////////////////////////////////////////////////////////

// buildGroup converts a decoded mapping into a Group. The mapping's values
// must be all mappings; a mapping of strings is handled by buildLeaf.
func buildGroup(origin string, at Path, m map[string]any) (Group, error) {
	leaf, err := mappingKind(origin, at, m)
	if err != nil {
		return nil, err
	}
	if leaf {
		return nil, &SchemaError{Origin: origin, Path: at, Reason: "root must contain nested tables, not translations"}
	}

	group := make(Group, len(m))
	for _, key := range sortedKeys(m) {
		child := m[key].(map[string]any)
		childPath := at.Join(key)

		childIsLeaf, err := mappingKind(origin, childPath, child)
		if err != nil {
			return nil, err
		}
		if childIsLeaf {
			group[key], err = buildLeaf(origin, childPath, child)
		} else {
			group[key], err = buildGroup(origin, childPath, child)
		}
		if err != nil {
			return nil, err
		}
	}

	if _, err := siblingKind(origin, at, group); err != nil {
		return nil, err
	}
	return group, nil
}

func buildLeaf(origin string, at Path, m map[string]any) (Leaf, error) {
	leaf := make(Leaf, len(m))
	for _, key := range sortedKeys(m) {
		lang, err := ParseLanguage(key)
		if err != nil {
			return nil, &SchemaError{Origin: origin, Path: at.Join(key), Reason: fmt.Sprintf("%q is not a recognized language", key)}
		}
		leaf[lang] = m[key].(string)
	}
	return leaf, nil
}

// mappingKind reports whether m holds translations (strings) or nested
// tables. Empty mappings count as groups.
func mappingKind(origin string, at Path, m map[string]any) (leaf bool, err error) {
	var strs, tables int
	for _, key := range sortedKeys(m) {
		switch v := m[key].(type) {
		case string:
			strs++
		case map[string]any:
			tables++
		default:
			return false, &SchemaError{Origin: origin, Path: at.Join(key), Reason: fmt.Sprintf("unsupported value of type %T", v)}
		}
	}
	if strs > 0 && tables > 0 {
		return false, &SchemaError{Origin: origin, Path: at, Reason: "mixes nested tables and translations"}
	}
	return strs > 0, nil
}

// siblingKind checks that a group's children are uniformly groups or
// uniformly leaves.
func siblingKind(origin string, at Path, g Group) (leaf bool, err error) {
	keys := sortedKeys(g)
	if len(keys) == 0 {
		return false, nil
	}
	_, first := g[keys[0]].(Leaf)
	for _, key := range keys[1:] {
		if _, isLeaf := g[key].(Leaf); isLeaf != first {
			return false, &SchemaError{Origin: origin, Path: at, Reason: mixedReason(g, keys)}
		}
	}
	return first, nil
}

// mixedReason names the first table found among translation objects.
func mixedReason(g Group, keys []string) string {
	for _, key := range keys {
		child, ok := g[key].(Group)
		if !ok {
			continue
		}
		if len(child) == 0 {
			return fmt.Sprintf("empty table %q sits next to translation objects", key)
		}
		return fmt.Sprintf("table %q sits next to translation objects", key)
	}
	return "mixes groups and translation objects"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
