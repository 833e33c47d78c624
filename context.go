package translatable

import (
	"fmt"
	"reflect"

	"github.com/stoewer/go-strcase"
)

// ContextTag is the struct tag naming the path segment of a field.
const ContextTag = "translation"

// ContextError reports a struct that cannot be used as a translation context.
type ContextError struct {
	Type   reflect.Type
	Field  string
	Reason string
}

func (e *ContextError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("translation context %v: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("translation context %v field %s: %s", e.Type, e.Field, e.Reason)
}

type contextField struct {
	index int
	name  string
	path  Path
}

// contextFields lists the translated fields of the struct type behind v.
// The segment is the tag value, or the snake_case field name without a tag.
func contextFields(v any, base Path) (reflect.Type, []contextField, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return t, nil, &ContextError{Type: t, Reason: "must be a struct or a pointer to one"}
	}

	var fields []contextField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		seg := f.Tag.Get(ContextTag)
		if seg == "-" {
			continue
		}
		if f.Type.Kind() != reflect.String {
			return t, nil, &ContextError{Type: t, Field: f.Name, Reason: "only string fields can hold translations"}
		}
		if seg == "" {
			seg = strcase.SnakeCase(f.Name)
		}
		fields = append(fields, contextField{index: i, name: f.Name, path: base.Join(ParsePath(seg)...)})
	}
	return t, fields, nil
}

// CheckContext verifies ahead of time that every field of the struct behind
// v maps to a path below base, and that the fallback language, if any, is
// available for each.
func (b *Bundle) CheckContext(v any, base Path) error {
	_, fields, err := contextFields(v, base)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := b.PreparePath(f.path); err != nil {
			return err
		}
	}
	return nil
}

// Fill sets every translated field of the struct dst points to, rendering
// base + segment in lang with args. dst is left untouched on error.
func (b *Bundle) Fill(dst any, base Path, lang Language, args Args) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return &ContextError{Type: reflect.TypeOf(dst), Reason: "must be a non-nil pointer to a struct"}
	}
	_, fields, err := contextFields(dst, base)
	if err != nil {
		return err
	}

	values := make([]string, len(fields))
	for i, f := range fields {
		values[i], err = b.Translate(lang, f.path, args)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.name, err)
		}
	}

	elem := rv.Elem()
	for i, f := range fields {
		elem.Field(f.index).SetString(values[i])
	}
	return nil
}
