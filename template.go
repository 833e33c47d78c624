package translatable

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

///////////////////////////////////////////////////////////////////////////////
// AST DEFINITIONS
///////////////////////////////////////////////////////////////////////////////

// Args carries placeholder values. Values are rendered with fmt.Sprint, so a
// type controls its output by implementing fmt.Stringer.
type Args map[string]any

// TemplateNode is one segment of a parsed template.
type TemplateNode interface {
	// Eval renders the segment with the given args.
	Eval(args Args) (string, error)
}

// TextNode is a literal run with escapes already collapsed.
type TextNode struct {
	Text string
}

func (t *TextNode) Eval(_ Args) (string, error) {
	return t.Text, nil
}

// Placeholder is a {name} token and its byte span in the source text.
type Placeholder struct {
	Name       string
	Start, End int
}

// PlaceholderNode renders the value bound to its name.
type PlaceholderNode struct {
	Placeholder
}

func (p *PlaceholderNode) Eval(args Args) (string, error) {
	v, ok := args[p.Name]
	if !ok {
		return "", &TemplateError{Kind: ErrMissingValue, Identifier: p.Name, Offset: p.Start}
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// Template is a parsed template string.
type Template struct {
	source string
	nodes  []TemplateNode
}

// Source returns the text the template was parsed from.
func (t Template) Source() string { return t.source }

// Nodes returns the parsed segments in source order.
func (t Template) Nodes() []TemplateNode {
	return append([]TemplateNode(nil), t.nodes...)
}

// Placeholders lists the placeholder tokens in source order.
func (t Template) Placeholders() []Placeholder {
	var out []Placeholder
	for _, n := range t.nodes {
		if ph, ok := n.(*PlaceholderNode); ok {
			out = append(out, ph.Placeholder)
		}
	}
	return out
}

// IsConstant reports whether the template renders the same text for any args.
func (t Template) IsConstant() bool {
	for _, n := range t.nodes {
		if _, ok := n.(*PlaceholderNode); ok {
			return false
		}
	}
	return true
}

// Render substitutes args into the template. Args that no placeholder
// references are ignored.
func (t Template) Render(args Args) (string, error) {
	if len(t.nodes) == 1 {
		return t.nodes[0].Eval(args)
	}
	var buf strings.Builder
	for _, node := range t.nodes {
		s, err := node.Eval(args)
		if err != nil {
			return "", err
		}
		buf.WriteString(s)
	}
	return buf.String(), nil
}

// Substitute parses text and renders it with args in one step.
func Substitute(text string, args Args) (string, error) {
	tpl, err := ParseTemplate(text)
	if err != nil {
		return "", err
	}
	return tpl.Render(args)
}

///////////////////////////////////////////////////////////////////////////////
// TEMPLATE PARSER
///////////////////////////////////////////////////////////////////////////////

// ParseTemplate scans text left to right. "{{" and "}}" produce literal
// braces; any other '{' opens a placeholder that must hold an identifier and
// be closed by '}'. A lone '}' is an error.
func ParseTemplate(text string) (Template, error) {
	var nodes []TemplateNode
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			nodes = append(nodes, &TextNode{Text: buf.String()})
			buf.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '{' && i+1 < len(text) && text[i+1] == '{':
			buf.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(text) && text[i+1] == '}':
			buf.WriteByte('}')
			i += 2
		case c == '}':
			return Template{}, &TemplateError{Kind: ErrInvalidIdentifier, Identifier: "}", Offset: i}
		case c == '{':
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return Template{}, &TemplateError{Kind: ErrInvalidIdentifier, Identifier: text[i:], Offset: i}
			}
			end += i + 1
			name := text[i+1 : end]
			if !IsIdentifier(name) {
				return Template{}, &TemplateError{Kind: ErrInvalidIdentifier, Identifier: name, Offset: i}
			}
			flush()
			nodes = append(nodes, &PlaceholderNode{Placeholder{Name: name, Start: i, End: end + 1}})
			i = end + 1
		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()

	if len(nodes) == 0 {
		nodes = append(nodes, &TextNode{})
	}
	return Template{source: text, nodes: nodes}, nil
}

// IsIdentifier reports whether s is a letter or underscore followed by
// letters, digits and underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// ValidateTemplate reports the first syntax error in tpl, if any.
func ValidateTemplate(tpl string) error {
	_, err := ParseTemplate(tpl)
	return err
}
