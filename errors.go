package translatable

import (
	"errors"
	"fmt"
)

// Error kinds. Every concrete error returned by this package matches exactly
// one of these with errors.Is.
var (
	// Startup errors, returned while building a Tree.
	ErrParse    = errors.New("translatable: parse error")
	ErrSchema   = errors.New("translatable: schema violation")
	ErrConflict = errors.New("translatable: conflicting definitions")

	// Per-call errors.
	ErrInvalidLanguage   = errors.New("translatable: invalid language")
	ErrPathNotFound      = errors.New("translatable: path not found")
	ErrLanguageNotFound  = errors.New("translatable: language not found")
	ErrInvalidIdentifier = errors.New("translatable: invalid placeholder identifier")
	ErrMissingValue      = errors.New("translatable: missing placeholder value")

	ErrInvalidConfig = errors.New("translatable: invalid configuration")
)

// ParseError reports a store file that could not be read or decoded.
type ParseError struct {
	Origin string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Origin, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }
func (e *ParseError) Unwrap() error        { return e.Err }

// SchemaError reports a document that decoded fine but breaks the
// group/leaf structure rules.
type SchemaError struct {
	Origin string
	Path   Path
	Reason string
}

func (e *SchemaError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("schema %s: %s", e.Origin, e.Reason)
	}
	return fmt.Sprintf("schema %s at %q: %s", e.Origin, e.Path, e.Reason)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ConflictError reports a path that is a group in one source and a leaf in
// another. Overlap policy never resolves it. When the clash is between two
// siblings, Sibling names the node Previous defined.
type ConflictError struct {
	Path     Path
	Origin   string
	Previous string
	Sibling  Path
}

func (e *ConflictError) Error() string {
	if len(e.Sibling) > 0 {
		return fmt.Sprintf("conflict at %q: %s adds it next to %q from %s, and groups cannot mix with translation objects",
			e.Path, e.Origin, e.Sibling, e.Previous)
	}
	return fmt.Sprintf("conflict at %q: %s disagrees with %s on the node kind", e.Path, e.Origin, e.Previous)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// InvalidLanguageError reports a code that is not in the catalog.
type InvalidLanguageError struct {
	Code string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("invalid language %q", e.Code)
}

func (e *InvalidLanguageError) Is(target error) bool { return target == ErrInvalidLanguage }

// PathNotFoundError reports a path with no leaf at its end.
type PathNotFoundError struct {
	Path Path
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path %q not found", e.Path)
}

func (e *PathNotFoundError) Is(target error) bool { return target == ErrPathNotFound }

// LanguageNotFoundError reports a leaf that has no text for a valid language.
type LanguageNotFoundError struct {
	Path     Path
	Language Language
}

func (e *LanguageNotFoundError) Error() string {
	return fmt.Sprintf("language %q (%s) is not available for %q", e.Language.Code(), e.Language.Name(), e.Path)
}

func (e *LanguageNotFoundError) Is(target error) bool { return target == ErrLanguageNotFound }

// TemplateError reports a placeholder problem. Kind is either
// ErrInvalidIdentifier or ErrMissingValue.
type TemplateError struct {
	Kind       error
	Identifier string
	Offset     int
}

func (e *TemplateError) Error() string {
	if e.Kind == ErrMissingValue {
		return fmt.Sprintf("no value for placeholder {%s}", e.Identifier)
	}
	return fmt.Sprintf("invalid placeholder %q at byte %d", e.Identifier, e.Offset)
}

func (e *TemplateError) Is(target error) bool { return target == e.Kind }

// ConfigError reports a configuration entry that could not be parsed.
type ConfigError struct {
	Key   string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("couldn't parse configuration entry %q for %q", e.Value, e.Key)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }
