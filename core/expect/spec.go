package expect

import "strings"

// Kind identifies a declared parameter type from the expectation grammar.
type Kind string

const (
	KindNone   Kind = ""
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindArray  Kind = "array"
)

// kindAliases maps the grammar's type spellings onto kinds.
var kindAliases = map[string]Kind{
	"int":     KindInt,
	"integer": KindInt,
	"float":   KindFloat,
	"double":  KindFloat,
	"string":  KindString,
	"bool":    KindBool,
	"boolean": KindBool,
	"array":   KindArray,
}

// Spec is a parsed expectation declaration.
//
// The grammar is:
//
//	spec := name [ "?" [default] ] [ "|" type ]
//
// Examples: "email", "age|int", "page?", "limit?10|int".
type Spec struct {
	// Raw is the full declaration string as written.
	Raw string
	// Name is the bare parameter name (text before "?" and "|").
	Name string
	// Optional reports whether the "?" marker is present.
	Optional bool
	// Default is the text between "?" and "|", if any.
	Default string
	// HasDefault reports whether a non-empty default was declared.
	HasDefault bool
	// Type is the raw type text after "|", empty when untyped.
	// Unknown type names are carried as-is and fail coercion later.
	Type string
}

// Kind resolves the declared type text to a Kind.
// The second return value is false for unknown type names.
func (s Spec) Kind() (Kind, bool) {
	if s.Type == "" {
		return KindNone, true
	}
	k, ok := kindAliases[strings.ToLower(s.Type)]
	return k, ok
}

// ParseSpec parses a single expectation declaration. It never fails:
// malformed input degrades to a required, untyped parameter name.
func ParseSpec(raw string) Spec {
	sp := Spec{Raw: raw}

	head := raw
	if idx := strings.Index(raw, "|"); idx >= 0 {
		head = raw[:idx]
		sp.Type = raw[idx+1:]
	}

	if idx := strings.Index(head, "?"); idx >= 0 {
		sp.Optional = true
		sp.Name = head[:idx]
		sp.Default = head[idx+1:]
		sp.HasDefault = sp.Default != ""
	} else {
		sp.Name = head
	}

	return sp
}
