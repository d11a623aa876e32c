package code

import (
	"fmt"
	"github.com/viant/javagen/types"
)

// Kind identifies the variant held by an Arg.
type Kind int

const (
	// LiteralKind prints the value's natural text (or emits a nested *Block).
	LiteralKind Kind = iota
	// StringKind prints the value as an escaped, double-quoted string literal.
	StringKind
	// TypeKind routes a type reference through import resolution.
	TypeKind
	// NameKind prints a validated Java identifier.
	NameKind
)

func (k Kind) String() string {
	switch k {
	case LiteralKind:
		return "literal"
	case StringKind:
		return "string"
	case TypeKind:
		return "type"
	case NameKind:
		return "name"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arg is a template argument. Build one with L, S, T or N.
type Arg struct {
	kind  Kind
	value interface{}
	text  string
	typ   types.TypeName
	null  bool
}

// L wraps a literal: numbers, booleans, raw strings or a nested *Block.
func L(value interface{}) Arg {
	return Arg{kind: LiteralKind, value: value}
}

// S wraps a value printed as a Java string literal.
func S(value string) Arg {
	return Arg{kind: StringKind, text: value}
}

// NullS is a string-literal argument printed as the null literal.
func NullS() Arg {
	return Arg{kind: StringKind, null: true}
}

// T wraps a type reference.
func T(typeName types.TypeName) Arg {
	return Arg{kind: TypeKind, typ: typeName}
}

// N wraps an identifier such as a field, parameter or method name.
func N(name string) Arg {
	return Arg{kind: NameKind, text: name}
}

// Kind returns the argument variant.
func (a Arg) Kind() Kind {
	return a.kind
}

// Type returns the type reference of a TypeKind argument.
func (a Arg) Type() types.TypeName {
	return a.typ
}

// Block returns the nested block of a literal argument, if it holds one.
func (a Arg) Block() (*Block, bool) {
	block, ok := a.value.(*Block)
	return block, ok
}

// IsNull reports whether a string argument stands for the null literal.
func (a Arg) IsNull() bool {
	return a.null || (a.kind == LiteralKind && a.value == nil)
}

// Text returns the natural text form used by $L, $N and $S.
func (a Arg) Text() string {
	if a.null {
		return "null"
	}
	switch a.kind {
	case LiteralKind:
		if a.value == nil {
			return "null"
		}
		if s, ok := a.value.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(a.value)
	case TypeKind:
		return a.typ.String()
	}
	return a.text
}

// mismatch returns why a placeholder token cannot consume the argument, empty when it can.
func (a Arg) mismatch(token byte) string {
	switch token {
	case 'L':
		switch a.kind {
		case LiteralKind:
			if _, ok := a.value.(types.TypeName); ok {
				return "$L received a type reference, use $T"
			}
			return ""
		case StringKind, NameKind:
			return ""
		}
	case 'S':
		switch a.kind {
		case StringKind:
			return ""
		case LiteralKind:
			if a.value == nil {
				return ""
			}
			if _, ok := a.value.(string); ok {
				return ""
			}
		}
	case 'T':
		if a.kind == TypeKind {
			if a.typ == nil {
				return "$T received a nil type"
			}
			return ""
		}
	case 'N':
		if a.kind == NameKind {
			if !IsIdentifier(a.text) {
				return fmt.Sprintf("not a valid name: %q", a.text)
			}
			return ""
		}
	}
	return fmt.Sprintf("$%c cannot consume a %v argument", token, a.kind)
}
