package types

import "strings"

// TypeName is any Java type that can appear in a declaration or code block: a primitive, a
// class, an array, a parameterized type, a wildcard or a type variable.
type TypeName interface {
	// String returns the fully qualified textual form, independent of any import context.
	String() string
	typeName()
}

// Primitive is a primitive type or void.
type Primitive struct {
	keyword string
}

var (
	Void    = Primitive{keyword: "void"}
	Boolean = Primitive{keyword: "boolean"}
	Byte    = Primitive{keyword: "byte"}
	Short   = Primitive{keyword: "short"}
	Int     = Primitive{keyword: "int"}
	Long    = Primitive{keyword: "long"}
	Char    = Primitive{keyword: "char"}
	Float   = Primitive{keyword: "float"}
	Double  = Primitive{keyword: "double"}
)

var primitives = map[string]Primitive{
	"void": Void, "boolean": Boolean, "byte": Byte, "short": Short, "int": Int,
	"long": Long, "char": Char, "float": Float, "double": Double,
}

// LookupPrimitive returns the primitive for a keyword such as "int".
func LookupPrimitive(keyword string) (Primitive, bool) {
	p, ok := primitives[keyword]
	return p, ok
}

func (p Primitive) String() string { return p.keyword }
func (Primitive) typeName() {}

// ArrayType is an array of a component type.
type ArrayType struct {
	Component TypeName
}

// ArrayOf returns the array type of component.
func ArrayOf(component TypeName) ArrayType {
	return ArrayType{Component: component}
}

func (a ArrayType) String() string { return a.Component.String() + "[]" }
func (ArrayType) typeName() {}

// ParameterizedType is a generic class applied to type arguments, e.g. List<String>.
type ParameterizedType struct {
	Raw       ClassName
	Arguments []TypeName
}

// ParameterizedOf returns raw<args...>.
func ParameterizedOf(raw ClassName, args ...TypeName) ParameterizedType {
	return ParameterizedType{Raw: raw, Arguments: args}
}

func (p ParameterizedType) String() string {
	args := make([]string, len(p.Arguments))
	for i, arg := range p.Arguments {
		args[i] = arg.String()
	}
	return p.Raw.String() + "<" + strings.Join(args, ", ") + ">"
}

func (ParameterizedType) typeName() {}

// WildcardType is "?", "? extends Bound" or "? super Bound".
type WildcardType struct {
	Bound TypeName
	Super bool
}

// Wildcard returns the unbounded wildcard.
func Wildcard() WildcardType {
	return WildcardType{}
}

// SubtypeOf returns "? extends bound".
func SubtypeOf(bound TypeName) WildcardType {
	return WildcardType{Bound: bound}
}

// SupertypeOf returns "? super bound".
func SupertypeOf(bound TypeName) WildcardType {
	return WildcardType{Bound: bound, Super: true}
}

func (w WildcardType) String() string {
	switch {
	case w.Bound == nil:
		return "?"
	case w.Super:
		return "? super " + w.Bound.String()
	default:
		return "? extends " + w.Bound.String()
	}
}

func (WildcardType) typeName() {}

// TypeVariable is a type parameter such as T or "T extends Comparable<T>".
type TypeVariable struct {
	Name   string
	Bounds []TypeName
}

// VariableOf returns the type variable name with optional bounds.
func VariableOf(name string, bounds ...TypeName) TypeVariable {
	return TypeVariable{Name: name, Bounds: bounds}
}

func (v TypeVariable) String() string { return v.Name }
func (TypeVariable) typeName() {}
