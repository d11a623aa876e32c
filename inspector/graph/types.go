package graph

// Type represents a class, interface, enum or annotation type declaration
type Type struct {
	Name        string
	Kind        string      // class, interface, enum or annotation
	Modifiers   []string    // Declared modifiers, e.g. public, static
	Annotations []string    // Annotations as written, e.g. @Component.Builder
	Extends     []string    // Superclass, or extended interfaces
	Implements  []string    // Implemented interfaces
	Constants   []string    // Enum constants
	Fields      []*Field    // Fields in declaration order
	Methods     []*Function // Methods and constructors in declaration order
	Types       []*Type     // Member types
	Location    *Location   // Location of the declaration in the source code
}

// Field represents a field declaration
type Field struct {
	Name      string
	Type      string // Type as written in source
	Modifiers []string
	Location  *Location
}

// Function represents a method or constructor
type Function struct {
	Name        string
	Result      string // Return type as written; empty for constructors
	Modifiers   []string
	Parameters  []*Parameter
	Throws      []string
	Constructor bool
	Location    *Location
}

// Parameter represents a method parameter
type Parameter struct {
	Name     string
	Type     string
	Variadic bool
}

// Location identifies a source range
type Location struct {
	Start int // Start byte offset
	End   int // End byte offset
	Line  int // 1-based line of the start
}

// LookupType returns a member type by simple name
func (t *Type) LookupType(name string) *Type {
	for _, member := range t.Types {
		if member.Name == name {
			return member
		}
	}
	return nil
}

// LookupField returns a field by name
func (t *Type) LookupField(name string) *Field {
	for _, field := range t.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// LookupMethod returns the first method or constructor called name
func (t *Type) LookupMethod(name string) *Function {
	for _, method := range t.Methods {
		if method.Name == name {
			return method
		}
	}
	return nil
}

// HasModifier reports whether the type declares modifier
func (t *Type) HasModifier(modifier string) bool {
	for _, candidate := range t.Modifiers {
		if candidate == modifier {
			return true
		}
	}
	return false
}
