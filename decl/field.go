package decl

import (
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/types"
	"github.com/viant/javagen/writer"
)

// Field is a field declaration.
type Field struct {
	Type        types.TypeName
	Name        string
	Javadoc     *code.Block
	Annotations []Annotation
	Modifiers   []Modifier
	Initializer *code.Block
}

// NewField returns a field of fieldType called name.
func NewField(fieldType types.TypeName, name string, modifiers ...Modifier) Field {
	return Field{Type: fieldType, Name: name, Modifiers: modifiers}
}

// IsStatic reports whether the field is declared static.
func (f Field) IsStatic() bool {
	return hasModifier(f.Modifiers, Static)
}

func (f Field) emit(w *writer.Writer, implicit []Modifier) {
	w.EmitJavadoc(f.Javadoc)
	emitAnnotations(w, f.Annotations, false)
	emitModifiers(w, f.Modifiers, implicit...)
	w.Emit("$T $N", code.T(f.Type), code.N(f.Name))
	if !f.Initializer.IsEmpty() {
		w.EmitAndIndent(" = ")
		w.EmitBlock(f.Initializer, false)
	}
	w.EmitAndIndent(";\n")
}

// Parameter is a method or constructor parameter.
type Parameter struct {
	Type        types.TypeName
	Name        string
	Javadoc     *code.Block
	Annotations []Annotation
	Modifiers   []Modifier
}

// NewParameter returns a parameter of paramType called name.
func NewParameter(paramType types.TypeName, name string, modifiers ...Modifier) Parameter {
	return Parameter{Type: paramType, Name: name, Modifiers: modifiers}
}

func (p Parameter) emit(w *writer.Writer, varargs bool) {
	emitAnnotations(w, p.Annotations, true)
	emitModifiers(w, p.Modifiers)
	if varargs {
		component := p.Type
		if array, ok := p.Type.(types.ArrayType); ok {
			component = array.Component
		}
		w.Emit("$T... $N", code.T(component), code.N(p.Name))
		return
	}
	w.Emit("$T $N", code.T(p.Type), code.N(p.Name))
}
