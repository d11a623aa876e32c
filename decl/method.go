package decl

import (
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/types"
	"github.com/viant/javagen/writer"
)

// ConstructorName is the name of constructor methods.
const ConstructorName = "<init>"

// Method is a method or constructor declaration.
type Method struct {
	Name          string
	Javadoc       *code.Block
	Annotations   []Annotation
	Modifiers     []Modifier
	TypeVariables []types.TypeVariable
	// Returns is the return type; nil means void.
	Returns    types.TypeName
	Parameters []Parameter
	// Varargs makes the last parameter, which must be an array, variable arity.
	Varargs    bool
	Exceptions []types.TypeName
	Body       *code.Block
	// DefaultValue is the default of an annotation type element.
	DefaultValue *code.Block
}

// NewMethod returns a method called name.
func NewMethod(name string, modifiers ...Modifier) Method {
	return Method{Name: name, Modifiers: modifiers}
}

// NewConstructor returns a constructor.
func NewConstructor(modifiers ...Modifier) Method {
	return Method{Name: ConstructorName, Modifiers: modifiers}
}

// IsConstructor reports whether m is a constructor.
func (m Method) IsConstructor() bool {
	return m.Name == ConstructorName
}

func (m Method) returnType() types.TypeName {
	if m.Returns == nil {
		return types.Void
	}
	return m.Returns
}

func (m Method) javadocWithParameters() *code.Block {
	builder := code.NewBuilder().AddBlock(m.Javadoc)
	tagNewline := true
	for _, parameter := range m.Parameters {
		if parameter.Javadoc.IsEmpty() {
			continue
		}
		if tagNewline && !m.Javadoc.IsEmpty() {
			builder.Add("\n")
		}
		tagNewline = false
		builder.Add("@param $N $L", code.N(parameter.Name), code.L(parameter.Javadoc))
	}
	block, err := builder.Build()
	if err != nil {
		return m.Javadoc
	}
	return block
}

func (m Method) emit(w *writer.Writer, enclosingName string, implicit []Modifier, bodyless bool) {
	w.EmitJavadoc(m.javadocWithParameters())
	emitAnnotations(w, m.Annotations, false)
	emitModifiers(w, m.Modifiers, implicit...)

	if len(m.TypeVariables) > 0 {
		w.EmitTypeVariables(m.TypeVariables)
		w.EmitAndIndent(" ")
	}

	if m.IsConstructor() {
		w.Emit("$N($Z", code.N(enclosingName))
	} else {
		w.Emit("$T $N($Z", code.T(m.returnType()), code.N(m.Name))
	}
	for i, parameter := range m.Parameters {
		if i > 0 {
			w.Emit(",$W")
		}
		parameter.emit(w, m.Varargs && i == len(m.Parameters)-1)
	}
	w.EmitAndIndent(")")

	if !m.DefaultValue.IsEmpty() {
		w.EmitAndIndent(" default ")
		w.EmitBlock(m.DefaultValue, false)
	}

	if len(m.Exceptions) > 0 {
		w.Emit("$Wthrows")
		for i, exception := range m.Exceptions {
			if i > 0 {
				w.EmitAndIndent(",")
			}
			w.Emit("$W$T", code.T(exception))
		}
	}

	switch {
	case hasModifier(m.Modifiers, Abstract) || bodyless:
		w.EmitAndIndent(";\n")
	case hasModifier(m.Modifiers, Native):
		w.EmitBlock(m.Body, false)
		w.EmitAndIndent(";\n")
	default:
		w.EmitAndIndent(" {\n")
		w.IndentBy(1)
		w.EmitBlock(m.Body, true)
		w.UnindentBy(1)
		w.EmitAndIndent("}\n")
	}
	for _, variable := range m.TypeVariables {
		w.PopTypeVariables(variable.Name)
	}
}
