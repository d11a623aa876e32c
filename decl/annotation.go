package decl

import (
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/types"
	"github.com/viant/javagen/writer"
)

// AnnotationMember is a named annotation element; several values print as an array.
type AnnotationMember struct {
	Name   string
	Values []*code.Block
}

// Annotation is an annotation use such as @Override or @Named("x").
type Annotation struct {
	Type    types.ClassName
	Members []AnnotationMember
}

// NewAnnotation returns an annotation of annotationType without members.
func NewAnnotation(annotationType types.ClassName) Annotation {
	return Annotation{Type: annotationType}
}

// AddMember appends value to the member called name.
func (a Annotation) AddMember(name string, value *code.Block) Annotation {
	members := make([]AnnotationMember, len(a.Members))
	copy(members, a.Members)
	for i := range members {
		if members[i].Name == name {
			members[i].Values = append(append([]*code.Block{}, members[i].Values...), value)
			return Annotation{Type: a.Type, Members: members}
		}
	}
	members = append(members, AnnotationMember{Name: name, Values: []*code.Block{value}})
	return Annotation{Type: a.Type, Members: members}
}

func (a Annotation) emit(w *writer.Writer, inline bool) {
	whitespace, separator := "\n", ",\n"
	if inline {
		whitespace, separator = "", ", "
	}
	switch {
	case len(a.Members) == 0:
		w.Emit("@$T", code.T(a.Type))
	case len(a.Members) == 1 && a.Members[0].Name == "value":
		w.Emit("@$T(", code.T(a.Type))
		emitAnnotationValues(w, whitespace, separator, a.Members[0].Values)
		w.EmitAndIndent(")")
	default:
		w.Emit("@$T("+whitespace, code.T(a.Type))
		w.IndentBy(2)
		for i, member := range a.Members {
			if i > 0 {
				w.EmitAndIndent(separator)
			}
			w.Emit("$N = ", code.N(member.Name))
			emitAnnotationValues(w, whitespace, separator, member.Values)
		}
		w.UnindentBy(2)
		w.EmitAndIndent(whitespace + ")")
	}
}

func emitAnnotationValues(w *writer.Writer, whitespace, separator string, values []*code.Block) {
	if len(values) == 1 {
		w.IndentBy(2)
		w.EmitBlock(values[0], false)
		w.UnindentBy(2)
		return
	}
	w.EmitAndIndent("{" + whitespace)
	w.IndentBy(2)
	for i, value := range values {
		if i > 0 {
			w.EmitAndIndent(separator)
		}
		w.EmitBlock(value, false)
	}
	w.UnindentBy(2)
	w.EmitAndIndent(whitespace + "}")
}

func emitAnnotations(w *writer.Writer, annotations []Annotation, inline bool) {
	for _, annotation := range annotations {
		annotation.emit(w, inline)
		if inline {
			w.EmitAndIndent(" ")
		} else {
			w.EmitAndIndent("\n")
		}
	}
}
