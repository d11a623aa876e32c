package writer

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/types"
	"strings"
)

// LookupName returns the shortest form of className that resolves to it from the current
// scope: a suffix relative to an enclosing or imported class, the relative name of a class in
// the same package, or the canonical name. While collecting, classes that would need their
// canonical name are recorded as import candidates.
func (w *Writer) LookupName(className types.ClassName) string {
	topLevel := className.TopLevel()
	if w.isTypeVariable(topLevel.SimpleName()) {
		return className.CanonicalName()
	}

	nameResolved := false
	for c, ok := className, true; ok; c, ok = c.Enclosing() {
		resolved, found := w.resolve(c.SimpleName())
		nameResolved = found
		if found && resolved == c {
			names := className.SimpleNames()
			return strings.Join(names[c.Depth()-1:], ".")
		}
	}
	if nameResolved {
		return className.CanonicalName()
	}

	if className.PackageName() == w.packageName {
		if w.mode == Collecting {
			w.candidates.Add(className)
		}
		return className.RelativeName()
	}
	if w.mode == Collecting && !w.javadoc {
		w.candidates.Add(className)
	}
	return className.CanonicalName()
}

// resolve finds the class simpleName refers to at this point: a member type of an open scope,
// the top-level type of the file, or the class imported under that name.
func (w *Writer) resolve(simpleName string) (types.ClassName, bool) {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if w.scopes[i].hasNested(simpleName) {
			return w.scopeClassName(i, simpleName), true
		}
	}
	if len(w.scopes) > 0 && w.scopes[0].Name == simpleName {
		return types.Get(w.packageName, simpleName), true
	}
	return w.resolution.Imported(simpleName)
}

func (w *Writer) scopeClassName(depth int, simpleName string) types.ClassName {
	names := make([]string, 0, depth+1)
	for i := 1; i <= depth; i++ {
		names = append(names, w.scopes[i].Name)
	}
	names = append(names, simpleName)
	return types.Get(w.packageName, w.scopes[0].Name, names...)
}

// EmitType prints a type reference.
func (w *Writer) EmitType(typeName types.TypeName) {
	switch actual := typeName.(type) {
	case types.ClassName:
		w.EmitAndIndent(w.LookupName(actual))
	case types.ArrayType:
		w.EmitType(actual.Component)
		w.EmitAndIndent("[]")
	case types.ParameterizedType:
		w.EmitType(actual.Raw)
		if len(actual.Arguments) == 0 {
			return
		}
		w.EmitAndIndent("<")
		for i, argument := range actual.Arguments {
			if i > 0 {
				w.EmitAndIndent(", ")
			}
			w.EmitType(argument)
		}
		w.EmitAndIndent(">")
	case types.WildcardType:
		if actual.Bound == nil {
			w.EmitAndIndent("?")
			return
		}
		if actual.Super {
			w.EmitAndIndent("? super ")
		} else {
			if bound, ok := actual.Bound.(types.ClassName); ok && bound == types.Object {
				w.EmitAndIndent("?")
				return
			}
			w.EmitAndIndent("? extends ")
		}
		w.EmitType(actual.Bound)
	case types.TypeVariable:
		w.EmitAndIndent(actual.Name)
	case nil:
		w.Fail(errors.New("nil type reference"))
	default:
		w.EmitAndIndent(typeName.String())
	}
}

// EmitTypeVariables emits "<T extends A & B, U>" and brings the names into scope until
// PopTypeVariables.
func (w *Writer) EmitTypeVariables(variables []types.TypeVariable) {
	if len(variables) == 0 {
		return
	}
	for _, variable := range variables {
		w.typeVariables = append(w.typeVariables, variable.Name)
	}
	w.EmitAndIndent("<")
	for i, variable := range variables {
		if i > 0 {
			w.EmitAndIndent(", ")
		}
		w.EmitAndIndent(variable.Name)
		for j, bound := range variable.Bounds {
			if j == 0 {
				w.EmitAndIndent(" extends ")
			} else {
				w.EmitAndIndent(" & ")
			}
			w.EmitType(bound)
		}
	}
	w.EmitAndIndent(">")
}
