package decl

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/types"
)

// Validate checks the declaration tree for problems the writer cannot recover from: illegal
// names, members that the kind does not allow and missing types.
func (t *Type) Validate() error {
	if !code.IsIdentifier(t.Name) {
		return errors.Newf("type: invalid name %q", t.Name)
	}
	if len(t.EnumConstants) > 0 && t.Kind != EnumKind {
		return errors.Newf("%s: only enums may declare constants", t.Name)
	}
	if t.Superclass != nil && t.Kind != ClassKind {
		return errors.Newf("%s: only classes may have a superclass", t.Name)
	}
	if !t.StaticBlock.IsEmpty() && t.Kind.isInterfaceLike() {
		return errors.Newf("%s: %v cannot have a static block", t.Name, t.Kind)
	}
	if !t.Initializer.IsEmpty() && t.Kind.isInterfaceLike() {
		return errors.Newf("%s: %v cannot have an initializer", t.Name, t.Kind)
	}
	for _, constant := range t.EnumConstants {
		if !code.IsIdentifier(constant.Name) {
			return errors.Newf("%s: invalid enum constant %q", t.Name, constant.Name)
		}
	}
	for _, field := range t.Fields {
		if err := field.validate(); err != nil {
			return errors.Wrapf(err, "%s", t.Name)
		}
	}
	seen := map[string]bool{}
	for _, member := range t.Types {
		if member == nil {
			return errors.Newf("%s: nil member type", t.Name)
		}
		if member.Name == t.Name {
			return errors.Newf("%s: member type has the same name as its enclosing type", t.Name)
		}
		if seen[member.Name] {
			return errors.Newf("%s: duplicate member type %s", t.Name, member.Name)
		}
		seen[member.Name] = true
		if err := member.Validate(); err != nil {
			return errors.Wrapf(err, "%s", t.Name)
		}
	}
	for _, method := range t.Methods {
		if err := method.validate(t); err != nil {
			return errors.Wrapf(err, "%s", t.Name)
		}
	}
	return nil
}

func (f Field) validate() error {
	if f.Type == nil {
		return errors.Newf("field %s: missing type", f.Name)
	}
	if !code.IsIdentifier(f.Name) {
		return errors.Newf("field: invalid name %q", f.Name)
	}
	return nil
}

func (m Method) validate(owner *Type) error {
	if m.IsConstructor() {
		if owner.Kind.isInterfaceLike() {
			return errors.Newf("%v cannot declare a constructor", owner.Kind)
		}
		if m.Returns != nil {
			return errors.New("constructor cannot have a return type")
		}
	} else if !code.IsIdentifier(m.Name) {
		return errors.Newf("method: invalid name %q", m.Name)
	}
	if hasModifier(m.Modifiers, Abstract) && !m.Body.IsEmpty() {
		return errors.Newf("abstract method %s cannot have code", m.Name)
	}
	if hasModifier(m.Modifiers, Abstract) && owner.Kind == ClassKind && !hasModifier(owner.Modifiers, Abstract) {
		return errors.Newf("non-abstract type %s cannot declare abstract method %s", owner.Name, m.Name)
	}
	if !m.DefaultValue.IsEmpty() && owner.Kind != AnnotationKind {
		return errors.Newf("method %s: only annotation elements have default values", m.Name)
	}
	if m.Varargs {
		if len(m.Parameters) == 0 {
			return errors.Newf("method %s: varargs without parameters", m.Name)
		}
		if _, ok := m.Parameters[len(m.Parameters)-1].Type.(types.ArrayType); !ok {
			return errors.Newf("method %s: last parameter of varargs method must be an array", m.Name)
		}
	}
	for _, parameter := range m.Parameters {
		if parameter.Type == nil {
			return errors.Newf("method %s: parameter %s has no type", m.Name, parameter.Name)
		}
		if !code.IsIdentifier(parameter.Name) {
			return errors.Newf("method %s: invalid parameter name %q", m.Name, parameter.Name)
		}
	}
	return nil
}
