package decl

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/types"
	"github.com/viant/javagen/writer"
)

// Kind is the kind of a type declaration.
type Kind int

const (
	ClassKind Kind = iota
	InterfaceKind
	EnumKind
	AnnotationKind
)

func (k Kind) keyword() string {
	switch k {
	case InterfaceKind:
		return "interface"
	case EnumKind:
		return "enum"
	case AnnotationKind:
		return "@interface"
	}
	return "class"
}

func (k Kind) String() string {
	if k == AnnotationKind {
		return "annotation"
	}
	return k.keyword()
}

// ParseKind returns the kind for "class", "interface", "enum" or "annotation".
func ParseKind(name string) (Kind, error) {
	switch name {
	case "", "class":
		return ClassKind, nil
	case "interface":
		return InterfaceKind, nil
	case "enum":
		return EnumKind, nil
	case "annotation", "@interface":
		return AnnotationKind, nil
	}
	return 0, errors.Newf("unknown type kind: %q", name)
}

func (k Kind) isInterfaceLike() bool {
	return k == InterfaceKind || k == AnnotationKind
}

// implicit modifiers of members declared in a type of this kind
func (k Kind) implicitFieldModifiers() []Modifier {
	if k.isInterfaceLike() {
		return []Modifier{Public, Static, Final}
	}
	return nil
}

func (k Kind) implicitMethodModifiers() []Modifier {
	if k.isInterfaceLike() {
		return []Modifier{Public, Abstract}
	}
	return nil
}

func (k Kind) implicitTypeModifiers() []Modifier {
	if k.isInterfaceLike() {
		return []Modifier{Public, Static}
	}
	return nil
}

// asMemberModifiers are implied when a type of this kind is nested.
func (k Kind) asMemberModifiers() []Modifier {
	if k == ClassKind {
		return nil
	}
	return []Modifier{Static}
}

// EnumConstant is a constant of an enum type, optionally with constructor arguments and a body.
type EnumConstant struct {
	Name        string
	Javadoc     *code.Block
	Annotations []Annotation
	Arguments   *code.Block
	Fields      []Field
	Methods     []Method
}

// Type is a class, interface, enum or annotation type declaration.
type Type struct {
	Kind            Kind
	Name            string
	Javadoc         *code.Block
	Annotations     []Annotation
	Modifiers       []Modifier
	TypeVariables   []types.TypeVariable
	Superclass      types.TypeName
	Superinterfaces []types.TypeName
	EnumConstants   []EnumConstant
	Fields          []Field
	StaticBlock     *code.Block
	Initializer     *code.Block
	Methods         []Method
	Types           []*Type
}

// NewClass returns an empty class declaration.
func NewClass(name string, modifiers ...Modifier) *Type {
	return &Type{Kind: ClassKind, Name: name, Modifiers: modifiers}
}

// NewInterface returns an empty interface declaration.
func NewInterface(name string, modifiers ...Modifier) *Type {
	return &Type{Kind: InterfaceKind, Name: name, Modifiers: modifiers}
}

// NewEnum returns an empty enum declaration.
func NewEnum(name string, modifiers ...Modifier) *Type {
	return &Type{Kind: EnumKind, Name: name, Modifiers: modifiers}
}

// NewAnnotationType returns an empty annotation type declaration.
func NewAnnotationType(name string, modifiers ...Modifier) *Type {
	return &Type{Kind: AnnotationKind, Name: name, Modifiers: modifiers}
}

// AddAnnotation appends an annotation.
func (t *Type) AddAnnotation(annotation Annotation) *Type {
	t.Annotations = append(t.Annotations, annotation)
	return t
}

// SetSuperclass sets the extended class.
func (t *Type) SetSuperclass(superclass types.TypeName) *Type {
	t.Superclass = superclass
	return t
}

// AddSuperinterface appends an implemented (or, for interfaces, extended) interface.
func (t *Type) AddSuperinterface(superinterface types.TypeName) *Type {
	t.Superinterfaces = append(t.Superinterfaces, superinterface)
	return t
}

// AddEnumConstant appends an enum constant.
func (t *Type) AddEnumConstant(constant EnumConstant) *Type {
	t.EnumConstants = append(t.EnumConstants, constant)
	return t
}

// AddField appends a field.
func (t *Type) AddField(field Field) *Type {
	t.Fields = append(t.Fields, field)
	return t
}

// AddMethod appends a method or constructor.
func (t *Type) AddMethod(method Method) *Type {
	t.Methods = append(t.Methods, method)
	return t
}

// AddType appends a member type.
func (t *Type) AddType(member *Type) *Type {
	t.Types = append(t.Types, member)
	return t
}

// AddStaticBlock appends statements to the static initializer.
func (t *Type) AddStaticBlock(block *code.Block) *Type {
	t.StaticBlock = appendBlock(t.StaticBlock, block)
	return t
}

// AddInitializer appends statements to the instance initializer.
func (t *Type) AddInitializer(block *code.Block) *Type {
	t.Initializer = appendBlock(t.Initializer, block)
	return t
}

func appendBlock(existing, block *code.Block) *code.Block {
	if existing.IsEmpty() {
		return block
	}
	joined, err := code.NewBuilder().AddBlock(existing).AddBlock(block).Build()
	if err != nil {
		return existing
	}
	return joined
}

// NestedNames returns the simple names of the member types.
func (t *Type) NestedNames() []string {
	ret := make([]string, len(t.Types))
	for i, member := range t.Types {
		ret[i] = member.Name
	}
	return ret
}

// ClassName returns the class name of t when it is the top-level type of packageName.
func (t *Type) ClassName(packageName string) types.ClassName {
	return types.Get(packageName, t.Name)
}

// Emit writes the declaration of a top-level type.
func (t *Type) Emit(w *writer.Writer) {
	t.emit(w, nil)
}

func (t *Type) emit(w *writer.Writer, implicit []Modifier) {
	previous := w.SuspendStatement()
	defer w.ResumeStatement(previous)

	w.PushScope(writer.Scope{Name: t.Name})
	w.EmitJavadoc(t.Javadoc)
	emitAnnotations(w, t.Annotations, false)
	emitModifiers(w, t.Modifiers, append(append([]Modifier{}, implicit...), t.Kind.asMemberModifiers()...)...)
	w.Emit("$L $N", code.L(t.Kind.keyword()), code.N(t.Name))
	w.EmitTypeVariables(t.TypeVariables)

	extendsTypes, implementsTypes := t.supertypes()
	emitSupertypes(w, " extends", extendsTypes)
	emitSupertypes(w, " implements", implementsTypes)
	w.PopScope()
	w.EmitAndIndent(" {\n")

	w.PushScope(writer.Scope{Name: t.Name, Nested: t.NestedNames()})
	w.IndentBy(1)
	t.emitMembers(w)
	w.UnindentBy(1)
	w.PopScope()
	for _, variable := range t.TypeVariables {
		w.PopTypeVariables(variable.Name)
	}
	w.EmitAndIndent("}\n")
}

func (t *Type) supertypes() (extendsTypes, implementsTypes []types.TypeName) {
	if t.Kind == InterfaceKind {
		return t.Superinterfaces, nil
	}
	if t.Superclass != nil {
		if className, ok := t.Superclass.(types.ClassName); !ok || className != types.Object {
			extendsTypes = []types.TypeName{t.Superclass}
		}
	}
	return extendsTypes, t.Superinterfaces
}

func emitSupertypes(w *writer.Writer, keyword string, supertypes []types.TypeName) {
	if len(supertypes) == 0 {
		return
	}
	w.EmitAndIndent(keyword)
	for i, supertype := range supertypes {
		if i > 0 {
			w.EmitAndIndent(",")
		}
		w.Emit(" $T", code.T(supertype))
	}
}

func (t *Type) emitMembers(w *writer.Writer) {
	first := true
	separate := func() {
		if !first {
			w.EmitBlankLine()
		}
		first = false
	}

	needsSeparator := t.Kind == EnumKind && (len(t.Fields) > 0 || len(t.Methods) > 0 || len(t.Types) > 0)
	for i, constant := range t.EnumConstants {
		separate()
		constant.emit(w)
		switch {
		case i+1 < len(t.EnumConstants):
			w.EmitAndIndent(",\n")
		case !needsSeparator:
			w.EmitAndIndent("\n")
		}
	}
	if needsSeparator {
		w.EmitAndIndent(";\n")
	}

	fieldImplicit := t.Kind.implicitFieldModifiers()
	for _, field := range t.Fields {
		if !t.isStaticField(field) {
			continue
		}
		separate()
		field.emit(w, fieldImplicit)
	}
	if !t.StaticBlock.IsEmpty() {
		separate()
		emitInitializer(w, "static {\n", t.StaticBlock)
	}
	for _, field := range t.Fields {
		if t.isStaticField(field) {
			continue
		}
		separate()
		field.emit(w, fieldImplicit)
	}
	if !t.Initializer.IsEmpty() {
		separate()
		emitInitializer(w, "{\n", t.Initializer)
	}

	methodImplicit := t.Kind.implicitMethodModifiers()
	for _, method := range t.Methods {
		if !method.IsConstructor() {
			continue
		}
		separate()
		method.emit(w, t.Name, methodImplicit, false)
	}
	for _, method := range t.Methods {
		if method.IsConstructor() {
			continue
		}
		separate()
		method.emit(w, t.Name, methodImplicit, t.isBodyless(method))
	}

	typeImplicit := t.Kind.implicitTypeModifiers()
	for _, member := range t.Types {
		separate()
		member.emit(w, typeImplicit)
	}
}

func (t *Type) isStaticField(field Field) bool {
	return field.IsStatic() || t.Kind.isInterfaceLike()
}

// isBodyless reports whether an interface or annotation method has no body: anything that is
// not a default, static or private method.
func (t *Type) isBodyless(method Method) bool {
	if !t.Kind.isInterfaceLike() {
		return false
	}
	return !hasModifier(method.Modifiers, Default) && !hasModifier(method.Modifiers, Static) &&
		!hasModifier(method.Modifiers, Private)
}

func emitInitializer(w *writer.Writer, opening string, block *code.Block) {
	w.EmitAndIndent(opening)
	w.IndentBy(1)
	w.EmitBlock(block, true)
	w.UnindentBy(1)
	w.EmitAndIndent("}\n")
}

func (c EnumConstant) emit(w *writer.Writer) {
	w.EmitJavadoc(c.Javadoc)
	emitAnnotations(w, c.Annotations, false)
	w.Emit("$N", code.N(c.Name))
	if !c.Arguments.IsEmpty() {
		w.EmitAndIndent("(")
		w.EmitBlock(c.Arguments, false)
		w.EmitAndIndent(")")
	}
	if len(c.Fields) == 0 && len(c.Methods) == 0 {
		return
	}
	w.EmitAndIndent(" {\n")
	w.PushScope(writer.Scope{})
	w.IndentBy(1)
	first := true
	for _, field := range c.Fields {
		if !first {
			w.EmitBlankLine()
		}
		first = false
		field.emit(w, nil)
	}
	for _, method := range c.Methods {
		if !first {
			w.EmitBlankLine()
		}
		first = false
		method.emit(w, c.Name, nil, false)
	}
	w.UnindentBy(1)
	w.PopScope()
	w.EmitAndIndent("}")
}
