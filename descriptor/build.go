package descriptor

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/viant/afs"
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/decl"
	"github.com/viant/javagen/javafile"
	"github.com/viant/javagen/types"
	"gopkg.in/yaml.v3"
	"strings"
)

// Load decodes a YAML document and builds its files.
func Load(data []byte) ([]*javafile.File, error) {
	document := &Document{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, errors.Wrap(err, "failed to decode descriptor")
	}
	return document.Build()
}

// LoadURL downloads and loads the descriptor at URL.
func LoadURL(ctx context.Context, fs afs.Service, URL string) ([]*javafile.File, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download descriptor %s", URL)
	}
	ret, err := Load(data)
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor %s", URL)
	}
	return ret, nil
}

// Build converts every file description into a validated file.
func (d *Document) Build() ([]*javafile.File, error) {
	var ret []*javafile.File
	for i, file := range d.Files {
		if file == nil {
			return nil, errors.Newf("files[%d]: empty file description", i)
		}
		aFile, err := file.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "files[%d]", i)
		}
		ret = append(ret, aFile)
	}
	return ret, nil
}

// Build converts the description into a validated file.
func (f *File) Build() (*javafile.File, error) {
	if f == nil {
		return nil, errors.New("empty file description")
	}
	if f.Type == nil {
		return nil, errors.New("type is required")
	}
	root, err := f.Type.build(scope{})
	if err != nil {
		return nil, errors.Wrapf(err, "type %s", f.Type.Name)
	}
	builder := javafile.NewBuilder(f.Package, root).
		SkipJavaLangImports(f.SkipJavaLangImports).
		Indent(f.Indent).
		ColumnLimit(f.ColumnLimit)
	if f.Comment != nil {
		comment, err := f.Comment.block(scope{})
		if err != nil {
			return nil, errors.Wrap(err, "comment")
		}
		builder.AddFileComment("$L", code.L(comment))
	}
	for _, ref := range f.StaticImports {
		idx := strings.LastIndexByte(ref, '.')
		if idx == -1 {
			return nil, errors.Newf("invalid static import %q", ref)
		}
		owner, err := types.BestGuess(ref[:idx])
		if err != nil {
			return nil, errors.Wrapf(err, "static import %q", ref)
		}
		builder.AddStaticImport(owner, ref[idx+1:])
	}
	return builder.Build()
}

// scope holds the type variables visible to a declaration.
type scope map[string]bool

func (s scope) with(variables []*TypeVariable) scope {
	if len(variables) == 0 {
		return s
	}
	ret := scope{}
	for name := range s {
		ret[name] = true
	}
	for _, variable := range variables {
		if variable != nil {
			ret[variable.Name] = true
		}
	}
	return ret
}

func (s scope) typeName(text string) (types.TypeName, error) {
	return parseType(text, s)
}

func (s scope) typeNames(texts []string) ([]types.TypeName, error) {
	var ret []types.TypeName
	for _, text := range texts {
		typeName, err := s.typeName(text)
		if err != nil {
			return nil, err
		}
		ret = append(ret, typeName)
	}
	return ret, nil
}

func (s scope) typeVariables(variables []*TypeVariable) ([]types.TypeVariable, error) {
	var ret []types.TypeVariable
	for i, variable := range variables {
		if variable == nil {
			return nil, errors.Newf("typeVariables[%d]: empty type variable", i)
		}
		bounds, err := s.typeNames(variable.Bounds)
		if err != nil {
			return nil, errors.Wrapf(err, "type variable %s", variable.Name)
		}
		ret = append(ret, types.VariableOf(variable.Name, bounds...))
	}
	return ret, nil
}

func (s scope) className(text string) (types.ClassName, error) {
	typeName, err := s.typeName(text)
	if err != nil {
		return types.ClassName{}, err
	}
	className, ok := typeName.(types.ClassName)
	if !ok {
		return types.ClassName{}, errors.Newf("%q is not a class name", text)
	}
	return className, nil
}

func (a *Arg) arg(s scope) (code.Arg, error) {
	if a == nil {
		return code.Arg{}, errors.New("empty argument")
	}
	switch a.Kind {
	case LiteralArg:
		return code.L(a.Value), nil
	case StringArg:
		return code.S(a.Value.(string)), nil
	case NullArg:
		return code.NullS(), nil
	case TypeArg:
		typeName, err := s.typeName(a.Value.(string))
		if err != nil {
			return code.Arg{}, err
		}
		return code.T(typeName), nil
	case NameArg:
		return code.N(a.Value.(string)), nil
	case CodeArg:
		block, err := a.Code.block(s)
		if err != nil {
			return code.Arg{}, err
		}
		return code.L(block), nil
	}
	return code.Arg{}, errors.Newf("unknown argument kind %q", a.Kind)
}

func args(s scope, list []*Arg) ([]code.Arg, error) {
	ret := make([]code.Arg, 0, len(list))
	for i, item := range list {
		arg, err := item.arg(s)
		if err != nil {
			return nil, errors.Wrapf(err, "args[%d]", i)
		}
		ret = append(ret, arg)
	}
	return ret, nil
}

func (t *Template) block(s scope) (*code.Block, error) {
	if t == nil {
		return nil, nil
	}
	list, err := args(s, t.Args)
	if err != nil {
		return nil, err
	}
	return code.Of(t.Format, list...)
}

func steps(s scope, list []*Step) (*code.Block, error) {
	if len(list) == 0 {
		return nil, nil
	}
	builder := code.NewBuilder()
	for i, step := range list {
		if step == nil {
			return nil, errors.Newf("step %d: empty step", i)
		}
		stepArgs, err := args(s, step.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		switch {
		case step.Code != "":
			builder.Add(step.Code, stepArgs...)
		case step.Statement != "":
			builder.AddStatement(step.Statement, stepArgs...)
		case step.Comment != "":
			builder.AddComment(step.Comment, stepArgs...)
		case step.BeginControlFlow != "":
			builder.BeginControlFlow(step.BeginControlFlow, stepArgs...)
		case step.NextControlFlow != "":
			builder.NextControlFlow(step.NextControlFlow, stepArgs...)
		case step.EndControlFlowWith != "":
			builder.EndControlFlowWith(step.EndControlFlowWith, stepArgs...)
		case step.EndControlFlow:
			builder.EndControlFlow()
		case step.Indent:
			builder.Indent()
		case step.Unindent:
			builder.Unindent()
		default:
			return nil, errors.Newf("step %d: no operation", i)
		}
	}
	return builder.Build()
}

func annotations(s scope, list []*Annotation) ([]decl.Annotation, error) {
	var ret []decl.Annotation
	for i, item := range list {
		if item == nil {
			return nil, errors.Newf("annotations[%d]: empty annotation", i)
		}
		annotationType, err := s.className(item.Type)
		if err != nil {
			return nil, errors.Wrap(err, "annotation")
		}
		annotation := decl.NewAnnotation(annotationType)
		for j, member := range item.Members {
			if member == nil {
				return nil, errors.Newf("annotation %s: members[%d]: empty member", item.Type, j)
			}
			for k, value := range member.Values {
				if value == nil {
					return nil, errors.Newf("annotation %s member %s: values[%d]: empty value", item.Type, member.Name, k)
				}
				block, err := value.block(s)
				if err != nil {
					return nil, errors.Wrapf(err, "annotation %s member %s", item.Type, member.Name)
				}
				annotation = annotation.AddMember(member.Name, block)
			}
		}
		ret = append(ret, annotation)
	}
	return ret, nil
}

func (f *Field) build(s scope) (decl.Field, error) {
	if f == nil {
		return decl.Field{}, errors.New("empty field description")
	}
	fieldType, err := s.typeName(f.Type)
	if err != nil {
		return decl.Field{}, errors.Wrapf(err, "field %s", f.Name)
	}
	ret := decl.NewField(fieldType, f.Name, f.Modifiers...)
	if ret.Javadoc, err = f.Javadoc.block(s); err != nil {
		return decl.Field{}, errors.Wrapf(err, "field %s javadoc", f.Name)
	}
	if ret.Annotations, err = annotations(s, f.Annotations); err != nil {
		return decl.Field{}, errors.Wrapf(err, "field %s", f.Name)
	}
	if ret.Initializer, err = f.Initializer.block(s); err != nil {
		return decl.Field{}, errors.Wrapf(err, "field %s initializer", f.Name)
	}
	return ret, nil
}

func (p *Parameter) build(s scope) (decl.Parameter, error) {
	if p == nil {
		return decl.Parameter{}, errors.New("empty parameter description")
	}
	paramType, err := s.typeName(p.Type)
	if err != nil {
		return decl.Parameter{}, errors.Wrapf(err, "parameter %s", p.Name)
	}
	ret := decl.NewParameter(paramType, p.Name, p.Modifiers...)
	if ret.Javadoc, err = p.Javadoc.block(s); err != nil {
		return decl.Parameter{}, errors.Wrapf(err, "parameter %s javadoc", p.Name)
	}
	if ret.Annotations, err = annotations(s, p.Annotations); err != nil {
		return decl.Parameter{}, errors.Wrapf(err, "parameter %s", p.Name)
	}
	return ret, nil
}

func (m *Method) build(s scope) (decl.Method, error) {
	if m == nil {
		return decl.Method{}, errors.New("empty method description")
	}
	ret := decl.NewMethod(m.Name, m.Modifiers...)
	if m.Constructor {
		ret = decl.NewConstructor(m.Modifiers...)
	}
	name := ret.Name
	s = s.with(m.TypeVariables)
	var err error
	if ret.TypeVariables, err = s.typeVariables(m.TypeVariables); err != nil {
		return decl.Method{}, errors.Wrapf(err, "method %s", name)
	}
	if ret.Javadoc, err = m.Javadoc.block(s); err != nil {
		return decl.Method{}, errors.Wrapf(err, "method %s javadoc", name)
	}
	if ret.Annotations, err = annotations(s, m.Annotations); err != nil {
		return decl.Method{}, errors.Wrapf(err, "method %s", name)
	}
	if m.Returns != "" {
		if ret.Returns, err = s.typeName(m.Returns); err != nil {
			return decl.Method{}, errors.Wrapf(err, "method %s", name)
		}
	}
	for _, parameter := range m.Parameters {
		param, err := parameter.build(s)
		if err != nil {
			return decl.Method{}, errors.Wrapf(err, "method %s", name)
		}
		ret.Parameters = append(ret.Parameters, param)
	}
	ret.Varargs = m.Varargs
	if ret.Exceptions, err = s.typeNames(m.Exceptions); err != nil {
		return decl.Method{}, errors.Wrapf(err, "method %s", name)
	}
	if ret.Body, err = steps(s, m.Body); err != nil {
		return decl.Method{}, errors.Wrapf(err, "method %s body", name)
	}
	if ret.DefaultValue, err = m.DefaultValue.block(s); err != nil {
		return decl.Method{}, errors.Wrapf(err, "method %s default", name)
	}
	return ret, nil
}

func (c *EnumConstant) build(s scope) (decl.EnumConstant, error) {
	if c == nil {
		return decl.EnumConstant{}, errors.New("empty enum constant description")
	}
	ret := decl.EnumConstant{Name: c.Name}
	var err error
	if ret.Javadoc, err = c.Javadoc.block(s); err != nil {
		return ret, errors.Wrapf(err, "constant %s javadoc", c.Name)
	}
	if ret.Annotations, err = annotations(s, c.Annotations); err != nil {
		return ret, errors.Wrapf(err, "constant %s", c.Name)
	}
	if ret.Arguments, err = c.Arguments.block(s); err != nil {
		return ret, errors.Wrapf(err, "constant %s arguments", c.Name)
	}
	for _, field := range c.Fields {
		item, err := field.build(s)
		if err != nil {
			return ret, errors.Wrapf(err, "constant %s", c.Name)
		}
		ret.Fields = append(ret.Fields, item)
	}
	for _, method := range c.Methods {
		item, err := method.build(s)
		if err != nil {
			return ret, errors.Wrapf(err, "constant %s", c.Name)
		}
		ret.Methods = append(ret.Methods, item)
	}
	return ret, nil
}

func (t *Type) build(s scope) (*decl.Type, error) {
	if t == nil {
		return nil, errors.New("empty type description")
	}
	kind, err := decl.ParseKind(t.Kind)
	if err != nil {
		return nil, err
	}
	ret := &decl.Type{Kind: kind, Name: t.Name, Modifiers: t.Modifiers}
	s = s.with(t.TypeVariables)
	if ret.TypeVariables, err = s.typeVariables(t.TypeVariables); err != nil {
		return nil, err
	}
	if ret.Javadoc, err = t.Javadoc.block(s); err != nil {
		return nil, errors.Wrap(err, "javadoc")
	}
	if ret.Annotations, err = annotations(s, t.Annotations); err != nil {
		return nil, err
	}
	if t.Superclass != "" {
		if ret.Superclass, err = s.typeName(t.Superclass); err != nil {
			return nil, errors.Wrap(err, "superclass")
		}
	}
	if ret.Superinterfaces, err = s.typeNames(t.Superinterfaces); err != nil {
		return nil, errors.Wrap(err, "superinterfaces")
	}
	for i, constant := range t.EnumConstants {
		item, err := constant.build(s)
		if err != nil {
			return nil, errors.Wrapf(err, "enumConstants[%d]", i)
		}
		ret.AddEnumConstant(item)
	}
	for i, field := range t.Fields {
		item, err := field.build(s)
		if err != nil {
			return nil, errors.Wrapf(err, "fields[%d]", i)
		}
		ret.AddField(item)
	}
	if ret.StaticBlock, err = steps(s, t.StaticBlock); err != nil {
		return nil, errors.Wrap(err, "static block")
	}
	if ret.Initializer, err = steps(s, t.Initializer); err != nil {
		return nil, errors.Wrap(err, "initializer")
	}
	for i, method := range t.Methods {
		item, err := method.build(s)
		if err != nil {
			return nil, errors.Wrapf(err, "methods[%d]", i)
		}
		ret.AddMethod(item)
	}
	for i, member := range t.Types {
		item, err := member.build(s)
		if err != nil {
			return nil, errors.Wrapf(err, "types[%d]", i)
		}
		ret.AddType(item)
	}
	return ret, nil
}
