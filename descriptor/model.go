package descriptor

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/decl"
	"gopkg.in/yaml.v3"
)

// Document lists the files to generate.
type Document struct {
	Files []*File `yaml:"files"`
}

// File describes one compilation unit.
type File struct {
	Package             string    `yaml:"package,omitempty"`
	Comment             *Template `yaml:"comment,omitempty"`
	SkipJavaLangImports bool      `yaml:"skipJavaLangImports,omitempty"`
	Indent              string    `yaml:"indent,omitempty"`
	ColumnLimit         int       `yaml:"columnLimit,omitempty"`
	// StaticImports holds references such as "java.util.concurrent.TimeUnit.SECONDS" or "java.lang.System.*".
	StaticImports []string `yaml:"staticImports,omitempty"`
	Type          *Type    `yaml:"type"`
}

// Type describes a class, interface, enum or annotation type.
type Type struct {
	Kind            string          `yaml:"kind,omitempty"`
	Name            string          `yaml:"name"`
	Javadoc         *Template       `yaml:"javadoc,omitempty"`
	Annotations     []*Annotation   `yaml:"annotations,omitempty"`
	Modifiers       []decl.Modifier `yaml:"modifiers,omitempty"`
	TypeVariables   []*TypeVariable `yaml:"typeVariables,omitempty"`
	Superclass      string          `yaml:"superclass,omitempty"`
	Superinterfaces []string        `yaml:"superinterfaces,omitempty"`
	EnumConstants   []*EnumConstant `yaml:"enumConstants,omitempty"`
	Fields          []*Field        `yaml:"fields,omitempty"`
	StaticBlock     []*Step         `yaml:"staticBlock,omitempty"`
	Initializer     []*Step         `yaml:"initializer,omitempty"`
	Methods         []*Method       `yaml:"methods,omitempty"`
	Types           []*Type         `yaml:"types,omitempty"`
}

// TypeVariable describes a type parameter with optional bounds.
type TypeVariable struct {
	Name   string   `yaml:"name"`
	Bounds []string `yaml:"bounds,omitempty"`
}

// Annotation describes an annotation use.
type Annotation struct {
	Type    string              `yaml:"type"`
	Members []*AnnotationMember `yaml:"members,omitempty"`
}

// AnnotationMember holds the values of one annotation element.
type AnnotationMember struct {
	Name   string      `yaml:"name"`
	Values []*Template `yaml:"values"`
}

// EnumConstant describes an enum constant.
type EnumConstant struct {
	Name        string        `yaml:"name"`
	Javadoc     *Template     `yaml:"javadoc,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	Arguments   *Template     `yaml:"arguments,omitempty"`
	Fields      []*Field      `yaml:"fields,omitempty"`
	Methods     []*Method     `yaml:"methods,omitempty"`
}

// Field describes a field.
type Field struct {
	Type        string          `yaml:"type"`
	Name        string          `yaml:"name"`
	Javadoc     *Template       `yaml:"javadoc,omitempty"`
	Annotations []*Annotation   `yaml:"annotations,omitempty"`
	Modifiers   []decl.Modifier `yaml:"modifiers,omitempty"`
	Initializer *Template       `yaml:"initializer,omitempty"`
}

// Parameter describes a method parameter.
type Parameter struct {
	Type        string          `yaml:"type"`
	Name        string          `yaml:"name"`
	Javadoc     *Template       `yaml:"javadoc,omitempty"`
	Annotations []*Annotation   `yaml:"annotations,omitempty"`
	Modifiers   []decl.Modifier `yaml:"modifiers,omitempty"`
}

// Method describes a method, or a constructor when Constructor is set.
type Method struct {
	Name          string          `yaml:"name,omitempty"`
	Constructor   bool            `yaml:"constructor,omitempty"`
	Javadoc       *Template       `yaml:"javadoc,omitempty"`
	Annotations   []*Annotation   `yaml:"annotations,omitempty"`
	Modifiers     []decl.Modifier `yaml:"modifiers,omitempty"`
	TypeVariables []*TypeVariable `yaml:"typeVariables,omitempty"`
	Returns       string          `yaml:"returns,omitempty"`
	Parameters    []*Parameter    `yaml:"parameters,omitempty"`
	Varargs       bool            `yaml:"varargs,omitempty"`
	Exceptions    []string        `yaml:"exceptions,omitempty"`
	Body          []*Step         `yaml:"body,omitempty"`
	DefaultValue  *Template       `yaml:"defaultValue,omitempty"`
}

// Step is one code builder call; exactly one of the operation fields is set.
type Step struct {
	Code               string `yaml:"code,omitempty"`
	Statement          string `yaml:"statement,omitempty"`
	Comment            string `yaml:"comment,omitempty"`
	BeginControlFlow   string `yaml:"beginControlFlow,omitempty"`
	NextControlFlow    string `yaml:"nextControlFlow,omitempty"`
	EndControlFlow     bool   `yaml:"endControlFlow,omitempty"`
	EndControlFlowWith string `yaml:"endControlFlowWith,omitempty"`
	Indent             bool   `yaml:"indent,omitempty"`
	Unindent           bool   `yaml:"unindent,omitempty"`
	Args               []*Arg `yaml:"args,omitempty"`
}

// UnmarshalYAML accepts a plain scalar as a statement.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Step{Statement: node.Value}
		return nil
	}
	type step Step
	var ret step
	if err := node.Decode(&ret); err != nil {
		return err
	}
	*s = Step(ret)
	return nil
}

// Template is a format string with arguments.
type Template struct {
	Format string `yaml:"format"`
	Args   []*Arg `yaml:"args,omitempty"`
}

// UnmarshalYAML accepts a plain scalar as a format without arguments.
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Template{Format: node.Value}
		return nil
	}
	type template Template
	var ret template
	if err := node.Decode(&ret); err != nil {
		return err
	}
	*t = Template(ret)
	return nil
}

// ArgKind identifies the variant of an Arg.
type ArgKind string

const (
	LiteralArg ArgKind = "literal"
	StringArg  ArgKind = "string"
	NullArg    ArgKind = "null"
	TypeArg    ArgKind = "type"
	NameArg    ArgKind = "name"
	CodeArg    ArgKind = "code"
)

// Arg is a template argument written as a single-key mapping, e.g. {type: java.util.List}.
type Arg struct {
	Kind  ArgKind
	Value interface{}
	Code  *Template
}

// UnmarshalYAML decodes a single-key mapping.
func (a *Arg) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return errors.Newf("line %d: argument must be a mapping with exactly one key", node.Line)
	}
	key, value := node.Content[0].Value, node.Content[1]
	ret := Arg{Kind: ArgKind(key)}
	switch ret.Kind {
	case LiteralArg:
		if err := value.Decode(&ret.Value); err != nil {
			return err
		}
	case StringArg, TypeArg, NameArg:
		var text string
		if err := value.Decode(&text); err != nil {
			return err
		}
		ret.Value = text
	case NullArg:
	case CodeArg:
		ret.Code = &Template{}
		if err := value.Decode(ret.Code); err != nil {
			return err
		}
	default:
		return errors.Newf("line %d: unknown argument kind %q", node.Line, key)
	}
	*a = ret
	return nil
}
