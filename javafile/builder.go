package javafile

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/decl"
	"github.com/viant/javagen/types"
)

// Builder assembles a File. The first error is kept and returned by Build.
type Builder struct {
	file    File
	comment *code.Builder
	err     error
}

// NewBuilder returns a builder for root in packageName.
func NewBuilder(packageName string, root *decl.Type) *Builder {
	return &Builder{
		file:    File{PackageName: packageName, Type: root},
		comment: code.NewBuilder(),
	}
}

// AddFileComment appends to the comment printed above the package clause.
func (b *Builder) AddFileComment(format string, args ...code.Arg) *Builder {
	b.comment.Add(format, args...)
	return b
}

// AddStaticImport requests static imports of members of owner; "*" imports every member.
// Repeated requests are idempotent.
func (b *Builder) AddStaticImport(owner types.ClassName, members ...string) *Builder {
	if len(members) == 0 {
		b.fail(errors.Newf("no members given for static import of %s", owner))
		return b
	}
	for _, member := range members {
		if member == "" {
			b.fail(errors.Newf("empty static import member of %s", owner))
			return b
		}
		b.file.StaticImports = append(b.file.StaticImports, types.StaticMember(owner, member))
	}
	return b
}

// AddStaticImportRef requests the static import of ref.
func (b *Builder) AddStaticImportRef(ref types.StaticImport) *Builder {
	return b.AddStaticImport(ref.Type, ref.Member)
}

// SkipJavaLangImports omits import lines for java.lang types.
func (b *Builder) SkipJavaLangImports(skip bool) *Builder {
	b.file.SkipJavaLangImports = skip
	return b
}

// Indent sets the indentation unit.
func (b *Builder) Indent(indent string) *Builder {
	b.file.Indent = indent
	return b
}

// ColumnLimit sets the wrapping column.
func (b *Builder) ColumnLimit(limit int) *Builder {
	b.file.ColumnLimit = limit
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build returns the validated file.
func (b *Builder) Build() (*File, error) {
	if b.err != nil {
		return nil, b.err
	}
	comment, err := b.comment.Build()
	if err != nil {
		return nil, err
	}
	ret := b.file
	ret.StaticImports = append([]types.StaticImport{}, b.file.StaticImports...)
	if !comment.IsEmpty() {
		ret.Comment = comment
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return &ret, nil
}
