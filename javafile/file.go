package javafile

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/decl"
	"github.com/viant/javagen/inspector/graph"
	"github.com/viant/javagen/types"
	"io"
	"strings"
)

// File is a Java compilation unit: a package, an optional leading comment, static imports and
// a single top-level type. A File is not modified by rendering and may be rendered repeatedly.
type File struct {
	PackageName   string
	Comment       *code.Block
	Type          *decl.Type
	StaticImports []types.StaticImport
	// SkipJavaLangImports omits import lines for java.lang types.
	SkipJavaLangImports bool
	Indent              string
	ColumnLimit         int
}

// Validate checks the file before rendering.
func (f *File) Validate() error {
	if f == nil {
		return errors.New("file is nil")
	}
	if f.Type == nil {
		return errors.New("file has no type")
	}
	for _, imp := range f.StaticImports {
		if imp.Type.IsZero() {
			return errors.Newf("static import %q has no type", imp.Member)
		}
		if !imp.IsWildcard() && !code.IsIdentifier(imp.Member) {
			return errors.Newf("invalid static import member %q of %s", imp.Member, imp.Type)
		}
	}
	return f.Type.Validate()
}

// ClassName returns the class name of the top-level type.
func (f *File) ClassName() types.ClassName {
	return f.Type.ClassName(f.PackageName)
}

// Path returns the relative location of the source file, e.g. "com/squareup/tacos/Taco.java".
// A file without a type yields its package directory only.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	dir := strings.ReplaceAll(f.PackageName, ".", "/")
	if f.Type == nil {
		return dir
	}
	name := f.Type.Name + ".java"
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Render returns the source text.
func (f *File) Render() (string, error) {
	return NewAssembler().Assemble(f)
}

// String returns the source text, or an empty string if rendering fails.
func (f *File) String() string {
	text, err := f.Render()
	if err != nil {
		return ""
	}
	return text
}

// WriteTo writes the source text to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	text, err := f.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, text)
	return int64(n), err
}

// Fingerprint returns a content hash of the source text.
func (f *File) Fingerprint() (uint64, error) {
	text, err := f.Render()
	if err != nil {
		return 0, err
	}
	return graph.HashText(text)
}

// Store renders the file and uploads it under baseURL at Path. It returns the destination URL.
func (f *File) Store(ctx context.Context, fs afs.Service, baseURL string) (string, error) {
	text, err := f.Render()
	if err != nil {
		return "", err
	}
	destURL := url.Join(baseURL, f.Path())
	if err = fs.Upload(ctx, destURL, file.DefaultFileOsMode, strings.NewReader(text)); err != nil {
		return "", errors.Wrapf(err, "failed to store %s", destURL)
	}
	return destURL, nil
}
