package graph

import (
	"strings"
)

// File summarizes a Java compilation unit
type File struct {
	Path    string   // File path or URL
	Package string   // Package name, empty for the default package
	Imports []Import // Import declarations in source order
	Types   []*Type  // Top-level types
	Hash    uint64   // Content hash of the source

	typeMap map[string]int // Map of top-level types for quick lookup
}

// Import represents an import declaration
type Import struct {
	Path     string // Imported name, e.g. java.util.Date or java.lang.System.out
	Static   bool   // Whether this is a static import
	Wildcard bool   // Whether the import ends with .*
}

// String returns the import as printed in source, without the trailing semicolon
func (i Import) String() string {
	builder := &strings.Builder{}
	builder.WriteString("import ")
	if i.Static {
		builder.WriteString("static ")
	}
	builder.WriteString(i.Path)
	if i.Wildcard {
		builder.WriteString(".*")
	}
	return builder.String()
}

// IndexTypes rebuilds the top-level type lookup
func (f *File) IndexTypes() {
	f.typeMap = make(map[string]int, len(f.Types))
	for i, typ := range f.Types {
		f.typeMap[typ.Name] = i
	}
}

// LookupType returns a type by its relative name, e.g. "Taco" or "A.Twin.D"
func (f *File) LookupType(relativeName string) *Type {
	if f.typeMap == nil {
		f.IndexTypes()
	}
	names := strings.Split(relativeName, ".")
	idx, ok := f.typeMap[names[0]]
	if !ok {
		return nil
	}
	typ := f.Types[idx]
	for _, name := range names[1:] {
		if typ = typ.LookupType(name); typ == nil {
			return nil
		}
	}
	return typ
}

// ImportPaths returns the printed import declarations
func (f *File) ImportPaths() []string {
	ret := make([]string, len(f.Imports))
	for i, imp := range f.Imports {
		ret[i] = imp.String()
	}
	return ret
}
