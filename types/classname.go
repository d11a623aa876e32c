package types

import (
	"github.com/cockroachdb/errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ClassName identifies a named (possibly nested) class, interface, enum or annotation type.
// Two class names are equal when their canonical names are equal, so ClassName is usable
// directly as a map key.
type ClassName struct {
	packageName string
	path        string // simple names joined with '.', outermost first
}

// Get returns the class name for a top-level type (and optional nested chain) in a package.
// An empty package denotes the default package.
func Get(packageName, simpleName string, nested ...string) ClassName {
	path := simpleName
	if len(nested) > 0 {
		path += "." + strings.Join(nested, ".")
	}
	return ClassName{packageName: packageName, path: path}
}

// BestGuess parses a canonical name such as "java.util.Map.Entry". Lowercase leading segments
// are taken to be the package, uppercase segments the enclosing chain.
func BestGuess(canonical string) (ClassName, error) {
	p := 0
	for p < len(canonical) {
		r, _ := utf8.DecodeRuneInString(canonical[p:])
		if !unicode.IsLower(r) {
			break
		}
		next := strings.IndexByte(canonical[p:], '.')
		if next == -1 {
			return ClassName{}, errors.Newf("couldn't make a guess for %s", canonical)
		}
		p += next + 1
	}
	packageName := ""
	if p > 0 {
		packageName = canonical[:p-1]
	}
	names := strings.Split(canonical[p:], ".")
	for _, name := range names {
		r, _ := utf8.DecodeRuneInString(name)
		if name == "" || !unicode.IsUpper(r) {
			return ClassName{}, errors.Newf("couldn't make a guess for %s", canonical)
		}
	}
	return ClassName{packageName: packageName, path: strings.Join(names, ".")}, nil
}

// MustGuess is BestGuess for well-known names; it panics on malformed input.
func MustGuess(canonical string) ClassName {
	name, err := BestGuess(canonical)
	if err != nil {
		panic(err)
	}
	return name
}

// IsZero reports whether c was never initialised.
func (c ClassName) IsZero() bool {
	return c.path == ""
}

// PackageName returns the package, empty for the default package.
func (c ClassName) PackageName() string {
	return c.packageName
}

// SimpleName returns the innermost simple name.
func (c ClassName) SimpleName() string {
	if idx := strings.LastIndexByte(c.path, '.'); idx != -1 {
		return c.path[idx+1:]
	}
	return c.path
}

// SimpleNames returns the enclosing chain followed by the simple name.
func (c ClassName) SimpleNames() []string {
	return strings.Split(c.path, ".")
}

// RelativeName returns the simple names joined with '.', without the package.
func (c ClassName) RelativeName() string {
	return c.path
}

// CanonicalName returns the package and nesting qualified name.
func (c ClassName) CanonicalName() string {
	if c.packageName == "" {
		return c.path
	}
	return c.packageName + "." + c.path
}

// Enclosing returns the directly enclosing class, false for top-level classes.
func (c ClassName) Enclosing() (ClassName, bool) {
	idx := strings.LastIndexByte(c.path, '.')
	if idx == -1 {
		return ClassName{}, false
	}
	return ClassName{packageName: c.packageName, path: c.path[:idx]}, true
}

// TopLevel returns the outermost enclosing class (c itself when c is top-level).
func (c ClassName) TopLevel() ClassName {
	if idx := strings.IndexByte(c.path, '.'); idx != -1 {
		return ClassName{packageName: c.packageName, path: c.path[:idx]}
	}
	return c
}

// IsTopLevel reports whether c has no enclosing class.
func (c ClassName) IsTopLevel() bool {
	return strings.IndexByte(c.path, '.') == -1
}

// Nested returns the class name of a member type of c.
func (c ClassName) Nested(simpleName string) ClassName {
	return ClassName{packageName: c.packageName, path: c.path + "." + simpleName}
}

// Sibling returns a class with the same enclosing chain as c.
func (c ClassName) Sibling(simpleName string) ClassName {
	if enclosing, ok := c.Enclosing(); ok {
		return enclosing.Nested(simpleName)
	}
	return ClassName{packageName: c.packageName, path: simpleName}
}

// Depth returns the number of simple names, 1 for top-level classes.
func (c ClassName) Depth() int {
	return strings.Count(c.path, ".") + 1
}

func (c ClassName) String() string {
	return c.CanonicalName()
}

func (ClassName) typeName() {}

// Well known java.lang classes.
var (
	Object     = Get("java.lang", "Object")
	String     = Get("java.lang", "String")
	Override   = Get("java.lang", "Override")
	Deprecated = Get("java.lang", "Deprecated")
)
