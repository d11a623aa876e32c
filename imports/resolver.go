package imports

import (
	"github.com/viant/javagen/types"
	"sort"
)

// Mode is the qualification decided for a top-level class.
type Mode int

const (
	// Short prints the simple name.
	Short Mode = iota
	// Qualified prints the canonical name.
	Qualified
)

func (m Mode) String() string {
	if m == Short {
		return "short"
	}
	return "qualified"
}

// Options controls import synthesis.
type Options struct {
	// SkipImplicitNamespaceImports omits import lines for java.lang types; they still print
	// short when they win their simple name.
	SkipImplicitNamespaceImports bool `yaml:"skipImplicitNamespaceImports,omitempty"`
}

// Resolution is the outcome of resolving one file's candidates: the class owning each simple
// name and the import statements to print.
type Resolution struct {
	packageName string
	winners     map[string]types.ClassName
	typeImports []types.ClassName
	statics     []types.StaticImport
}

// Resolve decides which class owns each simple name and which import lines to print. The first
// candidate recorded under a simple name wins; every later one is qualified. A simple name used
// by a default package class has no winner.
func Resolve(candidates *CandidateSet, statics *StaticSet, options Options) *Resolution {
	ret := &Resolution{
		packageName: candidates.PackageName(),
		winners:     make(map[string]types.ClassName, len(candidates.Names())),
		statics:     statics.Sorted(),
	}
	for _, simpleName := range candidates.Names() {
		list := candidates.Candidates(simpleName)
		if len(list) == 0 || candidates.Unnamed(simpleName) {
			continue
		}
		winner := list[0]
		ret.winners[simpleName] = winner
		if !ret.needsImport(winner, options) {
			continue
		}
		ret.typeImports = append(ret.typeImports, winner)
	}
	sort.Slice(ret.typeImports, func(i, j int) bool {
		return ret.typeImports[i].CanonicalName() < ret.typeImports[j].CanonicalName()
	})
	return ret
}

func (r *Resolution) needsImport(winner types.ClassName, options Options) bool {
	switch {
	case winner.PackageName() == r.packageName:
		return false
	case options.SkipImplicitNamespaceImports && IsImplicit(winner):
		return false
	}
	return true
}

// Imported returns the top-level class printed in short form under simpleName.
func (r *Resolution) Imported(simpleName string) (types.ClassName, bool) {
	if r == nil {
		return types.ClassName{}, false
	}
	winner, ok := r.winners[simpleName]
	return winner, ok
}

// Mode returns the qualification of the top-level class of className. Classes never collected,
// such as default package classes, report Qualified.
func (r *Resolution) Mode(className types.ClassName) Mode {
	topLevel := className.TopLevel()
	if winner, ok := r.Imported(topLevel.SimpleName()); ok && winner == topLevel {
		return Short
	}
	return Qualified
}

// TypeImports returns the regular imports sorted by canonical name.
func (r *Resolution) TypeImports() []types.ClassName {
	return r.typeImports
}

// StaticImports returns the static imports sorted by their printed form.
func (r *Resolution) StaticImports() []types.StaticImport {
	return r.statics
}

// Lines returns the printed import statements: static imports first, then regular imports.
func (r *Resolution) Lines() []string {
	ret := make([]string, 0, len(r.statics)+len(r.typeImports))
	for _, imp := range r.statics {
		ret = append(ret, "import static "+imp.String()+";")
	}
	for _, imp := range r.typeImports {
		ret = append(ret, "import "+imp.CanonicalName()+";")
	}
	return ret
}
