package imports

import (
	"github.com/viant/javagen/types"
)

// CandidateSet records, per simple name, the distinct top-level classes referenced under that
// name in first-reference order. The first entry of each list wins the short form.
type CandidateSet struct {
	packageName string
	names       []string
	candidates  map[string][]types.ClassName
	// unnamed holds simple names referenced from the default package; they can never be
	// imported, so no other class may take them.
	unnamed map[string]bool
}

// NewCandidateSet returns an empty set for a file in packageName.
func NewCandidateSet(packageName string) *CandidateSet {
	return &CandidateSet{packageName: packageName, candidates: map[string][]types.ClassName{}, unnamed: map[string]bool{}}
}

// PackageName returns the package of the file being collected.
func (s *CandidateSet) PackageName() string {
	return s.packageName
}

// Add records the top-level class of className. Default package classes are never recorded as
// candidates; they reserve their simple name instead. It reports whether the class was not seen
// before.
func (s *CandidateSet) Add(className types.ClassName) bool {
	if className.IsZero() {
		return false
	}
	topLevel := className.TopLevel()
	if topLevel.PackageName() == "" {
		s.unnamed[topLevel.SimpleName()] = true
		return false
	}
	simpleName := topLevel.SimpleName()
	list, ok := s.candidates[simpleName]
	if !ok {
		s.names = append(s.names, simpleName)
	}
	for _, candidate := range list {
		if candidate == topLevel {
			return false
		}
	}
	s.candidates[simpleName] = append(list, topLevel)
	return true
}

// Unnamed reports whether a default package class was referenced under simpleName.
func (s *CandidateSet) Unnamed(simpleName string) bool {
	return s.unnamed[simpleName]
}

// Names returns the recorded simple names in first-reference order.
func (s *CandidateSet) Names() []string {
	return s.names
}

// Candidates returns the classes recorded under simpleName, first reference first.
func (s *CandidateSet) Candidates(simpleName string) []types.ClassName {
	return s.candidates[simpleName]
}

// Len returns the number of distinct classes recorded.
func (s *CandidateSet) Len() int {
	count := 0
	for _, list := range s.candidates {
		count += len(list)
	}
	return count
}
