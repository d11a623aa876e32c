package imports

import (
	"github.com/viant/javagen/types"
	"sort"
)

// StaticSet holds the explicit static import requests of a file. Duplicate requests collapse.
type StaticSet struct {
	refs   map[string]types.StaticImport
	owners map[string]bool
}

// NewStaticSet returns a set holding imports.
func NewStaticSet(imports ...types.StaticImport) *StaticSet {
	ret := &StaticSet{refs: map[string]types.StaticImport{}, owners: map[string]bool{}}
	for _, imp := range imports {
		ret.Add(imp)
	}
	return ret
}

// Add records imp.
func (s *StaticSet) Add(imp types.StaticImport) {
	s.refs[imp.String()] = imp
	s.owners[imp.Type.CanonicalName()] = true
}

// HasOwner reports whether any member of owner is statically imported.
func (s *StaticSet) HasOwner(owner types.ClassName) bool {
	if s == nil {
		return false
	}
	return s.owners[owner.CanonicalName()]
}

// Covers reports whether member of owner may be printed without the owner prefix, either
// because it was imported by name or because owner was imported with a wildcard.
func (s *StaticSet) Covers(owner types.ClassName, member string) bool {
	if s == nil {
		return false
	}
	canonical := owner.CanonicalName()
	if _, ok := s.refs[canonical+"."+member]; ok {
		return true
	}
	_, ok := s.refs[canonical+"."+types.AllMembers]
	return ok
}

// Len returns the number of distinct requests.
func (s *StaticSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.refs)
}

// Sorted returns the requests ordered by their printed form.
func (s *StaticSet) Sorted() []types.StaticImport {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.refs))
	for key := range s.refs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	ret := make([]types.StaticImport, len(keys))
	for i, key := range keys {
		ret[i] = s.refs[key]
	}
	return ret
}
