package decl

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/javagen/writer"
	"sort"
	"strconv"
)

// Modifier is a Java declaration modifier. Modifiers print in declaration order of this enum.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Abstract
	Default
	Static
	Final
	Transient
	Volatile
	Synchronized
	Native
	Strictfp
)

var modifierNames = [...]string{
	"public", "protected", "private", "abstract", "default", "static",
	"final", "transient", "volatile", "synchronized", "native", "strictfp",
}

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return "Modifier(" + strconv.Itoa(int(m)) + ")"
	}
	return modifierNames[m]
}

// ParseModifier returns the modifier for its keyword.
func ParseModifier(keyword string) (Modifier, error) {
	for i, name := range modifierNames {
		if name == keyword {
			return Modifier(i), nil
		}
	}
	return 0, errors.Newf("unknown modifier: %q", keyword)
}

// UnmarshalText decodes a modifier keyword.
func (m *Modifier) UnmarshalText(text []byte) error {
	parsed, err := ParseModifier(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText encodes the modifier keyword.
func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func hasModifier(modifiers []Modifier, modifier Modifier) bool {
	for _, candidate := range modifiers {
		if candidate == modifier {
			return true
		}
	}
	return false
}

// emitModifiers prints modifiers in canonical order, each followed by a space, skipping
// duplicates and those implied by the enclosing declaration.
func emitModifiers(w *writer.Writer, modifiers []Modifier, implicit ...Modifier) {
	if len(modifiers) == 0 {
		return
	}
	sorted := make([]Modifier, len(modifiers))
	copy(sorted, modifiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, modifier := range sorted {
		if i > 0 && sorted[i-1] == modifier {
			continue
		}
		if hasModifier(implicit, modifier) {
			continue
		}
		w.EmitAndIndent(modifier.String())
		w.EmitAndIndent(" ")
	}
}
