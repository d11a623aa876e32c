package types

// AllMembers is the member name of a wildcard static import.
const AllMembers = "*"

// StaticImport names a static member (or every static member) of a type.
type StaticImport struct {
	Type   ClassName
	Member string
}

// StaticMember returns a single-member static import.
func StaticMember(owner ClassName, member string) StaticImport {
	return StaticImport{Type: owner, Member: member}
}

// StaticAll returns the wildcard static import of owner.
func StaticAll(owner ClassName) StaticImport {
	return StaticImport{Type: owner, Member: AllMembers}
}

// IsWildcard reports whether s imports every static member.
func (s StaticImport) IsWildcard() bool {
	return s.Member == AllMembers
}

// String returns the printed import reference, e.g. "java.util.concurrent.TimeUnit.SECONDS".
func (s StaticImport) String() string {
	return s.Type.CanonicalName() + "." + s.Member
}
