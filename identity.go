package stock

import "strings"

// IdentityKey is the derived tuple that defines "same item" for merges:
// exact company and category, case-insensitive name and structurally equal
// specifications. It is comparable and can be used as a map key.
type IdentityKey struct {
	Company  Company
	Category Category
	Name     string // lower-cased
	Specs    string // canonical encoding, empty for no specs
}

// NewIdentityKey derives the identity of an item description.
func NewIdentityKey(company Company, category Category, name string, specs Specs) IdentityKey {
	return IdentityKey{
		Company:  company,
		Category: category,
		Name:     strings.ToLower(name),
		Specs:    canonicalSpecs(specs),
	}
}

// canonicalSpecs encodes specs with sorted keys. Separators are control
// characters so that no printable key or value can forge another encoding.
func canonicalSpecs(specs Specs) string {
	if len(specs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range specs.Keys() {
		if i > 0 {
			b.WriteByte('\x1e')
		}
		b.WriteString(k)
		b.WriteByte('\x1f')
		b.WriteString(specs[k])
	}
	return b.String()
}
