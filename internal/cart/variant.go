package cart

import (
	"sort"
	"strings"
)

// VariantKey builds the canonical, order-independent key for a set of
// variant attributes. Attribute names are sorted so {size, color} and
// {color, size} encode identically and cannot produce duplicate cart
// lines. No attributes encodes as the empty key.
func VariantKey(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(attrs[name])
	}
	return b.String()
}
