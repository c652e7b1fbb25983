package pricing

import "strings"

// DecomposeSku splits a composite seller SKU of the form BASE(+ADDON)* into
// its base SKU and ordered add-on tokens. Segments are trimmed; empty segments
// between separators are dropped. A literal "+" inside a base SKU or add-on
// code is not representable; the upstream catalogs do not use one.
func DecomposeSku(raw string) (base string, addons []string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	parts := strings.Split(s, "+")
	base = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			addons = append(addons, p)
		}
	}
	return base, addons
}

// NormalizeAddonCode is the equality form for add-on codes: trimmed and
// uppercased, so "pc", " PC " and "Pc" price identically.
func NormalizeAddonCode(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
