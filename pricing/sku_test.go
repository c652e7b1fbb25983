package pricing

import (
	"strings"
	"testing"
)

func TestDecomposeSku(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBase   string
		wantAddons []string
	}{
		{
			name:     "base only",
			raw:      "ABC",
			wantBase: "ABC",
		},
		{
			name:       "base with one addon",
			raw:        "ABC+PC",
			wantBase:   "ABC",
			wantAddons: []string{"PC"},
		},
		{
			name:       "base with several addons in order",
			raw:        "ABC+PC+RGB+PSU",
			wantBase:   "ABC",
			wantAddons: []string{"PC", "RGB", "PSU"},
		},
		{
			name:       "segments are trimmed",
			raw:        "  ABC + PC ",
			wantBase:   "ABC",
			wantAddons: []string{"PC"},
		},
		{
			name:       "empty segments dropped",
			raw:        "ABC++PC",
			wantBase:   "ABC",
			wantAddons: []string{"PC"},
		},
		{
			name:       "blank segment dropped",
			raw:        "ABC+ +PC",
			wantBase:   "ABC",
			wantAddons: []string{"PC"},
		},
		{
			name:       "missing base keeps addons",
			raw:        "+PC",
			wantBase:   "",
			wantAddons: []string{"PC"},
		},
		{
			name: "empty input",
			raw:  "",
		},
		{
			name: "whitespace input",
			raw:  "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, addons := DecomposeSku(tt.raw)
			if base != tt.wantBase {
				t.Errorf("DecomposeSku(%q) base = %q, want %q", tt.raw, base, tt.wantBase)
			}
			if !equalStrings(addons, tt.wantAddons) {
				t.Errorf("DecomposeSku(%q) addons = %v, want %v", tt.raw, addons, tt.wantAddons)
			}
		})
	}
}

// Joining a base and addon list with "+" and decomposing again returns the
// original parts, for any segments without a literal "+".
func TestDecomposeSkuRoundTrip(t *testing.T) {
	cases := []struct {
		base   string
		addons []string
	}{
		{base: "ABC", addons: []string{"PC"}},
		{base: "K-500", addons: []string{"RGB", "PSU", "FAN"}},
		{base: "8991230000", addons: []string{"A1"}},
	}

	for _, c := range cases {
		composite := c.base + "+" + strings.Join(c.addons, "+")
		base, addons := DecomposeSku(composite)
		if base != c.base || !equalStrings(addons, c.addons) {
			t.Errorf("DecomposeSku(%q) = (%q, %v), want (%q, %v)",
				composite, base, addons, c.base, c.addons)
		}
	}
}

func TestNormalizeAddonCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "pc", want: "PC"},
		{in: " Pc ", want: "PC"},
		{in: "KODE-1", want: "KODE-1"},
		{in: "  ", want: ""},
	}
	for _, tt := range tests {
		if got := NormalizeAddonCode(tt.in); got != tt.want {
			t.Errorf("NormalizeAddonCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
