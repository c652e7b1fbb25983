package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Upstream price cells mix "Rp 1.250.000", "1.250.000", plain numbers and the
// occasional "1.250,50". The currency marker may appear in any casing.
var currencyMarkerRe = regexp.MustCompile(`(?i)rp`)

// NormalizeIdentifier renders a cell as a canonical identifier string.
// Spreadsheets store long ids as floats, which would otherwise leak ".0"
// suffixes or exponent notation into the output file, so integral numbers
// render as plain decimal digits and everything else as its trimmed text.
// Total: absent cells become "", nothing fails.
func NormalizeIdentifier(v CellValue) string {
	switch {
	case v.IsAbsent():
		return ""
	case v.IsNumber():
		f := v.Number()
		if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strings.TrimSpace(v.Text())
	}
}

// NormalizePrice parses a cell as a whole-rupiah amount. Numeric cells round
// half-up when fractional. Text cells are stripped of whitespace and currency
// markers, then de-separated by the rule the upstream files follow: when both
// "." and "," appear, "." groups thousands and "," marks decimals; a lone
// separator kind always groups thousands. Unparseable input reports ok=false,
// never an error; callers treat that as "field not usable".
func NormalizePrice(v CellValue) (price int64, ok bool) {
	switch {
	case v.IsAbsent():
		return 0, false
	case v.IsNumber():
		return roundHalfUp(v.Number()), true
	}

	s := strings.TrimSpace(v.Text())
	if s == "" {
		return 0, false
	}
	s = stripSpaces(currencyMarkerRe.ReplaceAllString(s, ""))

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasDot:
		s = strings.ReplaceAll(s, ".", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return roundHalfUp(f), true
}

// roundHalfUp truncates integral values and rounds fractional ones half-up.
func roundHalfUp(f float64) int64 {
	if f == math.Trunc(f) {
		return int64(f)
	}
	return int64(math.Floor(f + 0.5))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
