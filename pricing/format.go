package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way operators read it in reports and
// previews: "Rp 1.250.000".
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp %v", number.Decimal(amount))
}
