package categorizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// processorPrefixes are payment-processor markers that card statements put in
// front of the real merchant name. Matched literally and case-sensitively at
// the start of the string.
var processorPrefixes = []string{"IFD*", "MP*", "EC *", "DL *"}

// merchantAlias maps a known raw fragment to its canonical display name.
type merchantAlias struct {
	fragment  string
	canonical string
}

// merchantAliases is matched case-insensitively as a substring; the first
// matching entry wins, so the order below is significant.
var merchantAliases = []merchantAlias{
	{"AMAZONMKTPLC", "Amazon Marketplace"},
	{"AMAZON BR", "Amazon Brasil"},
	{"MERCADOPAGO", "Mercado Pago"},
	{"MERCADOLIVRE", "Mercado Livre"},
	{"UBER* TRIP", "Uber"},
	{"MC DONALDS", "McDonald's"},
	{"CLAUDE.AI SUBSCRIPTION", "Claude AI"},
	{"APPLE.COM/BILL", "Apple"},
	{"PARAMOUNT+", "Paramount Plus"},
	{"AMAZONPRIMEBR", "Amazon Prime"},
	{"GOOGLE ONE", "Google One"},
}

var (
	installmentSuffix   = regexp.MustCompile(`\s+\d+/\d+$`)
	trailingDigitSuffix = regexp.MustCompile(`\s+\d+$`)

	titleCaser = cases.Title(language.BrazilianPortuguese)
)

// Normalize cleans a raw merchant string into a canonical display form.
// It strips processor prefixes and trailing installment or store-code digits,
// applies the alias table, and otherwise title-cases the trimmed remainder.
// It is total over all string inputs and idempotent.
func Normalize(raw string) string {
	// Canonical alias outputs are already normalized.
	for _, alias := range merchantAliases {
		if raw == alias.canonical {
			return raw
		}
	}

	merchant := raw
	for _, prefix := range processorPrefixes {
		if strings.HasPrefix(merchant, prefix) {
			merchant = merchant[len(prefix):]
		}
	}

	merchant = installmentSuffix.ReplaceAllString(merchant, "")
	merchant = trailingDigitSuffix.ReplaceAllString(merchant, "")

	upper := strings.ToUpper(merchant)
	for _, alias := range merchantAliases {
		if strings.Contains(upper, alias.fragment) {
			return alias.canonical
		}
	}

	return titleCaser.String(strings.TrimSpace(merchant))
}
