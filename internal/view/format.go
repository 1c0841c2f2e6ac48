package view

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders money and dates for one locale and currency
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter parses a BCP 47 locale and an ISO 4217 code.
// Unknown locales fall back to English, unknown currencies to XXX.
func NewFormatter(locale, code string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.XXX
	}

	return Formatter{
		tag:     tag,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}
}

// Money formats an amount with the currency symbol for the locale.
// Display only: it goes through float64, so the exact value stays in the
// decimal fields of Row and View.
func (f Formatter) Money(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}

// Date formats a day as dd/mm/yyyy, or mm/dd/yyyy for the United States
func (f Formatter) Date(t time.Time) string {
	if region, _ := f.tag.Region(); region.String() == "US" {
		return t.Format("01/02/2006")
	}
	return t.Format("02/01/2006")
}
