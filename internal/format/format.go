// Package format renders amounts, dates, and shares the way the tracker's
// screens display them (Vietnamese locale, đồng amounts, short dates).
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// Currency renders an amount as grouped Vietnamese đồng, e.g. "1.234.567 ₫".
func Currency(v decimal.Decimal) string {
	f, _ := v.Round(0).Float64()
	return printer.Sprintf("%.0f ₫", f)
}

// Percent renders a 0..1 share as a rounded whole percentage, e.g. "38%".
func Percent(share decimal.Decimal) string {
	return share.Mul(decimal.NewFromInt(100)).Round(0).String() + "%"
}

// DateShort renders a "YYYY-MM-DD" date as "dd/MM". Unparseable input is
// returned as-is.
func DateShort(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("02/01")
}

// InputDate renders a time as the "YYYY-MM-DD" form the API and all local
// date comparisons use.
func InputDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey renders a time as the "YYYY-MM" bucket key.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
