package output

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printerFor(tag language.Tag) *message.Printer {
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// FormatCurrency formats whole currency units with the digit grouping of the locale.
func FormatCurrency(units int64, tag language.Tag) string {
	p := printerFor(tag)
	if units < 0 {
		return "-$" + p.Sprint(-units)
	}
	return "$" + p.Sprint(units)
}

// FormatAmount formats an input amount, keeping cents only when there are any.
func FormatAmount(v float64, tag language.Tag) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return FormatCurrency(int64(v), tag)
	}
	p := printerFor(tag)
	if v < 0 {
		return "-$" + p.Sprintf("%.2f", -v)
	}
	return "$" + p.Sprintf("%.2f", v)
}

// FormatCompact renders an axis label: $1.2M, $35k, $500. Negative amounts take a
// leading minus, as in FormatCurrency.
func FormatCompact(units int64) string {
	sign := ""
	v := float64(units)
	if v < 0 {
		sign, v = "-", -v
	}
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%s$%.1fM", sign, v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%s$%.0fk", sign, v/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, v)
	}
}

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string { return strconv.FormatFloat(pct, 'f', 2, 64) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func int64ToString(i int64) string { return strconv.FormatInt(i, 10) }

func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
