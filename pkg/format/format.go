// Package format renders numbers for display the way the site shows them.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// USD formats whole dollars with thousands separators and no cents, e.g. $347,500.
func USD(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-$%d", -amount)
	}
	return printer.Sprintf("$%d", amount)
}

// Count formats an integer with thousands separators, e.g. 1,247.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}
