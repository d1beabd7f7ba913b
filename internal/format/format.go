// Package format holds the display helpers shared by every page: currency
// and date formatting, account-number masking, and label building. HTML
// escaping is not handled here; templates escape interpolated values by
// construction.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// Currency renders an amount with its currency symbol, two decimals and
// thousands grouping. The sign is always dropped; callers that care about
// direction prepend their own + or -. Unknown currencies fall back to the
// code itself as a prefix.
func Currency(amount float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = "EUR"
	}
	sym, ok := currencySymbols[code]
	if !ok {
		sym = code + " "
	}
	return sym + printer.Sprintf("%.2f", math.Abs(amount))
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders a backend date string as e.g. "2 Jan 2006". Empty input
// renders "N/A"; unparseable input is passed through untouched.
func Date(value string) string {
	if value == "" {
		return "N/A"
	}
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format("2 Jan 2006")
}

// DateTime is Date with the time of day appended.
func DateTime(value string) string {
	if value == "" {
		return "N/A"
	}
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format("2 Jan 2006, 15:04")
}

// MaskAccount keeps only the last four characters of an account number
// visible. Numbers of four characters or fewer are shown as-is.
func MaskAccount(number string) string {
	if number == "" {
		return "N/A"
	}
	if len(number) <= 4 {
		return number
	}
	return "••••" + number[len(number)-4:]
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// HumanizeType turns an enum-style type name such as FOREIGN_CURRENCY into
// "Foreign Currency".
func HumanizeType(t string) string {
	if t == "" {
		return "Account"
	}
	words := strings.Split(strings.ReplaceAll(t, "_", " "), " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// ID renders a numeric identifier as "#N" for display when no account
// number is available.
func ID(id int64) string {
	return fmt.Sprintf("#%d", id)
}
