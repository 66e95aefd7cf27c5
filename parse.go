package sheetbind

// parse.go provides best-effort cell text parsing for the numeric and date
// column kinds. These functions tolerate the messy reality of user-edited
// spreadsheets: currency symbols and thousands separators in numbers,
// accounting-style negatives, and a spread of date formats including
// two-digit years. All of them report failure through an ok flag; the
// decoder maps failure to the field's zero value and leaves flagging to the
// record validator.

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// numericRegex validates that a string is a valid numeric format after
// cleanup. Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// twoDigitYearPivot defines how 2-digit years are interpreted. Parsed dates
// more than this many years in the future are assumed to be in the previous
// century.
const twoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling.
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02 15:04:05", "2006/01/02 15:04:05",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// cleanNumber strips currency symbols, thousands separators, and
// accounting-format parentheses, returning the normalized form and whether
// the result looks numeric at all.
func cleanNumber(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	// Accounting format "(123.45)" means negative.
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if neg {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return "", false
	}
	return s, true
}

// parseInt parses an integer cell. Decimal text like "30.0" is accepted as
// long as the fraction is zero-valued, since spreadsheets frequently render
// integers that way.
func parseInt(s string) (int64, bool) {
	cleaned, ok := cleanNumber(s)
	if !ok {
		return 0, false
	}
	if v, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return v, true
	}
	// Fall back through decimal so "30.0" and "3e2" still land.
	d, err := decimal.NewFromString(cleaned)
	if err != nil || !d.IsInteger() {
		return 0, false
	}
	return d.IntPart(), true
}

// parseFloat parses a floating-point cell.
func parseFloat(s string) (float64, bool) {
	cleaned, ok := cleanNumber(s)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDecimal parses an exact decimal cell.
func parseDecimal(s string) (decimal.Decimal, bool) {
	cleaned, ok := cleanNumber(s)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseDate parses a date cell against the supported layouts, trying
// unambiguous 4-digit-year layouts first and applying the pivot adjustment
// to 2-digit years.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	pivotYear := time.Now().Year() + twoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	return time.Time{}, false
}
