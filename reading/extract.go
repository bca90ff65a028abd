package reading

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/fc60/fc60"
)

// =============================================================================
// NUMBER EXTRACTION
// =============================================================================

var (
	digitRun     = regexp.MustCompile(`\d+`)
	clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// asciiDigits folds Arabic-Indic and Extended Arabic-Indic digits to ASCII.
var asciiDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// ExtractNumbers returns every run of decimal digits in text, in order.
// Runs too long for an int are skipped.
func ExtractNumbers(text string) []int {
	var out []int
	for _, run := range digitRun.FindAllString(asciiDigits.Replace(text), -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Sign values longer than maxSignLen, or with an exponent beyond
// ±maxSignExponent, are rejected before any rescaling.
const (
	maxSignLen      = 64
	maxSignExponent = 18
)

// ParseSignValue reads an explicit sign value. Integers are kept whole,
// negative ones included; a fractional decimal contributes its digit runs,
// so "12.34" yields 12 and 34.
func ParseSignValue(s string) ([]int, error) {
	s = strings.TrimSpace(asciiDigits.Replace(s))
	if len(s) > maxSignLen {
		return nil, &fc60.UnparseableInputError{
			Facet: "sign",
			Err:   &fc60.OutOfRangeError{Quantity: "sign length", Value: strconv.Itoa(len(s)), Min: 1, Max: maxSignLen},
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, &fc60.UnparseableInputError{Facet: "sign", Input: s, Err: err}
	}
	if exp := d.Exponent(); exp < -maxSignExponent || exp > maxSignExponent {
		return nil, &fc60.UnparseableInputError{
			Facet: "sign",
			Input: s,
			Err:   &fc60.OutOfRangeError{Quantity: "sign exponent", Value: strconv.Itoa(int(exp)), Min: -maxSignExponent, Max: maxSignExponent},
		}
	}
	if !d.IsInteger() {
		return ExtractNumbers(d.String()), nil
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return nil, &fc60.UnparseableInputError{
			Facet: "sign",
			Input: s,
			Err:   &fc60.OutOfRangeError{Quantity: "sign value", Value: s, Min: -math.MaxInt64, Max: math.MaxInt64},
		}
	}
	return []int{int(d.IntPart())}, nil
}

// ClockTime is a parsed HH:MM[:SS] time of day.
type ClockTime struct {
	Hour, Minute, Second int
}

// HHMM combines hour and minute into one number, 14:44 -> 1444.
func (c ClockTime) HHMM() int { return c.Hour*100 + c.Minute }

// ParseClock reads "HH:MM" or "HH:MM:SS".
func ParseClock(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	parts := clockPattern.FindStringSubmatch(s)
	if parts == nil {
		return ClockTime{}, &fc60.UnparseableInputError{Facet: "time", Input: s}
	}
	var c ClockTime
	c.Hour, _ = strconv.Atoi(parts[1])
	c.Minute, _ = strconv.Atoi(parts[2])
	if parts[3] != "" {
		c.Second, _ = strconv.Atoi(parts[3])
	}
	if c.Hour > 23 || c.Minute > 59 || c.Second > 59 {
		return ClockTime{}, &fc60.UnparseableInputError{
			Facet: "time",
			Input: s,
			Err:   &fc60.InvalidDateError{Input: s},
		}
	}
	return c, nil
}
