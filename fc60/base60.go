/*
Package fc60 provides the FC60 calendrical encoding engine.

PURPOSE:
  Turns a moment in time into a compact, invertible, multi-facet symbolic
  encoding: a base-60 stamp, the Julian Day Number family (JDN, MJD, RD,
  Unix), the moon phase, the sexagenary Ganzhi cycle and a weighted mod-60
  checksum. Every facet decodes back to the same instant.

KEY CONCEPTS IN THIS FILE (base60.go):
  - Token60: an integer in [0,59] written as animal(2) + element(2)
  - Base60Number: sign + most-significant-first base-60 digits
  - EncodeBase60/DecodeBase60: hyphen-joined token strings, "NEG-" prefix

DESIGN PRINCIPLES:
  1. Purity: every function is a function of its arguments only
  2. Read-only tables: lookup tables are initialised once and never mutated
  3. Strictness: unknown tokens fail, they never decode to a default

USAGE:
  fc60.Token60(13)              // "TIMT"
  fc60.EncodeBase60(2461078)    // "TIFI-DRMT-GOER-PIMT"
  n, err := fc60.DecodeBase60("NEG-OXFI")

SEE ALSO:
  - stamp.go: Composes tokens into the FC60 stamp
  - errors.go: InvalidTokenError, OutOfRangeError
*/
package fc60

import (
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// TOKEN TABLES
// =============================================================================

// animals are the twelve branch animals, Rat first.
var animals = [12]string{"RA", "OX", "TI", "RU", "DR", "SN", "HO", "GO", "MO", "RO", "DO", "PI"}

// animalNames are the display names matching animals.
var animalNames = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// elements are the five phases in generating order.
var elements = [5]string{"WU", "FI", "ER", "MT", "WA"}

// elementNames are the display names matching elements.
var elementNames = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}

// AnimalToken returns the two-letter token of branch i (0 is Rat), or ""
// outside 0..11.
func AnimalToken(i int) string {
	if i < 0 || i >= len(animals) {
		return ""
	}
	return animals[i]
}

// AnimalName returns the display name of branch i, or "" outside 0..11.
func AnimalName(i int) string {
	if i < 0 || i >= len(animalNames) {
		return ""
	}
	return animalNames[i]
}

const (
	// Base is the radix of every FC60 number.
	Base = 60

	negPrefix = "NEG-"
	separator = "-"
)

var tokenIndex = func() map[string]int {
	m := make(map[string]int, Base)
	for n := 0; n < Base; n++ {
		m[Token60(n)] = n
	}
	return m
}()

// =============================================================================
// TOKEN60
// =============================================================================

// Token60 renders n mod 60 as a four-character token.
func Token60(n int) string {
	n = floorMod(n, Base)
	return animals[n/5] + elements[n%5]
}

// Digit60 is the inverse of Token60.
func Digit60(tok string) (int, error) {
	n, ok := tokenIndex[tok]
	if !ok {
		return 0, &InvalidTokenError{Token: tok}
	}
	return n, nil
}

// =============================================================================
// BASE60 NUMBERS
// =============================================================================

// Base60Number is a signed base-60 integer, digits most-significant first.
type Base60Number struct {
	Negative bool
	Digits   []int
}

// ToBase60 converts n to positional base 60. Zero is a single zero digit.
func ToBase60(n int64) Base60Number {
	neg := n < 0
	mag := uint64(n)
	if neg {
		mag = uint64(-(n + 1)) + 1
	}
	if mag == 0 {
		return Base60Number{Digits: []int{0}}
	}

	var rev []int
	for mag > 0 {
		rev = append(rev, int(mag%Base))
		mag /= Base
	}
	digits := make([]int, len(rev))
	for i, d := range rev {
		digits[len(rev)-1-i] = d
	}
	return Base60Number{Negative: neg, Digits: digits}
}

// FromBase60 converts positional digits back to an integer.
func FromBase60(b Base60Number) (int64, error) {
	if len(b.Digits) == 0 {
		return 0, &InvalidTokenError{Token: ""}
	}

	limit := uint64(math.MaxInt64)
	if b.Negative {
		limit++
	}

	var mag uint64
	for _, d := range b.Digits {
		if d < 0 || d >= Base {
			return 0, &OutOfRangeError{Quantity: "base60 digit", Value: strconv.Itoa(d), Min: 0, Max: Base - 1}
		}
		if mag > (limit-uint64(d))/Base {
			return 0, &OutOfRangeError{Quantity: "base60 magnitude", Value: b.String(), Min: math.MinInt64, Max: math.MaxInt64}
		}
		mag = mag*Base + uint64(d)
	}

	if b.Negative && mag > 0 {
		return -int64(mag-1) - 1, nil
	}
	return int64(mag), nil
}

// String renders the number as hyphen-joined tokens.
func (b Base60Number) String() string {
	parts := make([]string, len(b.Digits))
	for i, d := range b.Digits {
		parts[i] = Token60(d)
	}
	s := strings.Join(parts, separator)
	if b.Negative {
		return negPrefix + s
	}
	return s
}

// EncodeBase60 renders n as hyphen-joined tokens with a "NEG-" prefix when
// negative.
func EncodeBase60(n int64) string {
	return ToBase60(n).String()
}

// ParseBase60 parses an encoded string into its digits.
func ParseBase60(s string) (Base60Number, error) {
	var b Base60Number
	if strings.HasPrefix(s, negPrefix) {
		b.Negative = true
		s = strings.TrimPrefix(s, negPrefix)
	}
	if s == "" {
		return Base60Number{}, &InvalidTokenError{Token: s}
	}
	for _, tok := range strings.Split(s, separator) {
		d, err := Digit60(tok)
		if err != nil {
			return Base60Number{}, err
		}
		b.Digits = append(b.Digits, d)
	}
	return b, nil
}

// DecodeBase60 is the inverse of EncodeBase60.
func DecodeBase60(s string) (int64, error) {
	b, err := ParseBase60(s)
	if err != nil {
		return 0, err
	}
	return FromBase60(b)
}

// =============================================================================
// INTEGER HELPERS
// =============================================================================

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a non-negative remainder for positive b.
func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func floorMod64(a, b int64) int64 {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
