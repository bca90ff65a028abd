/*
Package numerology implements letter-value reduction of names and dates.

PURPOSE:
  Reduces names and birth dates to the numerology profile numbers (life
  path, expression, soul urge, personality and the personal year/month/day
  cycle) under one of three letter-value systems.

KEY CONCEPTS IN THIS FILE (tables.go):
  - System: tag naming a letter-value system
  - LetterTable: sealed interface, one implementation per system
  - Pythagorean: A-Z cycling 1-9, vowels A E I O U
  - Chaldean: irregular A-Z values, 9 is never assigned
  - Abjad: Arabic/Persian glyph values, long vowels alef/vav/ya stand in
    for the Latin vowels

DESIGN PRINCIPLES:
  1. Select once: callers resolve a LetterTable at entry, then pass it down
  2. Master numbers 11, 22, 33 are never reduced, even mid-computation
  3. Every profile value is in {1..9, 11, 22, 33}

SEE ALSO:
  - reduce.go: DigitSum, DigitalRoot
  - profile.go: Profile numbers
  - factory/system.go: Tag aliases and JSON resolution
*/
package numerology

import (
	"errors"
	"fmt"
)

// =============================================================================
// SYSTEMS
// =============================================================================

// System names a letter-value system.
type System string

const (
	Pythagorean System = "pythagorean"
	Chaldean    System = "chaldean"
	Abjad       System = "abjad"
)

// Systems lists every supported system. The slice is a fresh copy.
func Systems() []System {
	return []System{Pythagorean, Chaldean, Abjad}
}

// ErrUnknownSystem is returned for a tag that names no letter table.
var ErrUnknownSystem = errors.New("unknown numerology system")

// LetterTable assigns values to letters and marks the vowel-equivalent ones.
// Implementations live in this package only.
type LetterTable interface {
	System() System
	// Value returns the letter's value, 0 when the letter is not in the table.
	Value(r rune) int
	// IsVowel reports whether r counts toward the soul urge.
	IsVowel(r rune) bool
	// Has reports whether r carries a value in this table.
	Has(r rune) bool

	sealed()
}

// TableFor returns the letter table of a system.
func TableFor(s System) (LetterTable, error) {
	switch s {
	case Pythagorean:
		return pythagoreanTable{}, nil
	case Chaldean:
		return chaldeanTable{}, nil
	case Abjad:
		return abjadTable{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, string(s))
	}
}

// =============================================================================
// LATIN TABLES
// =============================================================================

func isLatin(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLatinVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

type pythagoreanTable struct{}

func (pythagoreanTable) System() System { return Pythagorean }
func (pythagoreanTable) Has(r rune) bool { return isLatin(r) }
func (pythagoreanTable) IsVowel(r rune) bool { return isLatinVowel(r) }
func (pythagoreanTable) sealed() {}

func (pythagoreanTable) Value(r rune) int {
	if !isLatin(r) {
		return 0
	}
	return int(r-'A')%9 + 1
}

// chaldeanValues is indexed by letter - 'A'.
var chaldeanValues = [26]int{
	1, 2, 3, 4, 5, 8, 3, 5, 1, // A-I
	1, 2, 3, 4, 5, 7, 8, 1, 2, // J-R
	3, 4, 6, 6, 6, 5, 1, 7, // S-Z
}

type chaldeanTable struct{}

func (chaldeanTable) System() System { return Chaldean }
func (chaldeanTable) Has(r rune) bool { return isLatin(r) }
func (chaldeanTable) IsVowel(r rune) bool { return isLatinVowel(r) }
func (chaldeanTable) sealed() {}

func (chaldeanTable) Value(r rune) int {
	if !isLatin(r) {
		return 0
	}
	return chaldeanValues[r-'A']
}

// =============================================================================
// ABJAD
// =============================================================================

var abjadValues = map[rune]int{
	'ا': 1, 'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7, 'ح': 8, 'ط': 9,
	'ي': 10, 'ك': 20, 'ل': 30, 'م': 40, 'ن': 50, 'س': 60, 'ع': 70, 'ف': 80, 'ص': 90,
	'ق': 100, 'ر': 200, 'ش': 300, 'ت': 400, 'ث': 500, 'خ': 600, 'ذ': 700, 'ض': 800, 'ظ': 900,
	'غ': 1000,

	// alef and hamza variants
	'آ': 1, 'أ': 1, 'إ': 1, 'ٱ': 1, 'ء': 1,
	// ta marbuta, alef maqsura, Persian ye and kaf, hamza seats
	'ة': 5, 'ۀ': 5, 'ە': 5, 'ى': 10, 'ی': 10, 'ئ': 10, 'ؤ': 6, 'ک': 20,
	// Persian letters take the value of their Arabic base
	'پ': 2, 'چ': 3, 'ژ': 7, 'گ': 20,
}

var abjadLongVowels = map[rune]bool{
	'ا': true, 'آ': true, 'أ': true, 'إ': true, 'ٱ': true,
	'و': true, 'ؤ': true,
	'ي': true, 'ی': true, 'ى': true, 'ئ': true,
}

type abjadTable struct{}

func (abjadTable) System() System { return Abjad }
func (abjadTable) Value(r rune) int { return abjadValues[r] }
func (abjadTable) IsVowel(r rune) bool { return abjadLongVowels[r] }
func (abjadTable) sealed() {}

func (abjadTable) Has(r rune) bool {
	_, ok := abjadValues[r]
	return ok
}
