/*
Package synchro scans integer lists for recurring numeric patterns.

PURPOSE:
  Given the numbers pulled out of a sign (free text, an explicit value,
  a clock reading), reports every known "synchronicity" pattern: angel
  numbers, mirror times, repeated digits, palindromes, digit sequences,
  and pairwise relations between the numbers.

OUTPUT ORDER (stable, callers and tests rely on it):
  1. Per-number checks, in input order. For each number:
     angel, mirror, repeat, palindrome, sequence
  2. Pairwise checks over i < j, in loop order. For each pair:
     duplicate, angel sum, complement

  Duplicated input values are checked once per occurrence.

SEE ALSO:
  - tables.go: Angel number and mirror time tables
  - numerology/reduce.go: DigitalRoot used by the complement check
*/
package synchro

import (
	"fmt"
	"strconv"

	"github.com/warp/fc60/numerology"
)

// =============================================================================
// MATCH TYPES
// =============================================================================

// Kind names a pattern.
type Kind string

const (
	KindAngel      Kind = "angel"
	KindMirror     Kind = "mirror"
	KindRepeat     Kind = "repeat"
	KindPalindrome Kind = "palindrome"
	KindSequence   Kind = "sequence"
	KindDuplicate  Kind = "duplicate"
	KindAngelSum   Kind = "angel_sum"
	KindComplement Kind = "complement"
)

// Kinds lists every pattern in emission order. The slice is a fresh copy.
func Kinds() []Kind {
	return []Kind{
		KindAngel, KindMirror, KindRepeat, KindPalindrome, KindSequence,
		KindDuplicate, KindAngelSum, KindComplement,
	}
}

// Match is one detected pattern and the input numbers it came from.
type Match struct {
	Kind          Kind   `json:"kind"`
	Description   string `json:"description"`
	SourceNumbers []int  `json:"source_numbers"`
}

// =============================================================================
// DETECTION
// =============================================================================

// Detect runs every check over numbers. The result is empty, never nil, when
// nothing matches.
func Detect(numbers []int) []Match {
	matches := []Match{}
	for _, n := range numbers {
		matches = append(matches, single(n)...)
	}
	for i := 0; i < len(numbers); i++ {
		for j := i + 1; j < len(numbers); j++ {
			matches = append(matches, pair(numbers[i], numbers[j])...)
		}
	}
	return matches
}

func single(n int) []Match {
	var out []Match
	digits := digitsOf(n)
	src := []int{n}

	if meaning, ok := angelNumbers[n]; ok {
		out = append(out, Match{KindAngel, fmt.Sprintf("%d is an angel number (%s)", n, meaning), src})
	}
	if clock, ok := asClock(digits); ok && IsMirrorTime(clock) {
		out = append(out, Match{KindMirror, fmt.Sprintf("%d reads as mirror time %s", n, clock), src})
	}
	if len(digits) >= 2 && allSame(digits) {
		out = append(out, Match{KindRepeat, fmt.Sprintf("%d repeats the digit %c", n, digits[0]), src})
	}
	if len(digits) >= 3 && isPalindrome(digits) {
		out = append(out, Match{KindPalindrome, fmt.Sprintf("%d is a palindrome", n), src})
	}
	if len(digits) >= 3 {
		if dir := sequenceDirection(digits); dir != "" {
			out = append(out, Match{KindSequence, fmt.Sprintf("%d is an %s digit sequence", n, dir), src})
		}
	}
	return out
}

func pair(a, b int) []Match {
	var out []Match
	src := []int{a, b}

	if a == b {
		out = append(out, Match{KindDuplicate, fmt.Sprintf("%d appears more than once", a), src})
	}
	if sum := a + b; IsAngel(sum) {
		out = append(out, Match{KindAngelSum, fmt.Sprintf("%d + %d = %d, an angel number", a, b, sum), src})
	}
	ra, rb := numerology.DigitalRoot(a), numerology.DigitalRoot(b)
	if ra >= 1 && rb >= 1 && ra+rb == 9 {
		out = append(out, Match{KindComplement, fmt.Sprintf("%d and %d reduce to %d and %d, which complete 9", a, b, ra, rb), src})
	}
	return out
}

// =============================================================================
// DIGIT HELPERS
// =============================================================================

// digitsOf returns the decimal digits of |n|, most significant first.
func digitsOf(n int) string {
	s := strconv.Itoa(n)
	if s[0] == '-' {
		return s[1:]
	}
	return s
}

// asClock renders a 3 or 4 digit number as zero-padded HH:MM.
func asClock(digits string) (string, bool) {
	switch len(digits) {
	case 3:
		digits = "0" + digits
	case 4:
	default:
		return "", false
	}
	return digits[:2] + ":" + digits[2:], true
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func isPalindrome(digits string) bool {
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		if digits[i] != digits[j] {
			return false
		}
	}
	return true
}

// sequenceDirection returns "ascending" or "descending" when every adjacent
// pair of digits differs by exactly +1 or exactly -1, else "".
func sequenceDirection(digits string) string {
	step := int(digits[1]) - int(digits[0])
	if step != 1 && step != -1 {
		return ""
	}
	for i := 2; i < len(digits); i++ {
		if int(digits[i])-int(digits[i-1]) != step {
			return ""
		}
	}
	if step == 1 {
		return "ascending"
	}
	return "descending"
}
