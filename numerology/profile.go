package numerology

import (
	"errors"
	"fmt"

	"github.com/warp/fc60/fc60"
)

// ErrNoLetters is returned when a name has no letter the table can score.
var ErrNoLetters = errors.New("no scoreable letters")

// =============================================================================
// NAME NUMBERS
// =============================================================================

// letterFilter selects which table letters contribute to a name number.
type letterFilter func(table LetterTable, r rune) bool

func allLetters(LetterTable, rune) bool { return true }

func vowelLetters(t LetterTable, r rune) bool { return t.IsVowel(r) }

func consonantLetters(t LetterTable, r rune) bool { return !t.IsVowel(r) }

func nameNumber(facet, name string, table LetterTable, keep letterFilter) (int, error) {
	sum, n := 0, 0
	for _, r := range Letters(name, table) {
		if keep(table, r) {
			sum += table.Value(r)
			n++
		}
	}
	if n == 0 || sum == 0 {
		return 0, fmt.Errorf("%s of %q under %s: %w", facet, name, table.System(), ErrNoLetters)
	}
	return DigitalRoot(sum), nil
}

// Expression reduces the sum of every letter of name.
func Expression(name string, table LetterTable) (int, error) {
	return nameNumber("expression", name, table, allLetters)
}

// SoulUrge reduces the sum of the vowel-equivalent letters of name.
func SoulUrge(name string, table LetterTable) (int, error) {
	return nameNumber("soul urge", name, table, vowelLetters)
}

// Personality reduces the sum of the non-vowel letters of name.
func Personality(name string, table LetterTable) (int, error) {
	return nameNumber("personality", name, table, consonantLetters)
}

// =============================================================================
// DATE NUMBERS
// =============================================================================

// LifePathInput names the birth date fields explicitly so callers cannot
// swap day and year by position.
type LifePathInput struct {
	Day   int
	Month int
	Year  int
}

// LifePath reduces day, month and the digit sum of year independently, then
// reduces their sum. This differs from reducing the raw digit sum once.
func LifePath(in LifePathInput) (int, error) {
	if _, err := fc60.NewDate(in.Year, in.Month, in.Day); err != nil {
		return 0, err
	}
	return DigitalRoot(
		DigitalRoot(in.Day) +
			DigitalRoot(in.Month) +
			DigitalRoot(DigitSum(in.Year)),
	), nil
}

// PersonalYearInput is the birth day and month plus the year being read.
type PersonalYearInput struct {
	BirthDay   int
	BirthMonth int
	Year       int
}

// PersonalYear is the first stage of the personal cycle.
func PersonalYear(in PersonalYearInput) int {
	return DigitalRoot(
		DigitalRoot(in.BirthMonth) +
			DigitalRoot(in.BirthDay) +
			DigitalRoot(DigitSum(in.Year)),
	)
}

// PersonalMonth consumes an already reduced personal year.
func PersonalMonth(personalYear, month int) int {
	return DigitalRoot(personalYear + month)
}

// PersonalDay consumes an already reduced personal month.
func PersonalDay(personalMonth, day int) int {
	return DigitalRoot(personalMonth + day)
}

// PersonalCycle holds the three cascaded personal numbers.
type PersonalCycle struct {
	Year  int `json:"personal_year"`
	Month int `json:"personal_month"`
	Day   int `json:"personal_day"`
}

// Cycle runs the personal year -> month -> day cascade for today.
func Cycle(birth, today fc60.CalendarMoment) PersonalCycle {
	py := PersonalYear(PersonalYearInput{BirthDay: birth.Day(), BirthMonth: birth.Month(), Year: today.Year()})
	pm := PersonalMonth(py, today.Month())
	return PersonalCycle{Year: py, Month: pm, Day: PersonalDay(pm, today.Day())}
}

// =============================================================================
// PROFILE
// =============================================================================

// NumerologyProfile is the complete set of profile numbers.
type NumerologyProfile struct {
	System        System `json:"system"`
	LifePath      int    `json:"life_path"`
	Expression    int    `json:"expression"`
	SoulUrge      int    `json:"soul_urge"`
	Personality   int    `json:"personality"`
	PersonalYear  int    `json:"personal_year"`
	PersonalMonth int    `json:"personal_month"`
	PersonalDay   int    `json:"personal_day"`
}

// ProfileInput carries everything a profile needs. Today anchors the
// personal cycle; a zero Today falls back to Birth.
type ProfileInput struct {
	Name  string
	Birth fc60.CalendarMoment
	Today fc60.CalendarMoment
	Table LetterTable
}

// Profile computes every profile number or fails on the first facet that
// cannot be computed.
func Profile(in ProfileInput) (NumerologyProfile, error) {
	if in.Table == nil {
		return NumerologyProfile{}, fmt.Errorf("profile: %w: nil table", ErrUnknownSystem)
	}
	if in.Birth.IsZero() {
		return NumerologyProfile{}, fmt.Errorf("profile: %w", &fc60.InvalidDateError{Field: "birth"})
	}

	p := NumerologyProfile{System: in.Table.System()}
	var err error
	if p.LifePath, err = LifePath(LifePathInput{Day: in.Birth.Day(), Month: in.Birth.Month(), Year: in.Birth.Year()}); err != nil {
		return NumerologyProfile{}, err
	}
	if p.Expression, err = Expression(in.Name, in.Table); err != nil {
		return NumerologyProfile{}, err
	}
	if p.SoulUrge, err = SoulUrge(in.Name, in.Table); err != nil {
		return NumerologyProfile{}, err
	}
	if p.Personality, err = Personality(in.Name, in.Table); err != nil {
		return NumerologyProfile{}, err
	}

	today := in.Today
	if today.IsZero() {
		today = in.Birth
	}
	c := Cycle(in.Birth, today)
	p.PersonalYear, p.PersonalMonth, p.PersonalDay = c.Year, c.Month, c.Day
	return p, nil
}
