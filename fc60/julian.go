package fc60

import "strconv"

// =============================================================================
// JULIAN DAY NUMBERS - Fliegel & Van Flandern integer algorithm
// =============================================================================
// Every division below is floored. Truncating division gives wrong answers
// for dates before the epoch of the formula.

const (
	// UnixEpochJDN is the JDN of 1970-01-01.
	UnixEpochJDN int64 = 2440588

	// MJDOffset maps JDN to the Modified Julian Date used in the mjd60 facet.
	MJDOffset int64 = 2400001

	// RDOffset maps JDN to Rata Die (0001-01-01 is RD 1).
	RDOffset int64 = 1721425

	// J2000JDN is the JDN of 2000-01-01.
	J2000JDN int64 = 2451545
)

// GregorianToJDN converts a proleptic Gregorian date to its Julian Day Number.
func GregorianToJDN(year, month, day int) int64 {
	y, m, d := int64(year), int64(month), int64(day)

	a := floorDiv(14-m, 12)
	y2 := y + 4800 - a
	m2 := m + 12*a - 3

	return d + floorDiv(153*m2+2, 5) + 365*y2 +
		floorDiv(y2, 4) - floorDiv(y2, 100) + floorDiv(y2, 400) - 32045
}

// JDNToGregorian is the inverse of GregorianToJDN. It is exact for jdn in
// [MinJDN, MaxJDN]; far outside that range the intermediate products
// overflow int64. Use DateFromJDN for unchecked input.
func JDNToGregorian(jdn int64) (year, month, day int) {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = int(m + 3 - 12*floorDiv(m, 10))
	year = int(100*b + d - 4800 + floorDiv(m, 10))
	return year, month, day
}

// MinJDN and MaxJDN are the day numbers of MinYear-01-01 and MaxYear-12-31.
const (
	MinJDN int64 = -363_521_074
	MaxJDN int64 = 366_963_559
)

// DateFromJDN returns the date-only moment for jdn, or *OutOfRangeError when
// jdn lies outside [MinJDN, MaxJDN].
func DateFromJDN(jdn int64) (CalendarMoment, error) {
	if jdn < MinJDN || jdn > MaxJDN {
		return CalendarMoment{}, &OutOfRangeError{
			Quantity: "jdn",
			Value:    strconv.FormatInt(jdn, 10),
			Min:      MinJDN,
			Max:      MaxJDN,
		}
	}
	y, m, d := JDNToGregorian(jdn)
	return NewDate(y, m, d)
}

// WeekdayFromJDN returns 0 for Sunday through 6 for Saturday.
func WeekdayFromJDN(jdn int64) int {
	return int(floorMod64(jdn+1, 7))
}

// MJD returns jdn minus MJDOffset.
func MJD(jdn int64) int64 { return jdn - MJDOffset }

// RataDie returns jdn minus RDOffset.
func RataDie(jdn int64) int64 { return jdn - RDOffset }
