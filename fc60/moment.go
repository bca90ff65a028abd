package fc60

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// CALENDAR MOMENT - Immutable proleptic Gregorian date/time with raw offset
// =============================================================================

const (
	// MaxYear bounds the supported year range symmetrically.
	MaxYear = 999_999
	MinYear = -MaxYear

	// MaxOffsetMinutes bounds UTC offsets to ±14:00.
	MaxOffsetMinutes = 14 * 60
)

// CalendarMoment is a validated date, optional time of day and UTC offset.
// Fields are unexported so a constructed moment cannot be mutated.
type CalendarMoment struct {
	year, month, day     int
	hour, minute, second int
	tzOffsetMinutes      int
	hasTime              bool
}

// NewMoment validates and builds a moment with a time of day.
func NewMoment(year, month, day, hour, minute, second, tzOffsetMinutes int) (CalendarMoment, error) {
	m := CalendarMoment{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second,
		tzOffsetMinutes: tzOffsetMinutes,
		hasTime:         true,
	}
	if err := m.validate(""); err != nil {
		return CalendarMoment{}, err
	}
	return m, nil
}

// NewDate validates and builds a date-only moment at midnight UTC.
func NewDate(year, month, day int) (CalendarMoment, error) {
	m := CalendarMoment{year: year, month: month, day: day}
	if err := m.validate(""); err != nil {
		return CalendarMoment{}, err
	}
	return m, nil
}

// MustMoment is NewMoment for literals known to be valid. It panics otherwise.
func MustMoment(year, month, day, hour, minute, second, tzOffsetMinutes int) CalendarMoment {
	m, err := NewMoment(year, month, day, hour, minute, second, tzOffsetMinutes)
	if err != nil {
		panic(err)
	}
	return m
}

// FromTime converts a time.Time, keeping its zone offset.
func FromTime(t time.Time) (CalendarMoment, error) {
	_, offset := t.Zone()
	return NewMoment(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), offset/60)
}

// Accessors
func (m CalendarMoment) Year() int            { return m.year }
func (m CalendarMoment) Month() int           { return m.month }
func (m CalendarMoment) Day() int             { return m.day }
func (m CalendarMoment) Hour() int            { return m.hour }
func (m CalendarMoment) Minute() int          { return m.minute }
func (m CalendarMoment) Second() int          { return m.second }
func (m CalendarMoment) TZOffsetMinutes() int { return m.tzOffsetMinutes }
func (m CalendarMoment) HasTime() bool        { return m.hasTime }
func (m CalendarMoment) IsZero() bool         { return m.month == 0 }

// JDN returns the Julian Day Number of the moment's local date.
func (m CalendarMoment) JDN() int64 { return GregorianToJDN(m.year, m.month, m.day) }

// Unix returns seconds since 1970-01-01T00:00:00Z, honouring the offset.
func (m CalendarMoment) Unix() int64 {
	secs := (m.JDN()-UnixEpochJDN)*86400 +
		int64(m.hour*3600+m.minute*60+m.second)
	return secs - int64(m.tzOffsetMinutes)*60
}

// DateOnly drops the time of day but keeps the offset.
func (m CalendarMoment) DateOnly() CalendarMoment {
	return CalendarMoment{year: m.year, month: m.month, day: m.day, tzOffsetMinutes: m.tzOffsetMinutes}
}

// ISO renders YYYY-MM-DDTHH:MM:SS±HH:MM. The offset is always explicit.
func (m CalendarMoment) ISO() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d%s",
		m.DateString(), m.hour, m.minute, m.second, FormatOffset(m.tzOffsetMinutes))
}

// DateString renders YYYY-MM-DD, with a leading '-' for negative years.
func (m CalendarMoment) DateString() string {
	if m.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -m.year, m.month, m.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", m.year, m.month, m.day)
}

func (m CalendarMoment) String() string {
	if !m.hasTime {
		return m.DateString()
	}
	return m.ISO()
}

func (m CalendarMoment) validate(input string) error {
	if m.year < MinYear || m.year > MaxYear {
		return &OutOfRangeError{Quantity: "year", Value: strconv.Itoa(m.year), Min: MinYear, Max: MaxYear}
	}
	if m.month < 1 || m.month > 12 {
		return &InvalidDateError{Input: input, Field: "month", Value: m.month}
	}
	if m.day < 1 || m.day > DaysInMonth(m.year, m.month) {
		return &InvalidDateError{Input: input, Field: "day", Value: m.day}
	}
	if m.hour < 0 || m.hour > 23 {
		return &InvalidDateError{Input: input, Field: "hour", Value: m.hour}
	}
	if m.minute < 0 || m.minute > 59 {
		return &InvalidDateError{Input: input, Field: "minute", Value: m.minute}
	}
	if m.second < 0 || m.second > 59 {
		return &InvalidDateError{Input: input, Field: "second", Value: m.second}
	}
	if m.tzOffsetMinutes < -MaxOffsetMinutes || m.tzOffsetMinutes > MaxOffsetMinutes {
		return &OutOfRangeError{Quantity: "tz offset minutes", Value: strconv.Itoa(m.tzOffsetMinutes), Min: -MaxOffsetMinutes, Max: MaxOffsetMinutes}
	}
	return nil
}

// =============================================================================
// CALENDAR UTILITIES
// =============================================================================

// IsLeapYear applies the proleptic Gregorian rule to any signed year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year, or 0 for a bad month.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// =============================================================================
// PARSING
// =============================================================================

var (
	momentPattern = regexp.MustCompile(`^(-?\d{4,6})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2})(?::(\d{2}))?(?:\.\d+)?)?\s*(Z|[+-]\d{2}:?\d{2})?$`)
	offsetPattern = regexp.MustCompile(`^(?:Z|([+-])(\d{2}):?(\d{2}))$`)
)

// ParseMoment accepts YYYY-MM-DD or an ISO datetime with optional seconds and
// offset. A missing offset means UTC; a missing time yields a date-only moment.
func ParseMoment(s string) (CalendarMoment, error) {
	return ParseMomentInZone(s, 0)
}

// ParseMomentInZone is ParseMoment with offsetMinutes applied when s carries
// no offset of its own.
func ParseMomentInZone(s string, offsetMinutes int) (CalendarMoment, error) {
	parts := momentPattern.FindStringSubmatch(strings.TrimSpace(s))
	if parts == nil {
		return CalendarMoment{}, &InvalidDateError{Input: s}
	}

	m := CalendarMoment{}
	m.year, _ = strconv.Atoi(parts[1])
	m.month, _ = strconv.Atoi(parts[2])
	m.day, _ = strconv.Atoi(parts[3])

	if parts[4] != "" {
		m.hasTime = true
		m.hour, _ = strconv.Atoi(parts[4])
		m.minute, _ = strconv.Atoi(parts[5])
		if parts[6] != "" {
			m.second, _ = strconv.Atoi(parts[6])
		}
	}
	m.tzOffsetMinutes = offsetMinutes
	if parts[7] != "" {
		off, err := ParseOffset(parts[7])
		if err != nil {
			return CalendarMoment{}, err
		}
		m.tzOffsetMinutes = off
	}

	if err := m.validate(s); err != nil {
		return CalendarMoment{}, err
	}
	return m, nil
}

// ParseOffset parses "Z", "±HH:MM" or "±HHMM" into signed minutes.
func ParseOffset(s string) (int, error) {
	parts := offsetPattern.FindStringSubmatch(s)
	if parts == nil {
		return 0, &InvalidDateError{Input: s}
	}
	if s == "Z" {
		return 0, nil
	}
	h, _ := strconv.Atoi(parts[2])
	mm, _ := strconv.Atoi(parts[3])
	if mm > 59 {
		return 0, &InvalidDateError{Input: s, Field: "offset minute", Value: mm}
	}
	off := h*60 + mm
	if parts[1] == "-" {
		off = -off
	}
	if off < -MaxOffsetMinutes || off > MaxOffsetMinutes {
		return 0, &OutOfRangeError{Quantity: "tz offset minutes", Value: strconv.Itoa(off), Min: -MaxOffsetMinutes, Max: MaxOffsetMinutes}
	}
	return off, nil
}

// FormatOffset renders signed minutes as ±HH:MM. Zero is "+00:00".
func FormatOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
