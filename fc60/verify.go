package fc60

import (
	"fmt"
	"strings"
)

// =============================================================================
// STAMP DECODING
// =============================================================================

// StampFields are the values carried by a stamp string.
type StampFields struct {
	Weekday Weekday
	Month   int
	Day     int
	HasTime bool
	Hour    int
	Minute  int
	Second  int
}

// DecodeStamp parses the stamp grammar back into its fields.
func DecodeStamp(stamp string) (StampFields, error) {
	datePart, timePart, hasTime := strings.Cut(stamp, " ")

	dp := strings.Split(datePart, separator)
	if len(dp) != 3 {
		return StampFields{}, &InvalidTokenError{Token: stamp}
	}
	wd, err := WeekdayByToken(dp[0])
	if err != nil {
		return StampFields{}, err
	}
	month := animalIndex(dp[1])
	if month < 0 {
		return StampFields{}, &InvalidTokenError{Token: dp[1]}
	}
	day, err := Digit60(dp[2])
	if err != nil {
		return StampFields{}, err
	}
	f := StampFields{Weekday: wd, Month: month + 1, Day: day}
	if !hasTime {
		return f, nil
	}

	pm := false
	switch {
	case strings.HasPrefix(timePart, HalfAM):
		timePart = strings.TrimPrefix(timePart, HalfAM)
	case strings.HasPrefix(timePart, HalfPM):
		timePart = strings.TrimPrefix(timePart, HalfPM)
		pm = true
	default:
		return StampFields{}, &InvalidTokenError{Token: timePart}
	}
	tp := strings.Split(timePart, separator)
	if len(tp) != 3 {
		return StampFields{}, &InvalidTokenError{Token: timePart}
	}
	hour := animalIndex(tp[0])
	if hour < 0 {
		return StampFields{}, &InvalidTokenError{Token: tp[0]}
	}
	if pm {
		hour += 12
	}
	minute, err := Digit60(tp[1])
	if err != nil {
		return StampFields{}, err
	}
	second, err := Digit60(tp[2])
	if err != nil {
		return StampFields{}, err
	}

	f.HasTime = true
	f.Hour, f.Minute, f.Second = hour, minute, second
	return f, nil
}

func animalIndex(tok string) int {
	for i, a := range animals {
		if a == tok {
			return i
		}
	}
	return -1
}

// =============================================================================
// FACET CONSISTENCY
// =============================================================================

// Verify decodes every invertible facet independently and checks that they
// describe the same jdn/unix instant.
func (e Encoding) Verify() error {
	jdn, err := DecodeBase60(e.J60)
	if err != nil {
		return fmt.Errorf("j60: %w", err)
	}
	if jdn != e.JDN {
		return inconsistent("j60 decodes to %d, jdn is %d", jdn, e.JDN)
	}

	mjd, err := DecodeBase60(e.MJD60)
	if err != nil {
		return fmt.Errorf("mjd60: %w", err)
	}
	if mjd+MJDOffset != jdn {
		return inconsistent("mjd60 gives jdn %d, j60 gives %d", mjd+MJDOffset, jdn)
	}

	rd, err := DecodeBase60(e.RD60)
	if err != nil {
		return fmt.Errorf("rd60: %w", err)
	}
	if rd+RDOffset != jdn {
		return inconsistent("rd60 gives jdn %d, j60 gives %d", rd+RDOffset, jdn)
	}

	unix, err := DecodeBase60(e.U60)
	if err != nil {
		return fmt.Errorf("u60: %w", err)
	}
	if unix != e.Unix {
		return inconsistent("u60 decodes to %d, unix is %d", unix, e.Unix)
	}
	offset, err := DecodeTZ60(e.TZ60)
	if err != nil {
		return fmt.Errorf("tz60: %w", err)
	}
	local := unix + int64(offset)*60
	if floorDiv(local, 86400)+UnixEpochJDN != jdn {
		return inconsistent("u60 gives jdn %d, j60 gives %d", floorDiv(local, 86400)+UnixEpochJDN, jdn)
	}
	secOfDay := int(floorMod64(local, 86400))

	year, month, day := JDNToGregorian(jdn)
	y, err := DecodeBase60(e.Y60)
	if err != nil {
		return fmt.Errorf("y60: %w", err)
	}
	if int(y) != year {
		return inconsistent("y60 decodes to %d, jdn gives year %d", y, year)
	}
	y2k, err := Digit60(e.Y2K)
	if err != nil {
		return fmt.Errorf("y2k: %w", err)
	}
	if y2k != floorMod(year-2000, Base) {
		return inconsistent("y2k %s does not match year %d", e.Y2K, year)
	}

	f, err := DecodeStamp(e.Stamp)
	if err != nil {
		return fmt.Errorf("stamp: %w", err)
	}
	if f.Weekday.Index != WeekdayFromJDN(jdn) || f.Month != month || f.Day != day {
		return inconsistent("stamp %q does not match %04d-%02d-%02d", e.Stamp, year, month, day)
	}
	if f.HasTime == e.DateOnly {
		return inconsistent("stamp time part does not match date_only=%t", e.DateOnly)
	}
	if f.HasTime && f.Hour*3600+f.Minute*60+f.Second != secOfDay {
		return inconsistent("stamp time does not match u60")
	}

	m := CalendarMoment{year: year, month: month, day: day, tzOffsetMinutes: offset}
	want := DateChecksum(m, jdn)
	if f.HasTime {
		m.hour, m.minute, m.second = f.Hour, f.Minute, f.Second
		want = Checksum(m, jdn)
	}
	if e.Chk != want {
		return inconsistent("chk %s, recomputed %s", e.Chk, want)
	}

	if gz := GanzhiYear(year).Token(); e.GZToken != gz {
		return inconsistent("gz_token %s, year gives %s", e.GZToken, gz)
	}
	if idx := Moon(jdn).PhaseIndex; e.MoonPhaseIdx != idx {
		return inconsistent("moon_phase_idx %d, jdn gives %d", e.MoonPhaseIdx, idx)
	}
	return nil
}

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistentFacets, fmt.Sprintf(format, args...))
}
