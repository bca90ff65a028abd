package fc60

// =============================================================================
// CHECKSUM - Weighted mod-60 sum over the moment's fields
// =============================================================================

// ChecksumValue weights year, month, day, hour, minute, second and jdn by
// 1 through 7 and reduces mod 60.
func ChecksumValue(m CalendarMoment, jdn int64) int {
	sum := dateChecksumSum(m, jdn) +
		4*m.Hour() + 5*m.Minute() + 6*m.Second()
	return floorMod(sum, Base)
}

// DateChecksumValue drops the hour, minute and second terms entirely.
func DateChecksumValue(m CalendarMoment, jdn int64) int {
	return floorMod(dateChecksumSum(m, jdn), Base)
}

func dateChecksumSum(m CalendarMoment, jdn int64) int {
	return 1*floorMod(m.Year(), Base) +
		2*m.Month() +
		3*m.Day() +
		7*int(floorMod64(jdn, Base))
}

// Checksum renders ChecksumValue as a token.
func Checksum(m CalendarMoment, jdn int64) string {
	return Token60(ChecksumValue(m, jdn))
}

// DateChecksum renders DateChecksumValue as a token.
func DateChecksum(m CalendarMoment, jdn int64) string {
	return Token60(DateChecksumValue(m, jdn))
}
