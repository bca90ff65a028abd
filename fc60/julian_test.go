package fc60_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/fc60/fc60"
)

func TestGregorianToJDN_FixedVectors(t *testing.T) {
	for _, v := range fc60.Vectors().JDN {
		assert.Equal(t, v.JDN, fc60.GregorianToJDN(v.Year, v.Month, v.Day),
			"%d-%02d-%02d", v.Year, v.Month, v.Day)
		assert.Equal(t, v.WeekdayToken, fc60.WeekdayOf(v.JDN).Token)
	}
}

func TestWeekday_J2000IsSaturday(t *testing.T) {
	idx := fc60.WeekdayFromJDN(2451545)
	wd, err := fc60.WeekdayInfo(idx)
	require.NoError(t, err)
	assert.Equal(t, "Saturday", wd.Name)
	assert.Equal(t, "Saturn", wd.Planet)
}

func TestWeekday_2026_02_06IsFriday(t *testing.T) {
	jdn := fc60.GregorianToJDN(2026, 2, 6)
	require.Equal(t, int64(2461078), jdn)
	assert.Equal(t, "VE", fc60.WeekdayOf(jdn).Token)
	assert.Equal(t, "Friday", fc60.WeekdayOf(jdn).Name)
}

func TestWeekdayFromJDN_NegativeJDN(t *testing.T) {
	// JDN 0 is a Monday, so JDN -1 is a Sunday.
	assert.Equal(t, 1, fc60.WeekdayFromJDN(0))
	assert.Equal(t, 0, fc60.WeekdayFromJDN(-1))
	assert.Equal(t, 6, fc60.WeekdayFromJDN(-2))
}

func TestJDN_RoundTrip(t *testing.T) {
	// GIVEN: every month start/end across a wide proleptic range
	// THEN: jdn -> gregorian -> jdn is the identity in both directions
	for y := -6000; y <= 6000; y += 7 {
		for m := 1; m <= 12; m++ {
			for _, d := range []int{1, 15, fc60.DaysInMonth(y, m)} {
				jdn := fc60.GregorianToJDN(y, m, d)
				gy, gm, gd := fc60.JDNToGregorian(jdn)
				require.Equal(t, [3]int{y, m, d}, [3]int{gy, gm, gd}, "jdn %d", jdn)
			}
		}
	}
}

func TestJDN_ConsecutiveDays(t *testing.T) {
	start := fc60.GregorianToJDN(-101, 2, 27)
	for jdn := start; jdn < start+4000; jdn++ {
		y, m, d := fc60.JDNToGregorian(jdn)
		require.Equal(t, jdn, fc60.GregorianToJDN(y, m, d))
	}
}

func TestJDN_FlooredDivisionBeforeEpoch(t *testing.T) {
	assert.Equal(t, int64(1705063), fc60.GregorianToJDN(-44, 3, 15))
	assert.Equal(t, int64(-1), fc60.GregorianToJDN(-4713, 11, 23))

	// Truncating division gives -32103 and -68568 for these.
	assert.Equal(t, int64(-32104), fc60.GregorianToJDN(-4800, 1, 1))
	assert.Equal(t, int64(-68569), fc60.GregorianToJDN(-4900, 3, 1))
}

func TestDerivedDayCounts(t *testing.T) {
	assert.Equal(t, int64(61077), fc60.MJD(2461078))
	assert.Equal(t, int64(739653), fc60.RataDie(2461078))
	assert.Equal(t, int64(1), fc60.RataDie(fc60.GregorianToJDN(1, 1, 1)))
}

func TestLeapYears(t *testing.T) {
	assert.True(t, fc60.IsLeapYear(2000))
	assert.True(t, fc60.IsLeapYear(2024))
	assert.False(t, fc60.IsLeapYear(1900))
	assert.True(t, fc60.IsLeapYear(0))
	assert.True(t, fc60.IsLeapYear(-4))
	assert.False(t, fc60.IsLeapYear(-100))
	assert.Equal(t, 29, fc60.DaysInMonth(2024, 2))
	assert.Equal(t, 28, fc60.DaysInMonth(2026, 2))
	assert.Equal(t, 0, fc60.DaysInMonth(2026, 13))
}

func TestDateFromJDN_Range(t *testing.T) {
	m, err := fc60.DateFromJDN(2461078)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-06", m.DateString())
	assert.False(t, m.HasTime())

	// GIVEN the edges of the supported year range
	first, err := fc60.DateFromJDN(fc60.MinJDN)
	require.NoError(t, err)
	assert.Equal(t, fc60.MinYear, first.Year())
	last, err := fc60.DateFromJDN(fc60.MaxJDN)
	require.NoError(t, err)
	assert.Equal(t, fc60.MaxYear, last.Year())
	assert.Equal(t, 31, last.Day())

	// THEN anything beyond them, including values that would overflow, is rejected
	for _, jdn := range []int64{fc60.MaxJDN + 1, fc60.MinJDN - 1, 1 << 62, -(1 << 62)} {
		_, err := fc60.DateFromJDN(jdn)
		var oor *fc60.OutOfRangeError
		require.ErrorAs(t, err, &oor, "jdn %d", jdn)
		assert.Equal(t, fc60.MaxJDN, oor.Max)
		assert.ErrorIs(t, err, fc60.ErrOutOfRange)
	}
}

func TestJDNBounds_MatchYearRange(t *testing.T) {
	assert.Equal(t, fc60.MinJDN, fc60.GregorianToJDN(fc60.MinYear, 1, 1))
	assert.Equal(t, fc60.MaxJDN, fc60.GregorianToJDN(fc60.MaxYear, 12, 31))
}
