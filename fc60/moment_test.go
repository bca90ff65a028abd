package fc60_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/fc60/fc60"
)

func TestNewMoment_Validation(t *testing.T) {
	cases := []struct {
		name                       string
		y, mo, d, h, mi, s, offset int
		field                      string
	}{
		{"month zero", 2026, 0, 1, 0, 0, 0, 0, "month"},
		{"month 13", 2026, 13, 1, 0, 0, 0, 0, "month"},
		{"feb 29 non-leap", 2026, 2, 29, 0, 0, 0, 0, "day"},
		{"april 31", 2026, 4, 31, 0, 0, 0, 0, "day"},
		{"day zero", 2026, 1, 0, 0, 0, 0, 0, "day"},
		{"hour 24", 2026, 1, 1, 24, 0, 0, 0, "hour"},
		{"minute 60", 2026, 1, 1, 0, 60, 0, 0, "minute"},
		{"second 60", 2026, 1, 1, 0, 0, 60, 0, "second"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fc60.NewMoment(tc.y, tc.mo, tc.d, tc.h, tc.mi, tc.s, tc.offset)
			require.ErrorIs(t, err, fc60.ErrInvalidDate)
			var dateErr *fc60.InvalidDateError
			require.ErrorAs(t, err, &dateErr)
			assert.Equal(t, tc.field, dateErr.Field)
		})
	}
}

func TestNewMoment_OutOfRange(t *testing.T) {
	_, err := fc60.NewDate(1_000_000, 1, 1)
	assert.ErrorIs(t, err, fc60.ErrOutOfRange)

	_, err = fc60.NewDate(-1_000_000, 1, 1)
	assert.ErrorIs(t, err, fc60.ErrOutOfRange)

	_, err = fc60.NewMoment(2026, 1, 1, 0, 0, 0, 15*60)
	assert.ErrorIs(t, err, fc60.ErrOutOfRange)

	m, err := fc60.NewDate(fc60.MaxYear, 12, 31)
	require.NoError(t, err)
	assert.Equal(t, fc60.MaxYear, m.Year())
}

func TestNewMoment_LeapDay(t *testing.T) {
	_, err := fc60.NewDate(2024, 2, 29)
	assert.NoError(t, err)
	_, err = fc60.NewDate(-4, 2, 29)
	assert.NoError(t, err)
}

func TestParseMoment(t *testing.T) {
	m, err := fc60.ParseMoment("2026-02-06T01:15:00+08:00")
	require.NoError(t, err)
	assert.True(t, m.HasTime())
	assert.Equal(t, 480, m.TZOffsetMinutes())
	assert.Equal(t, "2026-02-06T01:15:00+08:00", m.ISO())

	m, err = fc60.ParseMoment("2026-02-06")
	require.NoError(t, err)
	assert.False(t, m.HasTime())
	assert.Equal(t, "2026-02-06T00:00:00+00:00", m.ISO())

	m, err = fc60.ParseMoment("2026-02-06T13:45Z")
	require.NoError(t, err)
	assert.Equal(t, 13, m.Hour())
	assert.Equal(t, 0, m.Second())

	m, err = fc60.ParseMoment("2026-02-06 13:45:30-0530")
	require.NoError(t, err)
	assert.Equal(t, -330, m.TZOffsetMinutes())
	assert.Equal(t, "2026-02-06T13:45:30-05:30", m.ISO())

	m, err = fc60.ParseMoment("-0044-03-15T12:00:00+00:00")
	require.NoError(t, err)
	assert.Equal(t, -44, m.Year())
	assert.Equal(t, "-0044-03-15T12:00:00+00:00", m.ISO())
}

func TestParseMomentInZone_ExplicitOffsetWins(t *testing.T) {
	m, err := fc60.ParseMomentInZone("2026-02-06T13:45:30", -300)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-06T13:45:30-05:00", m.ISO())

	m, err = fc60.ParseMomentInZone("2026-02-06T13:45:30Z", -300)
	require.NoError(t, err)
	assert.Equal(t, 0, m.TZOffsetMinutes())

	_, err = fc60.ParseMomentInZone("2026-02-06", 900)
	assert.ErrorIs(t, err, fc60.ErrOutOfRange)
}

func TestParseMoment_Rejects(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2026/02/06", "2026-2-6", "2026-02-30", "2026-02-06T25:00"} {
		_, err := fc60.ParseMoment(s)
		assert.ErrorIs(t, err, fc60.ErrInvalidDate, s)
	}
	_, err := fc60.ParseMoment("2026-02-06T10:00+15:00")
	assert.ErrorIs(t, err, fc60.ErrOutOfRange)
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "+00:00", fc60.FormatOffset(0))
	assert.Equal(t, "+08:00", fc60.FormatOffset(480))
	assert.Equal(t, "-05:30", fc60.FormatOffset(-330))
	assert.Equal(t, "-00:30", fc60.FormatOffset(-30))
}

func TestMoment_UnixMatchesTimePackage(t *testing.T) {
	zone := time.FixedZone("x", 8*3600)
	tt := time.Date(2026, 2, 6, 1, 15, 0, 0, zone)
	m, err := fc60.FromTime(tt)
	require.NoError(t, err)
	assert.Equal(t, tt.Unix(), m.Unix())
	assert.Equal(t, int64(1770311700), m.Unix())
}

func TestMoment_UnixBeforeEpoch(t *testing.T) {
	tt := time.Date(1900, 3, 1, 6, 30, 0, 0, time.UTC)
	m, err := fc60.FromTime(tt)
	require.NoError(t, err)
	assert.Equal(t, tt.Unix(), m.Unix())
}
