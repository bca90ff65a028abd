package fc60_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/fc60/fc60"
)

func TestEncodeFC60_FixedVector(t *testing.T) {
	enc, err := fc60.EncodeFC60(2026, 2, 6, 1, 15, 0, 8, 0)
	require.NoError(t, err)

	assert.Equal(t, "VE-OX-OXFI ☀OX-RUWU-RAWU", enc.Stamp)
	assert.Equal(t, "2026-02-06T01:15:00+08:00", enc.ISO)
	assert.Equal(t, "+OXMT-RAWU", enc.TZ60)
	assert.Equal(t, "HOMT-ROFI", enc.Y60)
	assert.Equal(t, "SNFI", enc.Y2K)
	assert.Equal(t, int64(2461078), enc.JDN)
	assert.Equal(t, "TIFI-DRMT-GOER-PIMT", enc.J60)
	assert.Equal(t, "RUFI-PIER-PIER", enc.MJD60)
	assert.Equal(t, "RAMT-SNWU-SNER-HOMT", enc.RD60)
	assert.Equal(t, int64(1770311700), enc.Unix)
	assert.Equal(t, "RAER-RUFI-GOWU-DOMT-RUWU-RAWU", enc.U60)
	assert.Equal(t, "TIMT", enc.Chk)

	assert.Equal(t, 5, enc.MoonPhaseIdx)
	assert.Equal(t, "Waning Gibbous", enc.MoonPhaseName)
	assert.Equal(t, 19.05, enc.MoonAge)
	assert.Equal(t, 80.6, enc.MoonIllumination)

	assert.Equal(t, "BIHO", enc.GZToken)
	assert.Equal(t, "Fire Horse", enc.GZName)
	assert.Equal(t, "XIPI", enc.GZDayToken)
	assert.Equal(t, "JIOX", enc.GZHourToken)

	assert.Equal(t, 5, enc.WeekdayIdx)
	assert.Equal(t, "Friday", enc.WeekdayName)
	assert.Equal(t, "Venus", enc.WeekdayPlanet)
	assert.False(t, enc.DateOnly)

	require.NoError(t, enc.Verify())
}

func TestEncode_AfternoonUsesPMGlyph(t *testing.T) {
	m := fc60.MustMoment(2026, 2, 6, 13, 45, 30, -300)
	enc, err := fc60.Encode(m)
	require.NoError(t, err)

	assert.Equal(t, "VE-OX-OXFI ☽OX-ROWU-HOWU", enc.Stamp)
	assert.Equal(t, "2026-02-06T13:45:30-05:00", enc.ISO)
	assert.Equal(t, "-OXWU-RAWU", enc.TZ60)
	assert.Equal(t, int64(1770403530), enc.Unix)
	assert.Equal(t, "HOFI", enc.Chk)
	require.NoError(t, enc.Verify())
}

func TestEncode_DateOnly(t *testing.T) {
	m, err := fc60.NewDate(2000, 1, 1)
	require.NoError(t, err)
	enc, err := fc60.Encode(m)
	require.NoError(t, err)

	assert.Equal(t, "SA-RA-RAFI", enc.Stamp)
	assert.Equal(t, "2000-01-01T00:00:00+00:00", enc.ISO)
	assert.Equal(t, "RAWU", enc.Chk)
	assert.Equal(t, "GEDR", enc.GZToken)
	assert.Equal(t, int64(946684800), enc.Unix)
	assert.Empty(t, enc.GZHourToken)
	assert.True(t, enc.DateOnly)
	require.NoError(t, enc.Verify())

	// WithDateOnly on a timed moment matches the date-only encoding.
	timed := fc60.MustMoment(2000, 1, 1, 18, 30, 0, 0)
	enc2, err := fc60.Encode(timed, fc60.WithDateOnly())
	require.NoError(t, err)
	assert.Equal(t, enc, enc2)
}

func TestEncode_NegativeYear(t *testing.T) {
	m := fc60.MustMoment(-44, 3, 15, 12, 0, 0, 0)
	enc, err := fc60.Encode(m)
	require.NoError(t, err)

	assert.Equal(t, "JU-TI-RUWU ☽RA-RAWU-RAWU", enc.Stamp)
	assert.Equal(t, "-0044-03-15T12:00:00+00:00", enc.ISO)
	assert.Equal(t, "NEG-MOWA", enc.Y60)
	assert.Equal(t, "NEG-RAWA-HOER-MOER", enc.RD60)
	assert.Equal(t, int64(-63549316800), enc.Unix)
	assert.Equal(t, "BIRA", enc.GZToken)
	require.NoError(t, enc.Verify())
}

func TestEncode_ZeroMomentFails(t *testing.T) {
	_, err := fc60.Encode(fc60.CalendarMoment{})
	assert.ErrorIs(t, err, fc60.ErrInvalidDate)
}

func TestEncode_Idempotent(t *testing.T) {
	m := fc60.MustMoment(1987, 7, 23, 9, 5, 59, 210)
	a, err := fc60.Encode(m)
	require.NoError(t, err)
	b, err := fc60.Encode(m)
	require.NoError(t, err)

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	assert.Equal(t, ja, jb)
}

func TestEncode_FacetsAgreeAcrossSweep(t *testing.T) {
	// GIVEN: moments spread over many centuries, offsets and times of day
	// THEN: every facet decodes back to the same instant
	offsets := []int{-720, -330, 0, 345, 840}
	i := 0
	for y := -3000; y <= 3000; y += 37 {
		for mo := 1; mo <= 12; mo += 5 {
			off := offsets[i%len(offsets)]
			m := fc60.MustMoment(y, mo, 1+i%28, i%24, (i*7)%60, (i*13)%60, off)
			enc, err := fc60.Encode(m)
			require.NoError(t, err)
			require.NoError(t, enc.Verify(), m.ISO())
			i++
		}
	}
}

func TestVerify_DetectsTampering(t *testing.T) {
	enc, err := fc60.EncodeFC60(2026, 2, 6, 1, 15, 0, 8, 0)
	require.NoError(t, err)

	tampered := enc
	tampered.J60 = fc60.EncodeBase60(enc.JDN + 1)
	assert.ErrorIs(t, tampered.Verify(), fc60.ErrInconsistentFacets)

	tampered = enc
	tampered.Chk = fc60.Token60(14)
	assert.ErrorIs(t, tampered.Verify(), fc60.ErrInconsistentFacets)

	tampered = enc
	tampered.Stamp = "SA-OX-OXFI ☀OX-RUWU-RAWU"
	assert.ErrorIs(t, tampered.Verify(), fc60.ErrInconsistentFacets)

	tampered = enc
	tampered.TZ60 = "+RAWU-RAWU"
	assert.ErrorIs(t, tampered.Verify(), fc60.ErrInconsistentFacets)

	tampered = enc
	tampered.MJD60 = "XXXX"
	assert.ErrorIs(t, tampered.Verify(), fc60.ErrInvalidToken)
}

func TestDecodeStamp(t *testing.T) {
	f, err := fc60.DecodeStamp("VE-OX-OXFI ☽OX-ROWU-HOWU")
	require.NoError(t, err)
	assert.Equal(t, "Friday", f.Weekday.Name)
	assert.Equal(t, 2, f.Month)
	assert.Equal(t, 6, f.Day)
	assert.True(t, f.HasTime)
	assert.Equal(t, 13, f.Hour)
	assert.Equal(t, 45, f.Minute)
	assert.Equal(t, 30, f.Second)

	f, err = fc60.DecodeStamp("SA-RA-RAFI")
	require.NoError(t, err)
	assert.False(t, f.HasTime)

	for _, bad := range []string{"", "VE-OX", "XX-OX-OXFI", "VE-OX-OXFI OX-RUWU-RAWU", "VE-OX-OXFI ☀OX-RUWU"} {
		_, err := fc60.DecodeStamp(bad)
		assert.ErrorIs(t, err, fc60.ErrInvalidToken, bad)
	}
}

func TestEncodingJSONFieldNames(t *testing.T) {
	enc, err := fc60.EncodeFC60(2026, 2, 6, 1, 15, 0, 8, 0)
	require.NoError(t, err)
	raw, err := json.Marshal(enc)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, name := range []string{
		"stamp", "iso", "tz60", "y60", "y2k", "j60", "jdn", "mjd60", "rd60", "u60", "unix",
		"moon_phase_idx", "moon_phase_name", "moon_age", "moon_illumination", "moon_meaning",
		"gz_token", "gz_name", "chk", "weekday_idx", "weekday_name", "weekday_planet", "weekday_domain",
	} {
		assert.Contains(t, fields, name)
	}
}

func TestSelfTest_AllPass(t *testing.T) {
	results := fc60.SelfTest()
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.True(t, r.Pass, "%s: want %s got %s", r.Name, r.Want, r.Got)
	}
}

func TestRunSelfTest_Tally(t *testing.T) {
	s := fc60.RunSelfTest()
	assert.True(t, s.OK())
	assert.Equal(t, len(fc60.SelfTest()), s.Passed)
	assert.Zero(t, s.Failed)
	assert.Len(t, s.Results, s.Passed+s.Failed)

	assert.False(t, fc60.SelfTestSummary{Passed: 3, Failed: 1}.OK())
}
