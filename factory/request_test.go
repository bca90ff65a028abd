package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/fc60/factory"
	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
	"github.com/warp/fc60/reading"
)

func TestParseSystem_Aliases(t *testing.T) {
	cases := map[string]numerology.System{
		"pythagorean": numerology.Pythagorean,
		"PYTH":        numerology.Pythagorean,
		" Chaldean ":  numerology.Chaldean,
		"chal":        numerology.Chaldean,
		"abjad":       numerology.Abjad,
		"Arabic":      numerology.Abjad,
		"persian":     numerology.Abjad,
	}
	for tag, want := range cases {
		tbl, err := factory.ParseSystem(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, tbl.System(), tag)
	}

	_, err := factory.ParseSystem("kabbalah")
	assert.ErrorIs(t, err, numerology.ErrUnknownSystem)
	_, err = factory.ParseSystem("")
	assert.ErrorIs(t, err, numerology.ErrUnknownSystem)
}

func TestParseRequest_FullBody(t *testing.T) {
	f := factory.NewRequestFactory(numerology.Pythagorean, 0)

	// GIVEN a request with a numeric sign and an alias system tag
	in, err := f.ParseRequest([]byte(`{
		"text": "saw 11:11",
		"sign": 444,
		"time": "14:44",
		"date": "2026-02-06",
		"tz": "+08:00",
		"name": "John Smith",
		"birth": "1985-07-15",
		"system": "chal",
		"today": "2026-10-19"
	}`))

	// THEN every field lands on the engine input
	require.NoError(t, err)
	assert.Equal(t, reading.Input{
		Text:            "saw 11:11",
		Sign:            "444",
		Time:            "14:44",
		Date:            "2026-02-06",
		TZOffsetMinutes: 480,
		Name:            "John Smith",
		Birth:           "1985-07-15",
		System:          numerology.Chaldean,
		Today:           "2026-10-19",
	}, in)
}

func TestParseRequest_Defaults(t *testing.T) {
	f := factory.NewRequestFactory(numerology.Abjad, -300)
	in, err := f.ParseRequest([]byte(`{"sign": "12.34"}`))
	require.NoError(t, err)
	assert.Equal(t, "12.34", in.Sign)
	assert.Equal(t, numerology.Abjad, in.System)
	assert.Equal(t, -300, in.TZOffsetMinutes)
}

func TestParseRequest_Rejects(t *testing.T) {
	f := factory.NewRequestFactory(numerology.Pythagorean, 0)

	_, err := f.ParseRequest([]byte(`{"text": `))
	assert.ErrorIs(t, err, factory.ErrInvalidRequest)

	_, err = f.ParseRequest([]byte(`{"colour": "blue"}`))
	assert.ErrorIs(t, err, factory.ErrInvalidRequest)

	_, err = f.ParseRequest([]byte(`{"sign": true}`))
	assert.ErrorIs(t, err, factory.ErrInvalidRequest)

	_, err = f.ParseRequest([]byte(`{"system": "tarot"}`))
	assert.ErrorIs(t, err, numerology.ErrUnknownSystem)

	_, err = f.ParseRequest([]byte(`{"tz": "+15:00"}`))
	assert.ErrorIs(t, err, fc60.ErrOutOfRange)
}

func TestParseRequest_BadContentIsLeftToReader(t *testing.T) {
	f := factory.NewRequestFactory(numerology.Pythagorean, 0)
	in, err := f.ParseRequest([]byte(`{"date": "someday", "sign": "many"}`))
	require.NoError(t, err)

	r := reading.Read(in)
	assert.True(t, r.Warned(reading.FacetDate))
	assert.True(t, r.Warned(reading.FacetSign))
}

func TestToJSON_RoundTrip(t *testing.T) {
	f := factory.NewRequestFactory(numerology.Pythagorean, 0)
	in := reading.Input{Sign: "7", Date: "2026-02-06", TZOffsetMinutes: -330, Name: "Ann", System: numerology.Chaldean}

	back, err := f.FromJSON(f.ToJSON(in))
	require.NoError(t, err)
	assert.Equal(t, in, back)
}
