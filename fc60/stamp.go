/*
stamp.go - FC60 stamp and facet encoding

PURPOSE:
  Orchestrates the codec, calendar, moon, Ganzhi and checksum engines into
  one flat Encoding. The Encoding's JSON field names are a public contract
  consumed by formatters downstream; renaming a field is a breaking change.

STAMP GRAMMAR (byte-exact):
  <weekday2>-<month_animal2>-<day_token4>[ <half_glyph><hour_animal2>-<minute_token4>-<second_token4>]

  half_glyph is ☀ before noon and ☽ from noon on.

FACETS:
  y60    absolute year, base 60
  y2k    position in the 60-year cycle counted from 2000
  j60    Julian Day Number, base 60
  mjd60  jdn - 2400001, base 60
  rd60   Rata Die (jdn - 1721425), base 60
  u60    Unix seconds honouring the offset, base 60
  tz60   UTC offset
  moon   phase bucket, age and illumination of the jdn
  gz     Ganzhi year pillar
  chk    weighted mod-60 checksum

  All facets derive from one jdn/unix pair; Verify decodes them back and
  checks they agree.

SEE ALSO:
  - verify.go: Facet consistency check
  - vectors.go: Literal regression vectors
*/
package fc60

import (
	"github.com/shopspring/decimal"
)

const (
	// HalfAM marks hours 0-11 in the stamp.
	HalfAM = "☀"
	// HalfPM marks hours 12-23 in the stamp.
	HalfPM = "☽"
)

// =============================================================================
// ENCODING - Flat facet set
// =============================================================================

// Encoding is the full FC60 output for one moment.
type Encoding struct {
	Stamp string `json:"stamp"`
	ISO   string `json:"iso"`
	TZ60  string `json:"tz60"`

	Y60   string `json:"y60"`
	Y2K   string `json:"y2k"`
	J60   string `json:"j60"`
	JDN   int64  `json:"jdn"`
	MJD60 string `json:"mjd60"`
	MJD   int64  `json:"mjd"`
	RD60  string `json:"rd60"`
	RD    int64  `json:"rd"`
	U60   string `json:"u60"`
	Unix  int64  `json:"unix"`

	MoonPhaseIdx     int     `json:"moon_phase_idx"`
	MoonPhaseName    string  `json:"moon_phase_name"`
	MoonEmoji        string  `json:"moon_emoji"`
	MoonAge          float64 `json:"moon_age"`
	MoonIllumination float64 `json:"moon_illumination"`
	MoonMeaning      string  `json:"moon_meaning"`

	GZToken     string `json:"gz_token"`
	GZName      string `json:"gz_name"`
	GZPolarity  string `json:"gz_polarity"`
	GZDayToken  string `json:"gz_day_token"`
	GZHourToken string `json:"gz_hour_token,omitempty"`

	Chk string `json:"chk"`

	WeekdayIdx    int    `json:"weekday_idx"`
	WeekdayName   string `json:"weekday_name"`
	WeekdayPlanet string `json:"weekday_planet"`
	WeekdayDomain string `json:"weekday_domain"`

	DateOnly bool `json:"date_only"`
}

// =============================================================================
// OPTIONS
// =============================================================================

type encodeOptions struct {
	dateOnly bool
}

// Option customises Encode.
type Option func(*encodeOptions)

// WithDateOnly drops the time half of the stamp and uses the date checksum.
func WithDateOnly() Option {
	return func(o *encodeOptions) { o.dateOnly = true }
}

// =============================================================================
// ENCODE
// =============================================================================

// Encode builds every facet of m. Moments built with NewDate, or parsed
// without a time, are encoded date-only.
func Encode(m CalendarMoment, opts ...Option) (Encoding, error) {
	if m.IsZero() {
		return Encoding{}, &InvalidDateError{Field: "month", Value: 0}
	}
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	dateOnly := o.dateOnly || !m.HasTime()
	if dateOnly {
		m = m.DateOnly()
	}

	tz60, err := EncodeTZ60(m.TZOffsetMinutes())
	if err != nil {
		return Encoding{}, err
	}

	jdn := m.JDN()
	unix := m.Unix()
	wd := WeekdayOf(jdn)
	moon := Moon(jdn).Rounded()
	phase := moon.Info()
	gz := GanzhiYear(m.Year())
	gzDay := GanzhiDay(jdn)

	enc := Encoding{
		Stamp: dateStamp(wd, m),
		ISO:   m.ISO(),
		TZ60:  tz60,

		Y60:   EncodeBase60(int64(m.Year())),
		Y2K:   Token60(m.Year() - 2000),
		J60:   EncodeBase60(jdn),
		JDN:   jdn,
		MJD60: EncodeBase60(MJD(jdn)),
		MJD:   MJD(jdn),
		RD60:  EncodeBase60(RataDie(jdn)),
		RD:    RataDie(jdn),
		U60:   EncodeBase60(unix),
		Unix:  unix,

		MoonPhaseIdx:     moon.PhaseIndex,
		MoonPhaseName:    phase.Name,
		MoonEmoji:        phase.Emoji,
		MoonAge:          moon.AgeDays,
		MoonIllumination: moon.IlluminationPct,
		MoonMeaning:      phase.Meaning,

		GZToken:    gz.Token(),
		GZName:     gz.Name(),
		GZPolarity: gz.Polarity(),
		GZDayToken: gzDay.Token(),

		WeekdayIdx:    wd.Index,
		WeekdayName:   wd.Name,
		WeekdayPlanet: wd.Planet,
		WeekdayDomain: wd.Domain,

		DateOnly: dateOnly,
	}

	if dateOnly {
		enc.Chk = DateChecksum(m, jdn)
	} else {
		enc.Stamp += " " + timeStamp(m)
		enc.Chk = Checksum(m, jdn)
		enc.GZHourToken = GanzhiHour(m.Hour(), gzDay.Stem).Token()
	}
	return enc, nil
}

// EncodeFC60 is the positional form used by the regression vectors. The
// offset is tzHour:tzMinute with the sign of tzHour; pass a negative tzMinute
// with tzHour 0 for offsets such as -00:30.
func EncodeFC60(year, month, day, hour, minute, second, tzHour, tzMinute int) (Encoding, error) {
	offset := tzHour*60 + tzMinute
	if tzHour < 0 {
		offset = tzHour*60 - tzMinute
	}
	m, err := NewMoment(year, month, day, hour, minute, second, offset)
	if err != nil {
		return Encoding{}, err
	}
	return Encode(m)
}

func dateStamp(wd Weekday, m CalendarMoment) string {
	return wd.Token + separator + animals[m.Month()-1] + separator + Token60(m.Day())
}

func timeStamp(m CalendarMoment) string {
	half := HalfAM
	if m.Hour() >= 12 {
		half = HalfPM
	}
	return half + animals[m.Hour()%12] + separator + Token60(m.Minute()) + separator + Token60(m.Second())
}

// round fixes a float to the given number of decimals for stable output.
func round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
