/*
Package reading is the sign reader: one call that turns loose user input
into every facet the engine can produce.

PURPOSE:
  A "sign" is whatever the user noticed: a phrase with numbers in it, an
  explicit value, a clock time, a date, a name. Read extracts the numbers,
  resolves a CalendarMoment, and fans out to the stamp, moon, Ganzhi,
  zodiac, numerology and synchronicity engines.

PARTIAL RESULTS:
  Read never fails. A facet whose input cannot be parsed is left nil and a
  Warning names the facet and the cause. Every other facet is still
  computed. A reading with warnings is a normal result, not an error.

NUMBER ORDER:
  Numbers are collected as: digit runs of Text, then the sign value(s),
  then HHMM of Time. The synchronicity scan sees them in that order.
  The scan is pairwise, so at most MaxNumbers are kept; the rest are
  dropped with a sign warning.

CLOCK:
  The engine never reads the wall clock. Personal cycles are anchored on
  Input.Today, else the reading's own date, else the birth date.

SEE ALSO:
  - extract.go: Number, sign value and clock parsing
  - zodiac.go: Western sun sign lookup
  - factory/request.go: JSON request to Input
*/
package reading

import (
	"errors"
	"strconv"
	"strings"

	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
	"github.com/warp/fc60/synchro"
)

// Facet names used in warnings.
const (
	FacetSign       = "sign"
	FacetTime       = "time"
	FacetDate       = "date"
	FacetFC60       = "fc60"
	FacetZodiac     = "zodiac"
	FacetNumerology = "numerology"
	FacetToday      = "today"
)

// MaxNumbers bounds the numbers one synchronicity scan accepts.
const MaxNumbers = 100

// CheckNumbers returns *fc60.OutOfRangeError when numbers exceeds MaxNumbers.
func CheckNumbers(numbers []int) error {
	if len(numbers) > MaxNumbers {
		return &fc60.OutOfRangeError{Quantity: "number count", Value: strconv.Itoa(len(numbers)), Min: 0, Max: MaxNumbers}
	}
	return nil
}

// ErrIncompleteProfile is reported when only one of name and birth is given.
var ErrIncompleteProfile = errors.New("numerology needs both a name and a birth date")

// =============================================================================
// INPUT AND OUTPUT
// =============================================================================

// Input is everything a reading may draw on. All fields are optional.
type Input struct {
	Text            string
	Sign            string
	Time            string
	Date            string
	TZOffsetMinutes int // applies when Date carries no offset

	Name   string
	Birth  string
	System numerology.System // empty means pythagorean
	Today  string
}

// Warning records one facet that could not be computed.
type Warning struct {
	Facet   string `json:"facet"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// MoonFacet is the moon phase with its descriptive metadata.
type MoonFacet struct {
	fc60.MoonPhaseInfo
	AgeDays         float64 `json:"age_days"`
	IlluminationPct float64 `json:"illumination_pct"`
}

// GanzhiEntry is one stem-branch pair rendered for output.
type GanzhiEntry struct {
	Token      string `json:"token"`
	Name       string `json:"name"`
	Polarity   string `json:"polarity"`
	CycleIndex int    `json:"cycle_index"`
}

// GanzhiFacet holds the year, day and, when a time is known, hour pillars.
type GanzhiFacet struct {
	Year GanzhiEntry  `json:"year"`
	Day  GanzhiEntry  `json:"day"`
	Hour *GanzhiEntry `json:"hour,omitempty"`
}

// Reading is the combined output. Nil facets were either not requested or
// failed; Warnings says which.
type Reading struct {
	Numbers         []int                         `json:"numbers"`
	Moment          string                        `json:"moment,omitempty"`
	FC60            *fc60.Encoding                `json:"fc60,omitempty"`
	Moon            *MoonFacet                    `json:"moon,omitempty"`
	Ganzhi          *GanzhiFacet                  `json:"ganzhi,omitempty"`
	Zodiac          *Zodiac                       `json:"zodiac,omitempty"`
	Numerology      *numerology.NumerologyProfile `json:"numerology,omitempty"`
	Synchronicities []synchro.Match               `json:"synchronicities"`
	Warnings        []Warning                     `json:"warnings"`
}

// Warned reports whether facet produced a warning.
func (r Reading) Warned(facet string) bool {
	for _, w := range r.Warnings {
		if w.Facet == facet {
			return true
		}
	}
	return false
}

// =============================================================================
// READ
// =============================================================================

// Read computes every facet the input supports.
func Read(in Input) Reading {
	r := &Reading{Numbers: []int{}, Warnings: []Warning{}}

	r.Numbers = append(r.Numbers, ExtractNumbers(in.Text)...)

	if strings.TrimSpace(in.Sign) != "" {
		vals, err := ParseSignValue(in.Sign)
		if err != nil {
			r.warn(FacetSign, in.Sign, err)
		} else {
			r.Numbers = append(r.Numbers, vals...)
		}
	}

	var clock *ClockTime
	if strings.TrimSpace(in.Time) != "" {
		c, err := ParseClock(in.Time)
		if err != nil {
			r.warn(FacetTime, in.Time, err)
		} else {
			clock = &c
			r.Numbers = append(r.Numbers, c.HHMM())
		}
	}

	if err := CheckNumbers(r.Numbers); err != nil {
		r.warn(FacetSign, "", err)
		r.Numbers = r.Numbers[:MaxNumbers]
	}

	moment, ok := r.resolveMoment(in, clock)
	if ok {
		r.Moment = moment.ISO()
		r.readCalendar(moment)
	}
	r.readNumerology(in, moment)

	r.Synchronicities = synchro.Detect(r.Numbers)
	return *r
}

func (r *Reading) warn(facet, input string, err error) {
	var pe *fc60.UnparseableInputError
	if !errors.As(err, &pe) {
		err = &fc60.UnparseableInputError{Facet: facet, Input: input, Err: err}
	}
	r.Warnings = append(r.Warnings, Warning{Facet: facet, Message: err.Error(), Err: err})
}

// resolveMoment parses Date and merges in the clock when Date has no time.
func (r *Reading) resolveMoment(in Input, clock *ClockTime) (fc60.CalendarMoment, bool) {
	if strings.TrimSpace(in.Date) == "" {
		return fc60.CalendarMoment{}, false
	}
	m, err := fc60.ParseMomentInZone(in.Date, in.TZOffsetMinutes)
	if err != nil {
		r.warn(FacetDate, in.Date, err)
		return fc60.CalendarMoment{}, false
	}
	if clock != nil && !m.HasTime() {
		m, err = fc60.NewMoment(m.Year(), m.Month(), m.Day(), clock.Hour, clock.Minute, clock.Second, m.TZOffsetMinutes())
		if err != nil {
			r.warn(FacetDate, in.Date, err)
			return fc60.CalendarMoment{}, false
		}
	}
	return m, true
}

func (r *Reading) readCalendar(m fc60.CalendarMoment) {
	if enc, err := fc60.Encode(m); err != nil {
		r.warn(FacetFC60, m.String(), err)
	} else {
		r.FC60 = &enc
	}

	jdn := m.JDN()
	moon := fc60.Moon(jdn).Rounded()
	r.Moon = &MoonFacet{MoonPhaseInfo: moon.Info(), AgeDays: moon.AgeDays, IlluminationPct: moon.IlluminationPct}

	day := fc60.GanzhiDay(jdn)
	g := &GanzhiFacet{Year: ganzhiEntry(fc60.GanzhiYear(m.Year())), Day: ganzhiEntry(day)}
	if m.HasTime() {
		hour := ganzhiEntry(fc60.GanzhiHour(m.Hour(), day.Stem))
		g.Hour = &hour
	}
	r.Ganzhi = g

	if z, err := ZodiacFor(m.Month(), m.Day()); err != nil {
		r.warn(FacetZodiac, m.DateString(), err)
	} else {
		r.Zodiac = &z
	}
}

func ganzhiEntry(p fc60.GanzhiPair) GanzhiEntry {
	return GanzhiEntry{Token: p.Token(), Name: p.Name(), Polarity: p.Polarity(), CycleIndex: p.CycleIndex()}
}

func (r *Reading) readNumerology(in Input, moment fc60.CalendarMoment) {
	name, birthText := strings.TrimSpace(in.Name), strings.TrimSpace(in.Birth)
	if name == "" && birthText == "" {
		return
	}
	if name == "" || birthText == "" {
		r.warn(FacetNumerology, name+birthText, ErrIncompleteProfile)
		return
	}

	system := in.System
	if system == "" {
		system = numerology.Pythagorean
	}
	table, err := numerology.TableFor(system)
	if err != nil {
		r.warn(FacetNumerology, string(system), err)
		return
	}
	birth, err := fc60.ParseMoment(birthText)
	if err != nil {
		r.warn(FacetNumerology, birthText, err)
		return
	}

	today := moment
	if t := strings.TrimSpace(in.Today); t != "" {
		if parsed, err := fc60.ParseMoment(t); err != nil {
			r.warn(FacetToday, t, err)
		} else {
			today = parsed
		}
	}

	p, err := numerology.Profile(numerology.ProfileInput{Name: name, Birth: birth, Today: today, Table: table})
	if err != nil {
		r.warn(FacetNumerology, name, err)
		return
	}
	r.Numerology = &p
}
