/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Engine types that
  already carry stable JSON names (fc60.Encoding, reading.Reading,
  numerology.NumerologyProfile, synchro.Match) are returned as-is; the
  types here cover the smaller endpoints and the request bodies.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Wrappers around engine output

VALIDATION:
  Validation is done by the engine, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/request.go: ReadingRequestJSON, the POST /api/readings body
*/
package api

import (
	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
	"github.com/warp/fc60/synchro"
)

// =============================================================================
// CODEC
// =============================================================================

// Base60DTO is one integer with its base-60 rendering.
type Base60DTO struct {
	N        int64  `json:"n"`
	Base60   string `json:"base60"`
	Negative bool   `json:"negative"`
	Digits   []int  `json:"digits"`
}

// NewBase60DTO renders n.
func NewBase60DTO(n int64) Base60DTO {
	b := fc60.ToBase60(n)
	return Base60DTO{N: n, Base60: b.String(), Negative: b.Negative, Digits: b.Digits}
}

// StampFieldsDTO is a decoded stamp.
type StampFieldsDTO struct {
	Stamp        string `json:"stamp"`
	WeekdayToken string `json:"weekday_token"`
	WeekdayName  string `json:"weekday_name"`
	Month        int    `json:"month"`
	Day          int    `json:"day"`
	HasTime      bool   `json:"has_time"`
	Hour         *int   `json:"hour,omitempty"`
	Minute       *int   `json:"minute,omitempty"`
	Second       *int   `json:"second,omitempty"`
}

// NewStampFieldsDTO pairs a stamp with its decoded fields. The time fields
// stay nil for a date-only stamp.
func NewStampFieldsDTO(stamp string, f fc60.StampFields) StampFieldsDTO {
	dto := StampFieldsDTO{
		Stamp:        stamp,
		WeekdayToken: f.Weekday.Token,
		WeekdayName:  f.Weekday.Name,
		Month:        f.Month,
		Day:          f.Day,
		HasTime:      f.HasTime,
	}
	if f.HasTime {
		dto.Hour, dto.Minute, dto.Second = &f.Hour, &f.Minute, &f.Second
	}
	return dto
}

// =============================================================================
// CALENDAR
// =============================================================================

// JDNDTO is a date with its day counts and weekday.
type JDNDTO struct {
	Date    string       `json:"date"`
	JDN     int64        `json:"jdn"`
	J60     string       `json:"j60"`
	MJD     int64        `json:"mjd"`
	RD      int64        `json:"rd"`
	Weekday fc60.Weekday `json:"weekday"`
}

// NewJDNDTO builds the day counts of a date.
func NewJDNDTO(m fc60.CalendarMoment) JDNDTO {
	jdn := m.JDN()
	return JDNDTO{
		Date:    m.DateString(),
		JDN:     jdn,
		J60:     fc60.EncodeBase60(jdn),
		MJD:     fc60.MJD(jdn),
		RD:      fc60.RataDie(jdn),
		Weekday: fc60.WeekdayOf(jdn),
	}
}

// MoonDTO is the moon phase for one date.
type MoonDTO struct {
	Date            string  `json:"date"`
	PhaseIndex      int     `json:"phase_index"`
	Name            string  `json:"name"`
	Emoji           string  `json:"emoji"`
	Meaning         string  `json:"meaning"`
	AgeDays         float64 `json:"age_days"`
	IlluminationPct float64 `json:"illumination_pct"`
}

// GanzhiDTO is one stem-branch pair.
type GanzhiDTO struct {
	Token      string `json:"token"`
	Name       string `json:"name"`
	Chinese    string `json:"chinese"`
	Polarity   string `json:"polarity"`
	CycleIndex int    `json:"cycle_index"`
}

// GanzhiResponse holds the year pillar and, when a date is given, the day pillar.
type GanzhiResponse struct {
	Year int        `json:"year"`
	Pair GanzhiDTO  `json:"pair"`
	Day  *GanzhiDTO `json:"day,omitempty"`
}

// =============================================================================
// NUMEROLOGY AND PATTERNS
// =============================================================================

// NumerologyRequest is the POST /api/numerology body.
type NumerologyRequest struct {
	Name   string `json:"name"`
	Birth  string `json:"birth"`
	System string `json:"system,omitempty"`
	Today  string `json:"today,omitempty"`
}

// NumerologyResponse is a profile plus keyword meanings per number.
type NumerologyResponse struct {
	numerology.NumerologyProfile
	Meanings map[string]string `json:"meanings"`
}

// SynchronicityRequest is the POST /api/synchronicities body. Numbers are
// scanned first, then the digit runs of Text.
type SynchronicityRequest struct {
	Numbers []int  `json:"numbers,omitempty"`
	Text    string `json:"text,omitempty"`
}

// SynchronicityResponse echoes the scanned numbers with the matches.
type SynchronicityResponse struct {
	Numbers []int           `json:"numbers"`
	Matches []synchro.Match `json:"matches"`
}

// =============================================================================
// MISC
// =============================================================================

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
