/*
Package factory provides JSON and tag to engine input conversion.

PURPOSE:
  Converts caller-facing representations (system tags such as "pyth" or
  "arabic", JSON reading requests) into the engine's own types. The HTTP
  API and the CLI both go through this package so they accept exactly the
  same inputs.

JSON SCHEMA:
  {
    "text": "saw 11:11 on the bus",
    "sign": 444,                  // number or string, "12.34" allowed
    "time": "14:44",
    "date": "2026-02-06",         // or a full ISO datetime
    "tz": "+08:00",               // used when date carries no offset
    "name": "John Smith",
    "birth": "1985-07-15",
    "system": "pyth",             // pythagorean, chaldean, abjad or an alias
    "today": "2026-10-19"
  }

STRICT VS LENIENT:
  Structural fields (system, tz, the JSON itself) are validated here and
  fail the request. Content fields (text, sign, time, date, birth, today)
  pass through untouched; reading.Read degrades them per facet.

USAGE:
  f := factory.NewRequestFactory(numerology.Pythagorean, 0)
  in, err := f.ParseRequest(body)
  r := reading.Read(in)

SEE ALSO:
  - reading/reader.go: Read and the Input it consumes
  - numerology/tables.go: System and LetterTable
*/
package factory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
	"github.com/warp/fc60/reading"
)

// ErrInvalidRequest is returned when a request body is not valid JSON or has
// a field of the wrong shape.
var ErrInvalidRequest = errors.New("invalid request")

// =============================================================================
// SYSTEM TAGS
// =============================================================================

var systemAliases = map[string]numerology.System{
	"pythagorean": numerology.Pythagorean,
	"pyth":        numerology.Pythagorean,
	"western":     numerology.Pythagorean,
	"chaldean":    numerology.Chaldean,
	"chal":        numerology.Chaldean,
	"abjad":       numerology.Abjad,
	"arabic":      numerology.Abjad,
	"persian":     numerology.Abjad,
}

// NormalizeSystem resolves a tag or alias, case-insensitively, to a System.
func NormalizeSystem(tag string) (numerology.System, error) {
	s, ok := systemAliases[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return "", fmt.Errorf("%w: %q", numerology.ErrUnknownSystem, tag)
	}
	return s, nil
}

// ParseSystem resolves a tag or alias to its letter table.
func ParseSystem(tag string) (numerology.LetterTable, error) {
	s, err := NormalizeSystem(tag)
	if err != nil {
		return nil, err
	}
	return numerology.TableFor(s)
}

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ReadingRequestJSON is the JSON representation of a reading request.
type ReadingRequestJSON struct {
	Text   string          `json:"text,omitempty"`
	Sign   json.RawMessage `json:"sign,omitempty"` // number or string
	Time   string          `json:"time,omitempty"`
	Date   string          `json:"date,omitempty"`
	TZ     string          `json:"tz,omitempty"`
	Name   string          `json:"name,omitempty"`
	Birth  string          `json:"birth,omitempty"`
	System string          `json:"system,omitempty"`
	Today  string          `json:"today,omitempty"`
}

// =============================================================================
// REQUEST FACTORY
// =============================================================================

// RequestFactory converts JSON requests to reading.Input, filling defaults.
type RequestFactory struct {
	DefaultSystem   numerology.System
	DefaultTZOffset int
}

// NewRequestFactory creates a factory with the given defaults.
func NewRequestFactory(system numerology.System, tzOffsetMinutes int) *RequestFactory {
	return &RequestFactory{DefaultSystem: system, DefaultTZOffset: tzOffsetMinutes}
}

// ParseRequest parses a JSON body into a reading.Input.
func (f *RequestFactory) ParseRequest(body []byte) (reading.Input, error) {
	var rj ReadingRequestJSON
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rj); err != nil {
		return reading.Input{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return f.FromJSON(rj)
}

// FromJSON converts ReadingRequestJSON to reading.Input.
func (f *RequestFactory) FromJSON(rj ReadingRequestJSON) (reading.Input, error) {
	in := reading.Input{
		Text:            rj.Text,
		Time:            rj.Time,
		Date:            rj.Date,
		TZOffsetMinutes: f.DefaultTZOffset,
		Name:            rj.Name,
		Birth:           rj.Birth,
		System:          f.DefaultSystem,
		Today:           rj.Today,
	}

	sign, err := parseSign(rj.Sign)
	if err != nil {
		return reading.Input{}, err
	}
	in.Sign = sign

	if rj.TZ != "" {
		off, err := fc60.ParseOffset(rj.TZ)
		if err != nil {
			return reading.Input{}, fmt.Errorf("tz: %w", err)
		}
		in.TZOffsetMinutes = off
	}

	if rj.System != "" {
		s, err := NormalizeSystem(rj.System)
		if err != nil {
			return reading.Input{}, err
		}
		in.System = s
	}
	return in, nil
}

// ToJSON converts a reading.Input back to its JSON form.
func (f *RequestFactory) ToJSON(in reading.Input) ReadingRequestJSON {
	rj := ReadingRequestJSON{
		Text:   in.Text,
		Time:   in.Time,
		Date:   in.Date,
		Name:   in.Name,
		Birth:  in.Birth,
		System: string(in.System),
		Today:  in.Today,
	}
	if in.Sign != "" {
		rj.Sign, _ = json.Marshal(in.Sign)
	}
	if in.TZOffsetMinutes != 0 {
		rj.TZ = fc60.FormatOffset(in.TZOffsetMinutes)
	}
	return rj
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

// parseSign accepts a JSON number or string and returns its text.
func parseSign(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%w: sign: %v", ErrInvalidRequest, err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%w: sign must be a number or string", ErrInvalidRequest)
	}
	return n.String(), nil
}
