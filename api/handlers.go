/*
handlers.go - HTTP API handlers for the FC60 engine

PURPOSE:
  Exposes the encoding, numerology and pattern engines via REST API.
  Handles HTTP request/response and JSON serialization, and delegates
  everything else to the engine packages. The handlers hold no state.

ENDPOINTS:
  Codec:
    GET    /api/stamp                  Encode a moment (?at=&tz=&date_only=)
    GET    /api/stamp/decode           Decode a stamp string (?s=)
    GET    /api/base60/encode          Integer to base-60 (?n=)
    GET    /api/base60/decode          Base-60 to integer (?s=)

  Calendar:
    GET    /api/jdn                    Date to Julian Day Number (?date=)
    GET    /api/jdn/{jdn}              Julian Day Number to date
    GET    /api/moon                   Moon phase for a date (?date=)
    GET    /api/ganzhi                 Sexagenary year/day (?year=&date=)

  Readings:
    POST   /api/numerology             Numerology profile
    POST   /api/synchronicities        Pattern scan over numbers
    POST   /api/readings               Full sign reading

  Ops:
    GET    /api/health                 Liveness
    GET    /api/selftest               Embedded regression vectors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid token, date, range, system or request body
  - 413: Request body over 64 KiB
  - 422: A name with no letters the chosen system can score
  - 500: Internal errors, or a failing self-test
  POST /api/readings never fails on content; bad facets come back as
  warnings inside a 200 response.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/fc60/factory"
	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
	"github.com/warp/fc60/reading"
	"github.com/warp/fc60/synchro"
)

// maxBodyBytes caps request bodies; readings are small.
const maxBodyBytes = 1 << 16

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the request defaults for HTTP handlers.
type Handler struct {
	Requests *factory.RequestFactory

	// now is the clock used when /api/stamp is called without ?at=.
	now func() time.Time
}

// NewHandler creates a handler with the default system and UTC offset.
func NewHandler(system numerology.System, tzOffsetMinutes int) *Handler {
	return &Handler{
		Requests: factory.NewRequestFactory(system, tzOffsetMinutes),
		now:      time.Now,
	}
}

// =============================================================================
// CODEC HANDLERS
// =============================================================================

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stamp encodes a moment. Without ?at= the server clock is used in the
// default offset.
func (h *Handler) Stamp(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offset := h.Requests.DefaultTZOffset
	if tz := q.Get("tz"); tz != "" {
		off, err := fc60.ParseOffset(tz)
		if err != nil {
			writeEngineError(w, "Invalid tz", err)
			return
		}
		offset = off
	}

	var m fc60.CalendarMoment
	var err error
	if at := q.Get("at"); at != "" {
		m, err = fc60.ParseMomentInZone(at, offset)
	} else {
		now := h.now().In(time.FixedZone("", offset*60))
		m, err = fc60.FromTime(now)
	}
	if err != nil {
		writeEngineError(w, "Invalid moment", err)
		return
	}

	var opts []fc60.Option
	if dateOnly, _ := strconv.ParseBool(q.Get("date_only")); dateOnly {
		opts = append(opts, fc60.WithDateOnly())
	}
	enc, err := fc60.Encode(m, opts...)
	if err != nil {
		writeEngineError(w, "Failed to encode", err)
		return
	}
	writeJSON(w, http.StatusOK, enc)
}

// DecodeStamp parses a stamp string back to its fields.
func (h *Handler) DecodeStamp(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("s")
	f, err := fc60.DecodeStamp(s)
	if err != nil {
		writeEngineError(w, "Invalid stamp", err)
		return
	}
	writeJSON(w, http.StatusOK, NewStampFieldsDTO(s, f))
}

// EncodeBase60 renders ?n= in base 60.
func (h *Handler) EncodeBase60(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseInt(r.URL.Query().Get("n"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "n must be a 64-bit integer", err)
		return
	}
	writeJSON(w, http.StatusOK, NewBase60DTO(n))
}

// DecodeBase60 parses ?s= as a base-60 string.
func (h *Handler) DecodeBase60(w http.ResponseWriter, r *http.Request) {
	n, err := fc60.DecodeBase60(r.URL.Query().Get("s"))
	if err != nil {
		writeEngineError(w, "Invalid base-60 string", err)
		return
	}
	writeJSON(w, http.StatusOK, NewBase60DTO(n))
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// DateToJDN converts ?date= to its day counts.
func (h *Handler) DateToJDN(w http.ResponseWriter, r *http.Request) {
	m, ok := parseDateParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, NewJDNDTO(m))
}

// JDNToDate converts a Julian Day Number path parameter to a date.
func (h *Handler) JDNToDate(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "jdn")
	jdn, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "jdn must be an integer", err)
		return
	}
	m, err := fc60.DateFromJDN(jdn)
	if err != nil {
		writeEngineError(w, "Invalid jdn", err)
		return
	}
	writeJSON(w, http.StatusOK, NewJDNDTO(m))
}

// Moon returns the phase for ?date=.
func (h *Handler) Moon(w http.ResponseWriter, r *http.Request) {
	m, ok := parseDateParam(w, r)
	if !ok {
		return
	}
	p := fc60.Moon(m.JDN()).Rounded()
	info := p.Info()
	writeJSON(w, http.StatusOK, MoonDTO{
		Date:            m.DateString(),
		PhaseIndex:      p.PhaseIndex,
		Name:            info.Name,
		Emoji:           info.Emoji,
		Meaning:         info.Meaning,
		AgeDays:         p.AgeDays,
		IlluminationPct: p.IlluminationPct,
	})
}

// Ganzhi returns the year pillar for ?year= and the day pillar for ?date=.
// When only a date is given its year is used.
func (h *Handler) Ganzhi(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp := GanzhiResponse{}

	if q.Get("date") != "" {
		m, ok := parseDateParam(w, r)
		if !ok {
			return
		}
		day := ganzhiDTO(fc60.GanzhiDay(m.JDN()))
		resp.Day = &day
		resp.Year = m.Year()
	}
	if ys := q.Get("year"); ys != "" {
		year, err := strconv.Atoi(ys)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer", err)
			return
		}
		resp.Year = year
	} else if resp.Day == nil {
		writeError(w, http.StatusBadRequest, "year or date is required", nil)
		return
	}

	resp.Pair = ganzhiDTO(fc60.GanzhiYear(resp.Year))
	writeJSON(w, http.StatusOK, resp)
}

func ganzhiDTO(p fc60.GanzhiPair) GanzhiDTO {
	return GanzhiDTO{
		Token:      p.Token(),
		Name:       p.Name(),
		Chinese:    p.Chinese(),
		Polarity:   p.Polarity(),
		CycleIndex: p.CycleIndex(),
	}
}

// parseDateParam reads ?date= and writes a 400 on failure.
func parseDateParam(w http.ResponseWriter, r *http.Request) (fc60.CalendarMoment, bool) {
	s := r.URL.Query().Get("date")
	if s == "" {
		writeError(w, http.StatusBadRequest, "date is required", nil)
		return fc60.CalendarMoment{}, false
	}
	m, err := fc60.ParseMoment(s)
	if err != nil {
		writeEngineError(w, "Invalid date", err)
		return fc60.CalendarMoment{}, false
	}
	return m, true
}

// =============================================================================
// READING HANDLERS
// =============================================================================

// Numerology computes a profile for a name and birth date.
func (h *Handler) Numerology(w http.ResponseWriter, r *http.Request) {
	var req NumerologyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	system := h.Requests.DefaultSystem
	if req.System != "" {
		s, err := factory.NormalizeSystem(req.System)
		if err != nil {
			writeEngineError(w, "Invalid system", err)
			return
		}
		system = s
	}
	table, err := numerology.TableFor(system)
	if err != nil {
		writeEngineError(w, "Invalid system", err)
		return
	}

	birth, err := fc60.ParseMoment(req.Birth)
	if err != nil {
		writeEngineError(w, "Invalid birth date", err)
		return
	}
	var today fc60.CalendarMoment
	if req.Today != "" {
		if today, err = fc60.ParseMoment(req.Today); err != nil {
			writeEngineError(w, "Invalid today", err)
			return
		}
	}

	p, err := numerology.Profile(numerology.ProfileInput{Name: req.Name, Birth: birth, Today: today, Table: table})
	if err != nil {
		writeEngineError(w, "Failed to compute profile", err)
		return
	}

	meanings := make(map[string]string)
	for _, n := range []int{p.LifePath, p.Expression, p.SoulUrge, p.Personality, p.PersonalYear, p.PersonalMonth, p.PersonalDay} {
		meanings[strconv.Itoa(n)] = numerology.Meaning(n)
	}
	writeJSON(w, http.StatusOK, NumerologyResponse{NumerologyProfile: p, Meanings: meanings})
}

// Synchronicities scans numbers and text for patterns.
func (h *Handler) Synchronicities(w http.ResponseWriter, r *http.Request) {
	var req SynchronicityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	numbers := append([]int{}, req.Numbers...)
	numbers = append(numbers, reading.ExtractNumbers(req.Text)...)
	if err := reading.CheckNumbers(numbers); err != nil {
		writeEngineError(w, "Too many numbers", err)
		return
	}
	writeJSON(w, http.StatusOK, SynchronicityResponse{Numbers: numbers, Matches: synchro.Detect(numbers)})
}

// Reading runs the full sign reader.
func (h *Handler) Reading(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeEngineError(w, "Failed to read body", err)
		return
	}
	in, err := h.Requests.ParseRequest(body)
	if err != nil {
		writeEngineError(w, "Invalid reading request", err)
		return
	}
	writeJSON(w, http.StatusOK, reading.Read(in))
}

// SelfTest recomputes the embedded regression vectors.
func (h *Handler) SelfTest(w http.ResponseWriter, r *http.Request) {
	resp := fc60.RunSelfTest()
	status := http.StatusOK
	if !resp.OK() {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, resp)
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Invalid JSON", err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError picks the status from the error chain.
func writeEngineError(w http.ResponseWriter, message string, err error) {
	writeError(w, statusFor(err), message, err)
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, numerology.ErrNoLetters):
		return http.StatusUnprocessableEntity
	case fc60.IsClientError(err),
		errors.Is(err, numerology.ErrUnknownSystem),
		errors.Is(err, factory.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
