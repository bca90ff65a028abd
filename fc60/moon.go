package fc60

import "math"

// =============================================================================
// MOON - Synodic age, phase bucket and illumination
// =============================================================================

const (
	// MoonRefJDN is a reference new moon.
	MoonRefJDN = 2451550.1

	// SynodicMonth is the mean length of a lunation in days.
	SynodicMonth = 29.530588853
)

// moonBoundaries are almanac-matched upper bounds (exclusive) of each phase
// bucket. They are intentionally non-uniform.
var moonBoundaries = [8]float64{1.85, 7.38, 11.07, 14.77, 16.61, 22.14, 25.83, 29.53}

// MoonPhaseInfo names one of the eight phase buckets.
type MoonPhaseInfo struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Meaning string `json:"meaning"`
}

var moonPhases = [8]MoonPhaseInfo{
	{0, "New Moon", "🌑", "Beginnings, intention, rest"},
	{1, "Waxing Crescent", "🌒", "Emergence, hope, first steps"},
	{2, "First Quarter", "🌓", "Decision, effort, resistance"},
	{3, "Waxing Gibbous", "🌔", "Refinement, patience, preparation"},
	{4, "Full Moon", "🌕", "Culmination, clarity, release"},
	{5, "Waning Gibbous", "🌖", "Gratitude, sharing, teaching"},
	{6, "Last Quarter", "🌗", "Letting go, forgiveness, review"},
	{7, "Waning Crescent", "🌘", "Surrender, recuperation, closure"},
}

// MoonPhase is the state of the moon for one day.
type MoonPhase struct {
	PhaseIndex      int     `json:"phase_index"`
	AgeDays         float64 `json:"age_days"`
	IlluminationPct float64 `json:"illumination_pct"`
}

// Info returns the name and meaning of the phase bucket.
func (p MoonPhase) Info() MoonPhaseInfo { return moonPhases[p.PhaseIndex] }

// Rounded fixes age to 2 and illumination to 1 decimal place.
func (p MoonPhase) Rounded() MoonPhase {
	p.AgeDays = round(p.AgeDays, 2)
	p.IlluminationPct = round(p.IlluminationPct, 1)
	return p
}

// MoonAge returns days since the last reference new moon, in [0, SynodicMonth).
func MoonAge(jd float64) float64 {
	age := math.Mod(jd-MoonRefJDN, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	if age >= SynodicMonth {
		age = 0
	}
	return age
}

// MoonPhaseIndex selects the first bucket whose boundary exceeds age.
func MoonPhaseIndex(age float64) int {
	for i, b := range moonBoundaries {
		if age < b {
			return i
		}
	}
	return len(moonBoundaries) - 1
}

// MoonIllumination returns the lit fraction of the disc as a percentage.
func MoonIllumination(age float64) float64 {
	return 50 * (1 - math.Cos(2*math.Pi*age/SynodicMonth))
}

// Moon computes the phase for a Julian Day Number.
func Moon(jdn int64) MoonPhase {
	age := MoonAge(float64(jdn))
	return MoonPhase{
		PhaseIndex:      MoonPhaseIndex(age),
		AgeDays:         age,
		IlluminationPct: MoonIllumination(age),
	}
}

// MoonPhaseByIndex returns the bucket metadata for idx in [0,7].
func MoonPhaseByIndex(idx int) (MoonPhaseInfo, bool) {
	if idx < 0 || idx >= len(moonPhases) {
		return MoonPhaseInfo{}, false
	}
	return moonPhases[idx], true
}
