package fc60

import "fmt"

// =============================================================================
// REGRESSION VECTORS - Literal authoritative outputs
// =============================================================================
// These values pin behaviour where the general formulas could be read more
// than one way (floored vs truncating division, token order, half glyphs).

// JDNVector pins one Gregorian date to its Julian Day Number.
type JDNVector struct {
	Year, Month, Day int
	JDN              int64
	WeekdayToken     string
}

// TokenVector pins one integer to its token.
type TokenVector struct {
	N     int
	Token string
}

// GanzhiVector pins a year to its stem/branch tokens.
type GanzhiVector struct {
	Year   int
	Stem   string
	Branch string
	Name   string
}

// StampVector pins EncodeFC60 arguments to the stamp they produce.
type StampVector struct {
	Year, Month, Day, Hour, Minute, Second, TZHour, TZMinute int
	Stamp                                                    string
	Chk                                                      string
}

// VectorSet groups every embedded vector.
type VectorSet struct {
	JDN    []JDNVector
	Tokens []TokenVector
	Ganzhi []GanzhiVector
	Stamps []StampVector
}

// Vectors returns a fresh copy of the embedded regression vectors.
func Vectors() VectorSet {
	return VectorSet{
		JDN: []JDNVector{
			{2000, 1, 1, 2451545, "SA"},
			{2026, 2, 6, 2461078, "VE"},
			{1970, 1, 1, 2440588, "JU"},
			{1, 1, 1, 1721426, "LU"},
			{-4713, 11, 24, 0, "LU"},
		},
		Tokens: []TokenVector{
			{0, "RAWU"},
			{6, "OXFI"},
			{13, "TIMT"},
			{15, "RUWU"},
			{59, "PIWA"},
		},
		Ganzhi: []GanzhiVector{
			{2024, "JA", "DR", "Wood Dragon"},
			{2026, "BI", "HO", "Fire Horse"},
			{2000, "GE", "DR", "Metal Dragon"},
			{4, "JA", "RA", "Wood Rat"},
		},
		Stamps: []StampVector{
			{2026, 2, 6, 1, 15, 0, 8, 0, "VE-OX-OXFI ☀OX-RUWU-RAWU", "TIMT"},
		},
	}
}

// VectorResult reports one regression vector check.
type VectorResult struct {
	Name string `json:"name"`
	Want string `json:"want"`
	Got  string `json:"got"`
	Pass bool   `json:"pass"`
}

// SelfTestSummary tallies one SelfTest run.
type SelfTestSummary struct {
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Results []VectorResult `json:"results"`
}

// OK reports whether every vector passed.
func (s SelfTestSummary) OK() bool { return s.Failed == 0 }

// RunSelfTest runs SelfTest and counts the outcomes.
func RunSelfTest() SelfTestSummary {
	s := SelfTestSummary{Results: SelfTest()}
	for _, res := range s.Results {
		if res.Pass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// SelfTest recomputes every vector and reports each result.
func SelfTest() []VectorResult {
	v := Vectors()
	var results []VectorResult
	add := func(name, want, got string) {
		results = append(results, VectorResult{Name: name, Want: want, Got: got, Pass: want == got})
	}

	for _, jv := range v.JDN {
		name := fmt.Sprintf("jdn(%d-%02d-%02d)", jv.Year, jv.Month, jv.Day)
		jdn := GregorianToJDN(jv.Year, jv.Month, jv.Day)
		add(name, fmt.Sprint(jv.JDN), fmt.Sprint(jdn))

		y, m, d := JDNToGregorian(jv.JDN)
		add("gregorian("+fmt.Sprint(jv.JDN)+")",
			fmt.Sprintf("%d-%02d-%02d", jv.Year, jv.Month, jv.Day),
			fmt.Sprintf("%d-%02d-%02d", y, m, d))
		add("weekday("+fmt.Sprint(jv.JDN)+")", jv.WeekdayToken, WeekdayOf(jv.JDN).Token)
	}
	for _, tv := range v.Tokens {
		add(fmt.Sprintf("token60(%d)", tv.N), tv.Token, Token60(tv.N))
	}
	for _, gv := range v.Ganzhi {
		gz := GanzhiYear(gv.Year)
		add(fmt.Sprintf("ganzhi(%d)", gv.Year), gv.Stem+gv.Branch+" "+gv.Name, gz.Token()+" "+gz.Name())
	}
	for _, sv := range v.Stamps {
		name := fmt.Sprintf("stamp(%d-%02d-%02d %02d:%02d:%02d)", sv.Year, sv.Month, sv.Day, sv.Hour, sv.Minute, sv.Second)
		enc, err := EncodeFC60(sv.Year, sv.Month, sv.Day, sv.Hour, sv.Minute, sv.Second, sv.TZHour, sv.TZMinute)
		if err != nil {
			add(name, sv.Stamp, err.Error())
			continue
		}
		add(name, sv.Stamp, enc.Stamp)
		add(name+" chk", sv.Chk, enc.Chk)
	}
	return results
}
