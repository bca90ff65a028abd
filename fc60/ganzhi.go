package fc60

// =============================================================================
// GANZHI - Sexagenary cycle (10 heavenly stems x 12 earthly branches)
// =============================================================================

// stems are the ten heavenly stem tokens, Jia first.
var stems = [10]string{"JA", "YI", "BI", "DI", "WU", "JI", "GE", "XI", "RE", "GU"}

// stemNames are the romanised stem names matching stems.
var stemNames = [10]string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}

const (
	stemCycle   = 10
	branchCycle = 12
	ganzhiCycle = 60
)

// GanzhiPair is one position of the sexagenary cycle.
type GanzhiPair struct {
	Stem   int `json:"stem_index"`
	Branch int `json:"branch_index"`
}

// GanzhiYear anchors the cycle at year 4 CE (Jia-Rat).
func GanzhiYear(year int) GanzhiPair {
	return GanzhiPair{
		Stem:   floorMod(year-4, stemCycle),
		Branch: floorMod(year-4, branchCycle),
	}
}

// GanzhiDay returns the day pillar of a Julian Day Number.
func GanzhiDay(jdn int64) GanzhiPair {
	idx := int(floorMod64(jdn+49, ganzhiCycle))
	return GanzhiPair{Stem: idx % stemCycle, Branch: idx % branchCycle}
}

// GanzhiHour returns the hour pillar. The hour stem depends on the day stem.
func GanzhiHour(hour, dayStem int) GanzhiPair {
	branch := floorMod((hour+1)/2, branchCycle)
	return GanzhiPair{
		Stem:   floorMod(dayStem*2+branch, stemCycle),
		Branch: branch,
	}
}

// Token renders stem + branch, e.g. "BIHO".
func (g GanzhiPair) Token() string { return stems[g.Stem] + animals[g.Branch] }

// Element is the five-phase element of the stem.
func (g GanzhiPair) Element() string { return elementNames[g.Stem/2] }

// Polarity is "Yang" for even stems and "Yin" for odd stems.
func (g GanzhiPair) Polarity() string {
	if g.Stem%2 == 0 {
		return "Yang"
	}
	return "Yin"
}

// Name renders element + animal, e.g. "Fire Horse".
func (g GanzhiPair) Name() string { return g.Element() + " " + animalNames[g.Branch] }

// Chinese renders the romanised stem-branch pair, e.g. "Bing Horse".
func (g GanzhiPair) Chinese() string { return stemNames[g.Stem] + " " + animalNames[g.Branch] }

// CycleIndex returns the position in the 60 cycle (Jia-Rat is 0), or -1 when
// stem and branch parity differ and the pair never occurs.
func (g GanzhiPair) CycleIndex() int {
	for i := 0; i < ganzhiCycle; i++ {
		if i%stemCycle == g.Stem && i%branchCycle == g.Branch {
			return i
		}
	}
	return -1
}

// ParseGanzhi is the inverse of Token.
func ParseGanzhi(tok string) (GanzhiPair, error) {
	if len(tok) != 4 {
		return GanzhiPair{}, &InvalidTokenError{Token: tok}
	}
	g := GanzhiPair{Stem: -1, Branch: -1}
	for i, s := range stems {
		if s == tok[:2] {
			g.Stem = i
		}
	}
	for i, a := range animals {
		if a == tok[2:] {
			g.Branch = i
		}
	}
	if g.Stem < 0 || g.Branch < 0 || g.CycleIndex() < 0 {
		return GanzhiPair{}, &InvalidTokenError{Token: tok}
	}
	return g, nil
}
