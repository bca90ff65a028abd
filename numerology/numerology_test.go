package numerology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func table(t *testing.T, s numerology.System) numerology.LetterTable {
	t.Helper()
	tbl, err := numerology.TableFor(s)
	require.NoError(t, err)
	return tbl
}

func date(t *testing.T, y, m, d int) fc60.CalendarMoment {
	t.Helper()
	moment, err := fc60.NewDate(y, m, d)
	require.NoError(t, err)
	return moment
}

// =============================================================================
// REDUCTION
// =============================================================================

func TestDigitalRoot_Vectors(t *testing.T) {
	cases := map[int]int{
		0: 0, 4: 4, 10: 1, 19: 1,
		11: 11, 22: 22, 33: 33,
		29: 11, 38: 11, 47: 11, // first intermediate sum is a master number
		128: 11,
		44:  8, 55: 1, 66: 3, 77: 5,
		299:        2,
		1234567:    1,
		9999999999: 9,
		-29:        11,
	}
	for in, want := range cases {
		assert.Equal(t, want, numerology.DigitalRoot(in), "DigitalRoot(%d)", in)
	}
}

func TestDigitalRoot_RangeProperty(t *testing.T) {
	for n := 1; n <= 200000; n++ {
		require.True(t, numerology.IsProfileValue(numerology.DigitalRoot(n)), "n=%d", n)
	}
}

func TestDigitSum(t *testing.T) {
	assert.Equal(t, 19, numerology.DigitSum(1990))
	assert.Equal(t, 10, numerology.DigitSum(-2008))
	assert.Equal(t, 0, numerology.DigitSum(0))
}

// =============================================================================
// TABLES
// =============================================================================

func TestTableFor_Unknown(t *testing.T) {
	_, err := numerology.TableFor("kabbalah")
	assert.ErrorIs(t, err, numerology.ErrUnknownSystem)
}

func TestPythagorean_Cycles1To9(t *testing.T) {
	tbl := table(t, numerology.Pythagorean)
	assert.Equal(t, 1, tbl.Value('A'))
	assert.Equal(t, 9, tbl.Value('I'))
	assert.Equal(t, 1, tbl.Value('J'))
	assert.Equal(t, 1, tbl.Value('S'))
	assert.Equal(t, 8, tbl.Value('Z'))
	assert.Equal(t, 0, tbl.Value('1'))
	assert.True(t, tbl.IsVowel('E'))
	assert.False(t, tbl.IsVowel('Y'))
}

func TestChaldean_NeverAssignsNine(t *testing.T) {
	tbl := table(t, numerology.Chaldean)
	for r := 'A'; r <= 'Z'; r++ {
		v := tbl.Value(r)
		assert.True(t, v >= 1 && v <= 8, "%c -> %d", r, v)
	}
	assert.Equal(t, 8, tbl.Value('F'))
	assert.Equal(t, 7, tbl.Value('O'))
}

func TestAbjad_LongVowels(t *testing.T) {
	tbl := table(t, numerology.Abjad)
	for _, r := range "اآأإوؤيیى" {
		assert.True(t, tbl.IsVowel(r), "%c", r)
	}
	assert.False(t, tbl.IsVowel('م'))
	assert.Equal(t, 1000, tbl.Value('غ'))
	assert.Equal(t, 10, tbl.Value('ی'))
	assert.False(t, tbl.Has('A'))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "JOSE", numerology.NormalizeName("José"))
	assert.Equal(t, "محمد", numerology.NormalizeName("مُحَمَّد"))
}

// =============================================================================
// NAME NUMBERS
// =============================================================================

func TestNameNumbers_Pythagorean(t *testing.T) {
	tbl := table(t, numerology.Pythagorean)

	expr, err := numerology.Expression("John Smith", tbl)
	require.NoError(t, err)
	assert.Equal(t, 8, expr)

	soul, err := numerology.SoulUrge("John Smith", tbl)
	require.NoError(t, err)
	assert.Equal(t, 6, soul)

	// Consonants sum to 29, which stops at master 11.
	pers, err := numerology.Personality("John Smith", tbl)
	require.NoError(t, err)
	assert.Equal(t, 11, pers)

	// Accents are stripped; E + O = 11 is kept as a master number.
	soul, err = numerology.SoulUrge("José", tbl)
	require.NoError(t, err)
	assert.Equal(t, 11, soul)
}

func TestNameNumbers_Chaldean(t *testing.T) {
	tbl := table(t, numerology.Chaldean)
	expr, _ := numerology.Expression("JOHN SMITH", tbl)
	soul, _ := numerology.SoulUrge("JOHN SMITH", tbl)
	pers, _ := numerology.Personality("JOHN SMITH", tbl)
	assert.Equal(t, []int{8, 8, 9}, []int{expr, soul, pers})
}

func TestNameNumbers_Abjad(t *testing.T) {
	tbl := table(t, numerology.Abjad)

	expr, err := numerology.Expression("علي", tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, expr)
	soul, _ := numerology.SoulUrge("علي", tbl)
	assert.Equal(t, 1, soul)
	pers, _ := numerology.Personality("علي", tbl)
	assert.Equal(t, 1, pers)

	expr, _ = numerology.Expression("فاطمة", tbl)
	assert.Equal(t, 9, expr)

	// Harakat do not change the value.
	a, _ := numerology.Expression("محمد", tbl)
	b, _ := numerology.Expression("مُحَمَّد", tbl)
	assert.Equal(t, 11, a)
	assert.Equal(t, a, b)
}

func TestNameNumbers_NoLetters(t *testing.T) {
	tbl := table(t, numerology.Pythagorean)
	_, err := numerology.Expression("1234 !!", tbl)
	assert.ErrorIs(t, err, numerology.ErrNoLetters)

	_, err = numerology.SoulUrge("Bryn", tbl)
	assert.ErrorIs(t, err, numerology.ErrNoLetters)

	_, err = numerology.Expression("John", table(t, numerology.Abjad))
	assert.ErrorIs(t, err, numerology.ErrNoLetters)
}

// =============================================================================
// DATE NUMBERS
// =============================================================================

func TestLifePath(t *testing.T) {
	cases := []struct {
		in   numerology.LifePathInput
		want int
	}{
		{numerology.LifePathInput{Day: 6, Month: 2, Year: 2026}, 9},
		{numerology.LifePathInput{Day: 29, Month: 11, Year: 1992}, 7},
		{numerology.LifePathInput{Day: 11, Month: 11, Year: 1990}, 5},
		{numerology.LifePathInput{Day: 15, Month: 7, Year: 1985}, 9},
	}
	for _, tc := range cases {
		got, err := numerology.LifePath(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%+v", tc.in)
	}
}

func TestLifePath_ReducesComponentsIndependently(t *testing.T) {
	// The raw digits 1+9+2+2+0+0+8 sum to 22, a master number. Reducing each
	// component first gives 1 + 2 + 1 = 4.
	got, err := numerology.LifePath(numerology.LifePathInput{Day: 19, Month: 2, Year: 2008})
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Equal(t, 22, numerology.DigitalRoot(1+9+2+2+0+0+8))
}

func TestLifePath_InvalidDate(t *testing.T) {
	_, err := numerology.LifePath(numerology.LifePathInput{Day: 2026, Month: 2, Year: 6})
	assert.ErrorIs(t, err, fc60.ErrInvalidDate)
}

func TestPersonalCycle_Cascade(t *testing.T) {
	py := numerology.PersonalYear(numerology.PersonalYearInput{BirthDay: 6, BirthMonth: 2, Year: 2026})
	assert.Equal(t, 9, py)
	pm := numerology.PersonalMonth(py, 10)
	assert.Equal(t, 1, pm)
	assert.Equal(t, 2, numerology.PersonalDay(pm, 19))

	c := numerology.Cycle(date(t, 1990, 2, 6), date(t, 2026, 10, 19))
	assert.Equal(t, numerology.PersonalCycle{Year: 9, Month: 1, Day: 2}, c)
}

// =============================================================================
// PROFILE
// =============================================================================

func TestProfile(t *testing.T) {
	p, err := numerology.Profile(numerology.ProfileInput{
		Name:  "John Smith",
		Birth: date(t, 1985, 7, 15),
		Today: date(t, 2026, 10, 19),
		Table: table(t, numerology.Pythagorean),
	})
	require.NoError(t, err)

	assert.Equal(t, numerology.Pythagorean, p.System)
	assert.Equal(t, 9, p.LifePath)
	assert.Equal(t, 8, p.Expression)
	assert.Equal(t, 6, p.SoulUrge)
	assert.Equal(t, 11, p.Personality)
	// 7 + 6 + 1 = 14 -> 5; 5 + 10 = 15 -> 6; 6 + 19 = 25 -> 7
	assert.Equal(t, 5, p.PersonalYear)
	assert.Equal(t, 6, p.PersonalMonth)
	assert.Equal(t, 7, p.PersonalDay)

	for _, v := range []int{p.LifePath, p.Expression, p.SoulUrge, p.Personality, p.PersonalYear, p.PersonalMonth, p.PersonalDay} {
		assert.True(t, numerology.IsProfileValue(v))
	}
}

func TestProfile_Errors(t *testing.T) {
	_, err := numerology.Profile(numerology.ProfileInput{Name: "Ann", Birth: date(t, 1990, 1, 1)})
	assert.ErrorIs(t, err, numerology.ErrUnknownSystem)

	_, err = numerology.Profile(numerology.ProfileInput{Name: "Ann", Table: table(t, numerology.Pythagorean)})
	assert.ErrorIs(t, err, fc60.ErrInvalidDate)

	_, err = numerology.Profile(numerology.ProfileInput{Name: "Brr", Birth: date(t, 1990, 1, 1), Table: table(t, numerology.Pythagorean)})
	assert.ErrorIs(t, err, numerology.ErrNoLetters)
}

func TestMeaning(t *testing.T) {
	assert.NotEmpty(t, numerology.Meaning(22))
	assert.Empty(t, numerology.Meaning(10))
}

func TestSystems_ReturnsCopy(t *testing.T) {
	s := numerology.Systems()
	require.Len(t, s, 3)
	s[0] = "tarot"

	assert.Equal(t, []numerology.System{numerology.Pythagorean, numerology.Chaldean, numerology.Abjad}, numerology.Systems())
	for _, sys := range numerology.Systems() {
		_, err := numerology.TableFor(sys)
		assert.NoError(t, err, sys)
	}
}
