package reading

import (
	"github.com/warp/fc60/fc60"
)

// Zodiac is a Western tropical sun sign.
type Zodiac struct {
	Sign    string `json:"sign"`
	Symbol  string `json:"symbol"`
	Element string `json:"element"`
	Planet  string `json:"planet"`
}

type zodiacRange struct {
	month, day int // first day of the sign
	Zodiac
}

// zodiacSigns is ordered by start date within the calendar year. Capricorn
// appears twice because it spans the year boundary.
var zodiacSigns = []zodiacRange{
	{1, 1, Zodiac{"Capricorn", "♑", "Earth", "Saturn"}},
	{1, 20, Zodiac{"Aquarius", "♒", "Air", "Uranus"}},
	{2, 19, Zodiac{"Pisces", "♓", "Water", "Neptune"}},
	{3, 21, Zodiac{"Aries", "♈", "Fire", "Mars"}},
	{4, 20, Zodiac{"Taurus", "♉", "Earth", "Venus"}},
	{5, 21, Zodiac{"Gemini", "♊", "Air", "Mercury"}},
	{6, 21, Zodiac{"Cancer", "♋", "Water", "Moon"}},
	{7, 23, Zodiac{"Leo", "♌", "Fire", "Sun"}},
	{8, 23, Zodiac{"Virgo", "♍", "Earth", "Mercury"}},
	{9, 23, Zodiac{"Libra", "♎", "Air", "Venus"}},
	{10, 23, Zodiac{"Scorpio", "♏", "Water", "Pluto"}},
	{11, 22, Zodiac{"Sagittarius", "♐", "Fire", "Jupiter"}},
	{12, 22, Zodiac{"Capricorn", "♑", "Earth", "Saturn"}},
}

// ZodiacFor returns the sun sign for a month and day. February 29 is accepted.
func ZodiacFor(month, day int) (Zodiac, error) {
	if month < 1 || month > 12 {
		return Zodiac{}, &fc60.InvalidDateError{Field: "month", Value: month}
	}
	if day < 1 || day > fc60.DaysInMonth(2000, month) {
		return Zodiac{}, &fc60.InvalidDateError{Field: "day", Value: day}
	}
	sign := zodiacSigns[0].Zodiac
	for _, r := range zodiacSigns {
		if month > r.month || (month == r.month && day >= r.day) {
			sign = r.Zodiac
		}
	}
	return sign, nil
}
