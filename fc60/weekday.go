package fc60

import "strconv"

// Weekday carries the planetary metadata of one day of the week.
type Weekday struct {
	Index  int    `json:"index"`
	Token  string `json:"token"`
	Name   string `json:"name"`
	Planet string `json:"planet"`
	Domain string `json:"domain"`
}

// weekdays is indexed by WeekdayFromJDN, Sunday first.
var weekdays = [7]Weekday{
	{0, "SO", "Sunday", "Sun", "Identity, vitality, purpose"},
	{1, "LU", "Monday", "Moon", "Emotions, intuition, home"},
	{2, "MA", "Tuesday", "Mars", "Action, courage, conflict"},
	{3, "ME", "Wednesday", "Mercury", "Communication, learning, trade"},
	{4, "JU", "Thursday", "Jupiter", "Growth, wisdom, abundance"},
	{5, "VE", "Friday", "Venus", "Love, beauty, harmony"},
	{6, "SA", "Saturday", "Saturn", "Discipline, structure, time"},
}

// WeekdayInfo returns the metadata for a weekday index in [0,6].
func WeekdayInfo(idx int) (Weekday, error) {
	if idx < 0 || idx > 6 {
		return Weekday{}, &OutOfRangeError{Quantity: "weekday index", Value: strconv.Itoa(idx), Min: 0, Max: 6}
	}
	return weekdays[idx], nil
}

// WeekdayOf returns the weekday of a Julian Day Number.
func WeekdayOf(jdn int64) Weekday {
	return weekdays[WeekdayFromJDN(jdn)]
}

// WeekdayByToken looks a weekday up by its two-letter token.
func WeekdayByToken(tok string) (Weekday, error) {
	for _, wd := range weekdays {
		if wd.Token == tok {
			return wd, nil
		}
	}
	return Weekday{}, &InvalidTokenError{Token: tok}
}
