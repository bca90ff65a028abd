package fc60

import (
	"strconv"
	"strings"
)

// =============================================================================
// TZ60 - UTC offset as sign + hour token + minute token
// =============================================================================

// EncodeTZ60 renders an offset such as +08:00 as "+OXMT-RAWU".
// The sign is always present; UTC is "+RAWU-RAWU".
func EncodeTZ60(offsetMinutes int) (string, error) {
	if offsetMinutes < -MaxOffsetMinutes || offsetMinutes > MaxOffsetMinutes {
		return "", &OutOfRangeError{Quantity: "tz offset minutes", Value: strconv.Itoa(offsetMinutes), Min: -MaxOffsetMinutes, Max: MaxOffsetMinutes}
	}
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return sign + Token60(offsetMinutes/60) + separator + Token60(offsetMinutes%60), nil
}

// DecodeTZ60 is the inverse of EncodeTZ60.
func DecodeTZ60(s string) (int, error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, &InvalidTokenError{Token: s}
	}
	parts := strings.Split(s[1:], separator)
	if len(parts) != 2 {
		return 0, &InvalidTokenError{Token: s}
	}
	h, err := Digit60(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := Digit60(parts[1])
	if err != nil {
		return 0, err
	}
	off := h*60 + m
	if s[0] == '-' {
		off = -off
	}
	if off < -MaxOffsetMinutes || off > MaxOffsetMinutes {
		return 0, &OutOfRangeError{Quantity: "tz offset minutes", Value: strconv.Itoa(off), Min: -MaxOffsetMinutes, Max: MaxOffsetMinutes}
	}
	return off, nil
}
