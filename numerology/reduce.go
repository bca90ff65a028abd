package numerology

// =============================================================================
// REDUCTION
// =============================================================================

// DigitSum adds the decimal digits of |n|.
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// IsMaster reports whether n is 11, 22 or 33.
func IsMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// DigitalRoot sums digits repeatedly until a single digit remains, stopping
// early at any master number along the way. DigitalRoot(0) is 0; every
// positive input lands in {1..9, 11, 22, 33}.
func DigitalRoot(n int) int {
	if n < 0 {
		n = -n
	}
	for !IsMaster(n) && n > 9 {
		n = DigitSum(n)
	}
	return n
}

// IsProfileValue reports whether n is a legal profile number.
func IsProfileValue(n int) bool {
	return (n >= 1 && n <= 9) || IsMaster(n)
}
