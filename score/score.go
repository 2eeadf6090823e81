package score

import "unicode"

// Score computes the suitability score for pairing driverName with a
// shipment at address. It is total, well-defined over all strings, never an
// error: an empty driver name yields zero, while an empty address is scored
// as a street of length 0 (even, and gcd(0, Ld) == Ld).
func Score(address, driverName string) float64 {
	street := streetName(address)
	streetLen := len([]rune(street))
	driverLen := len([]rune(driverName))

	vowels, consonants := letterCounts(driverName)

	var base float64
	if streetLen%2 == 0 {
		base = 1.5 * float64(vowels)
	} else {
		base = float64(consonants)
	}

	if gcd(streetLen, driverLen) > 1 {
		base *= 1.5
	}

	return base
}

// letterCounts returns the vowel and consonant counts of s. Vowels are
// {a,e,i,o,u}, case-insensitive; consonants are letters not in that set;
// non-letters contribute to neither.
func letterCounts(s string) (vowels, consonants int) {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			vowels++
		default:
			consonants++
		}
	}
	return vowels, consonants
}

// gcd returns the greatest common divisor of a and b, both treated as
// non-negative. gcd(0, x) == x by convention, matching Euclid's algorithm.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
