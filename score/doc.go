// Package score computes a non-negative suitability score for pairing a
// driver with a shipment address. It is pure string arithmetic — no I/O,
// no external state — and feeds matrixbuilder, which in turn feeds every
// solver variant.
//
// Algorithm (spec-defined, not open to reinterpretation):
//
//  1. Derive the street name from the address: trim, split on whitespace;
//     drop the leading house-number token when more than one token is
//     present; strip a trailing "Suite <token>" or "Apt[.] <token>" suffix.
//  2. Let Ls = len(street name), Ld = len(driver name).
//  3. Base = 1.5 * vowelCount(driver) if Ls is even, else consonantCount(driver).
//  4. If gcd(Ls, Ld) > 1, multiply Base by 1.5.
//
// Vowels are {a,e,i,o,u}, case-insensitive. Non-letters are ignored by both
// the vowel and consonant counts.
package score
