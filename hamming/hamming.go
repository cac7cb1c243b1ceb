// SPDX-License-Identifier: MIT

package hamming

import "unicode/utf8"

// Adjacent reports whether a and b have equal rune length and differ in
// exactly one rune position. Unequal lengths short-circuit to false; the
// missing tail is never counted as a difference.
// Complexity: O(L) time, O(1) space.
func Adjacent(a, b string) bool {
	// ASCII fast path: equal byte length and no multi-byte runes in play.
	if len(a) == len(b) && isASCII(a) && isASCII(b) {
		diff := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				diff++
				if diff > 1 {
					return false
				}
			}
		}

		return diff == 1
	}

	diff := 0
	for len(a) > 0 && len(b) > 0 {
		ra, na := decode(a)
		rb, nb := decode(b)
		if ra != rb {
			diff++
			if diff > 1 {
				return false
			}
		}
		a, b = a[na:], b[nb:]
	}
	// one word ran out before the other: different lengths
	if len(a) != 0 || len(b) != 0 {
		return false
	}

	return diff == 1
}

// Distance returns the Hamming distance between a and b counted in runes.
// ok is false when the words differ in length.
// Complexity: O(L) time, O(1) space.
func Distance(a, b string) (d int, ok bool) {
	for len(a) > 0 && len(b) > 0 {
		ra, na := decode(a)
		rb, nb := decode(b)
		if ra != rb {
			d++
		}
		a, b = a[na:], b[nb:]
	}
	if len(a) != 0 || len(b) != 0 {
		return 0, false
	}

	return d, true
}

// decode returns the first rune of s and its width. An invalid byte b is
// mapped to -1-b so that distinct invalid bytes never compare equal to each
// other or to any valid rune, including U+FFFD.
func decode(s string) (rune, int) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return -1 - rune(s[0]), 1
	}

	return r, n
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
