// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import "strings"

// token is one run of a natural sort key: either a digit run compared by
// numeric value or a text run compared lowercased.
type token struct {
	digits bool
	// val holds lowercased text, or a digit run with leading zeros trimmed.
	val string
}

// Key is the natural sort key derived from a string. Keys compare
// lexicographically token by token.
type Key []token

// NaturalKey splits s into alternating text and digit runs, starting with a
// possibly empty text run. Any two keys therefore hold runs of the same kind
// at each shared position. Digit runs sort by numeric value regardless of
// leading zeros or length; text runs sort case-insensitively.
func NaturalKey(s string) Key {
	var key Key
	i := 0
	for {
		j := i
		for j < len(s) && !isDigit(s[j]) {
			j++
		}
		key = append(key, token{val: strings.ToLower(s[i:j])})
		if j == len(s) {
			return key
		}
		i = j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		key = append(key, token{digits: true, val: trimLeadingZeros(s[i:j])})
		i = j
	}
}

// Compare returns -1, 0, or 1 ordering k against other. A key that is a
// strict prefix of another orders first.
func (k Key) Compare(other Key) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		if c := k[i].compare(other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

// NaturalLess reports whether a orders before b under natural sort. Equal
// keys fall back to plain string comparison so the order is total.
func NaturalLess(a, b string) bool {
	if c := NaturalKey(a).Compare(NaturalKey(b)); c != 0 {
		return c < 0
	}
	return a < b
}

func (t token) compare(o token) int {
	if t.digits != o.digits {
		// A digit run orders before a text run.
		if t.digits {
			return -1
		}
		return 1
	}
	if t.digits && len(t.val) != len(o.val) {
		// Zero-trimmed digit runs: the longer run is the larger number.
		if len(t.val) < len(o.val) {
			return -1
		}
		return 1
	}
	return strings.Compare(t.val, o.val)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func trimLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
