// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package text contains helpers that operate on the runes of a string.
//
// Strings are decoded as UTF-8 before they are examined, so multi-byte
// characters are never split. Invalid byte sequences are treated as
// [utf8.RuneError], following the rules of a string-to-rune-slice
// conversion.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reverse returns a string containing the runes of s in reverse order.
func Reverse(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for i := len(runes) - 1; i >= 0; i-- {
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

// IsPalindrome reports whether s reads the same forwards and backwards.
// The comparison ignores case and any rune that is not a letter or a
// digit. A string with no letters or digits is a palindrome.
func IsPalindrome(s string) bool {
	runes := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// CountVowels returns the number of ASCII vowels (a, e, i, o, u) in s,
// ignoring case.
func CountVowels(s string) int {
	count := 0
	for _, r := range s {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	return count
}
