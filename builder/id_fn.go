// SPDX-License-Identifier: MIT
// Package: tqc-emu/builder
//
// id_fn.go - deterministic anyon naming schemes.

package builder

import "strconv"

// IDFn names the anyon at a zero-based index. It must be deterministic.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns spreadsheet-style lowercase names: 0→"a", 25→"z",
// 26→"aa". Negative indices fall back to DefaultIDFn.
//
// Complexity: O(log₂₆ idx).
func LetterIDFn(idx int) string {
	if idx < 0 {
		return DefaultIDFn(idx)
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('a'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
