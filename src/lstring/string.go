// Package lstring is a small collection of string utilities.
package lstring

import (
	"strings"
)

// special lists the bytes that keep a word from being printed bare.
const special = " \t\n\r#;&|^$=`'{}()<>\\*?[~"

// Quote renders word so that reading it back yields the same literal text. Words
// without special characters are returned unchanged, anything else is wrapped in
// single quotes with inner quotes doubled.
func Quote(word string) string {
	if word != "" && !strings.ContainsAny(word, special) {
		return word
	}
	return "'" + strings.ReplaceAll(word, "'", "''") + "'"
}

// Join quotes every word and joins them with single spaces.
func Join(words []string) string {
	parts := make([]string, len(words))
	for i, word := range words {
		parts[i] = Quote(word)
	}
	return strings.Join(parts, " ")
}
