// Package piglatin rewrites space separated words into pig latin.
package piglatin

import (
	"strings"
	"unicode"
)

// Transform converts every word of s. Words are split on single spaces, so
// repeated, leading or trailing spaces produce empty words which are kept
// as is.
func Transform(s string) string {
	words := strings.Split(s, " ")
	for i, it := range words {
		words[i] = Word(it)
	}
	return strings.Join(words, " ")
}

// TransformAny is Transform for loosely typed input. Anything other than a
// string is returned unchanged.
func TransformAny(v any) any {
	if s, ok := v.(string); ok {
		return Transform(s)
	}
	return v
}

// Word moves the letters before the first vowel to the end and appends "ay",
// or "way" when the word starts with a vowel. The result is lower case.
// Words without vowels are returned unchanged.
func Word(word string) string {
	index := FirstVowel(word)
	if index < 0 {
		return word
	}

	suffix := "ay"
	if index == 0 {
		suffix = "way"
	}
	return strings.ToLower(word[index:] + word[:index] + suffix)
}

// FirstVowel returns the byte index of the first vowel in word, counting `y`
// as a vowel, or -1.
func FirstVowel(word string) int {
	for i, chr := range word {
		switch unicode.ToLower(chr) {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return i
		}
	}
	return -1
}
