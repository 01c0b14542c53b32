package util

import (
	"regexp"
	"strings"
	"unicode"
)

var lineBreak = regexp.MustCompile(`\r\n?|\n`)

// Lines splits on any line break convention.
func Lines(input string) []string {
	return lineBreak.Split(input, -1)
}

// TrimLines strips trailing spaces from each line and drops trailing blank
// lines. The input slice is modified in place.
func TrimLines(lines []string) []string {
	for i, it := range lines {
		lines[i] = strings.TrimRightFunc(it, unicode.IsSpace)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
