package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const RegexpIgnoreCase = "(?i)"

// Glob returns the paths under root, relative and slash separated, whose
// file name matches pattern. Patterns containing a `/` are matched against
// the tail of the relative path instead.
func Glob(root, pattern string) (out []string) {
	root = Try(filepath.Abs(root))
	isPath := strings.Contains(pattern, "/")
	anchor := "^"
	if isPath {
		anchor = ""
	}

	re := regexp.MustCompile(RegexpIgnoreCase + anchor + "(" + GlobRegex(pattern) + ")$")
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel := filepath.ToSlash(Try(filepath.Rel(root, path)))
		name := d.Name()
		if isPath {
			name = rel
		}
		if re.MatchString(name) {
			out = append(out, rel)
		}
		return nil
	})
	sort.Strings(out)
	return out
}

// GlobRegex translates a glob into a regular expression. `?` and `*` never
// match a directory separator, `(a|b)` groups pass through.
func GlobRegex(pattern string) string {
	out := strings.Builder{}
	for _, next := range pattern {
		switch next {
		case '/', '\\':
			out.WriteString(`[/\\]`)
		case '?':
			out.WriteString(`[^/\\]`)
		case '*':
			out.WriteString(`[^/\\]*`)
		case '(', ')', '|':
			out.WriteRune(next)
		default:
			out.WriteString(regexp.QuoteMeta(string(next)))
		}
	}
	return out.String()
}

func WithExtension(filename string, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}

// ReadText returns the file contents, or an empty string if the file does
// not exist.
func ReadText(filename string) string {
	out, err := os.ReadFile(filename)
	if err != nil && !os.IsNotExist(err) {
		NoError(err, "reading file text")
	}
	return string(out)
}

func WriteText(filename string, text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	NoError(os.WriteFile(filename, []byte(text), 0o644), "writing file text")
}

func Exists(filename string) bool {
	_, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	NoError(err, "could not stat file")
	return true
}
