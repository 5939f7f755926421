package branchname

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Characters git refuses in ref names (see git-check-ref-format).
var invalidRefChar = regexp.MustCompile(`[\x00-\x1f\x7f~^:?*\[\\]`)
var multiHyphen = regexp.MustCompile(`-{2,}`)

// FromPath derives the default branch name for a new worktree path.
// It takes the final path segment and makes it a valid ref name.
// "./features/São Paulo" → "Sao-Paulo"
// "feature-x" → "feature-x"
func FromPath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "./")
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return p
	}

	name := Sanitize(path.Base(trimmed))
	if name == "" {
		return trimmed
	}
	return name
}

// Sanitize folds diacritics, replaces whitespace with hyphens and drops
// characters that are not allowed in a branch name. Case is preserved.
func Sanitize(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, name)
	if err != nil {
		result = name
	}

	result = strings.Join(strings.Fields(result), "-")
	result = invalidRefChar.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, "..", ".")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-.")
	result = strings.TrimSuffix(result, ".lock")

	return result
}
