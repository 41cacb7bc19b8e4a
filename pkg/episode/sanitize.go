package episode

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	metadataRegex = regexp.MustCompile(`\s*[\(\[][^\)\]]*[\)\]]\s*$`)
	leadingThe    = regexp.MustCompile(`^the\s+`)
	nonAlnum      = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	folder        = cases.Fold()
)

// SanitizeName folds a series name into its lookup key. Case, accents and
// punctuation are ignored, "&" is treated as "and" and a leading "the" is dropped.
// When ignoreMetadata is set, trailing parenthesised metadata such as "(2009)"
// or "(US)" is stripped first.
func SanitizeName(name string, ignoreMetadata bool) string {
	if ignoreMetadata {
		for {
			stripped := metadataRegex.ReplaceAllString(name, "")
			if stripped == name || strings.TrimSpace(stripped) == "" {
				break
			}
			name = stripped
		}
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	folded = folder.String(folded)
	folded = strings.ReplaceAll(folded, "&", " and ")
	folded = strings.ReplaceAll(folded, "'", "")
	folded = strings.Join(strings.Fields(strings.Map(separatorToSpace, folded)), " ")
	folded = leadingThe.ReplaceAllString(folded, "")

	return nonAlnum.ReplaceAllString(folded, "")
}

func separatorToSpace(r rune) rune {
	switch r {
	case '.', '_', '-':
		return ' '
	}
	return r
}
