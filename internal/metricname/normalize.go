// Package metricname turns arbitrary strings into well-formed dotted metric
// names.  Names submitted by integrations can contain CamelCase words,
// punctuation, whitespace, or non-ASCII letters, none of which are accepted
// by the aggregator.
package metricname

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	firstCapRe        = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	allCapRe          = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	invalidCharsRe    = regexp.MustCompile(`[^a-zA-Z0-9_.]+|^[^a-zA-Z]+`)
	dotUnderscoreRe   = regexp.MustCompile(`_*\._*`)
	punctuationRe     = regexp.MustCompile(`[,+*\-/()\[\]{}\s]`)
	multiUnderscoreRe = regexp.MustCompile(`__+`)
	leadUnderscoreRe  = regexp.MustCompile(`^_`)
	trailUnderscoreRe = regexp.MustCompile(`_$`)
	dotFollowedRe     = regexp.MustCompile(`\._`)
	dotPrecededRe     = regexp.MustCompile(`_\.`)
)

// Normalize converts name into a well-formed dotted metric name, optionally
// prepending prefix (an empty prefix means no prefix).  When fixCase is true
// the name and prefix are converted from CamelCase to underscore_case.
//
// The substitutions run in a fixed order; reordering them changes the output
// for names that mix punctuation with case boundaries.
func Normalize(name string, prefix string, fixCase bool) string {
	out := asciiFold(name)

	if fixCase {
		out = ToUnderscoreSeparated(out)
		if prefix != "" {
			prefix = ToUnderscoreSeparated(prefix)
		}
	} else {
		out = punctuationRe.ReplaceAllString(out, "_")
	}

	out = multiUnderscoreRe.ReplaceAllString(out, "_")
	out = leadUnderscoreRe.ReplaceAllString(out, "")
	out = trailUnderscoreRe.ReplaceAllString(out, "")
	out = dotFollowedRe.ReplaceAllString(out, ".")
	out = dotPrecededRe.ReplaceAllString(out, ".")

	if prefix != "" {
		return prefix + "." + out
	}
	return out
}

// ToUnderscoreSeparated converts a CamelCase name to underscore_case and
// substitutes characters the aggregator rejects.  Purely numeric names pass
// through the case regexes untouched since they require a following letter.
func ToUnderscoreSeparated(name string) string {
	out := firstCapRe.ReplaceAllString(name, "${1}_${2}")
	out = allCapRe.ReplaceAllString(out, "${1}_${2}")
	out = strings.ToLower(out)
	out = invalidCharsRe.ReplaceAllString(out, "_")
	out = dotUnderscoreRe.ReplaceAllString(out, ".")
	return strings.Trim(out, "_")
}

// asciiFold decomposes the string with Unicode NFKD and drops any non-ASCII
// code points that remain, e.g. "résumé" becomes "resume" but "µ" is simply
// deleted.
func asciiFold(s string) string {
	if isASCII(s) {
		return s
	}

	decomposed := norm.NFKD.String(s)
	var sb strings.Builder
	sb.Grow(len(decomposed))
	for i := 0; i < len(decomposed); i++ {
		if decomposed[i] < utf8.RuneSelf {
			sb.WriteByte(decomposed[i])
		}
	}
	return sb.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
