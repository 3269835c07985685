package zeirishi

import (
	"regexp"
	"strings"
)

// EraSeparator joins era date tokens in Record.RegistrationEra.
const EraSeparator = "／"

// eraPattern matches Heisei and Reiwa era dates with an optional month
// segment. Whitespace between the segments is tolerated; it is stripped
// from the extracted token. Other era names and fragments without 年 do
// not match.
var eraPattern = regexp.MustCompile(`(平成|令和)\s*[0-9]+\s*年(?:\s*[0-9]+\s*月)?`)

var eraWhitespace = regexp.MustCompile(`\s+`)

// NormalizeEra extracts all era date tokens from text and joins them with
// EraSeparator in order of appearance. Text outside the tokens is discarded.
// Returns the empty string when text contains no era date.
func NormalizeEra(text string) string {
	matches := eraPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, eraWhitespace.ReplaceAllString(m, ""))
	}
	return strings.Join(tokens, EraSeparator)
}
