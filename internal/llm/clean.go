package llm

import (
	"regexp"
	"strings"
)

var (
	numberedRe   = regexp.MustCompile(`\d+\.\s*`)
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
	codeRe       = regexp.MustCompile("`([^`]+)`")
	bigORe       = regexp.MustCompile(`O\(([^)]+)\)`)
	bigOOpenRe   = regexp.MustCompile(`O\(`)
	newlineRe    = regexp.MustCompile(`\n+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanForSpeech rewrites model output into something a TTS engine can read
// aloud: no list numbering, no markdown markers, no raw notation.
func CleanForSpeech(text string) string {
	text = numberedRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = codeRe.ReplaceAllString(text, "$1")

	// Spell out complexity notation rather than reading symbols.
	text = bigORe.ReplaceAllString(text, "big O of $1")
	text = bigOOpenRe.ReplaceAllString(text, "big O of ")

	text = newlineRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
