package workflow

import (
	"regexp"
	"strings"
)

// Action classifies what a list utterance asks for.
type Action string

const (
	ActionAdd      Action = "add"
	ActionList     Action = "list"
	ActionComplete Action = "complete"
	ActionClear    Action = "clear"
)

// Intent is the parsed shape of a list utterance. Target carries the
// payload: the text to add, or the entry to mark completed.
type Intent struct {
	Action Action
	Target string
}

var (
	addExplicitRe = regexp.MustCompile(`(?:remind me to|remember to|don't forget to|(?:add|set|create) (?:a |an )?(?:reminder|task|todo)(?: to| for| that)?)\s+(.+)`)

	completeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:mark|set)\s+(.+?)\s+(?:as|to)\s+(?:done|complete|completed|finished|bought|purchased)`),
		regexp.MustCompile(`(?:check off|tick off|cross off|take off|remove|complete|finish)\s+(.+)`),
		regexp.MustCompile(`i(?:'ve| have| just| already)*\s+(?:bought|got|finished|completed|did)\s+(.+)`),
	}

	// "remove" only means clear-completed when a completed-word follows;
	// "remove milk from my list" is a completion of milk, not a sweep.
	clearRe = regexp.MustCompile(`\b(?:clear|clean up)\b.*\b(?:completed|done|finished|bought|list)\b|\bremove\b.*\b(?:completed|done|finished|bought)\b`)

	addGenericRe = regexp.MustCompile(`\b(?:add|put|buy|get|pick up|i need)\s+(.+)`)

	listTailRe = regexp.MustCompile(`\s+(?:to|on|onto|in|from)\s+(?:my|the|our)\s+(?:\w+\s+)*list$`)
)

// ParseListIntent classifies an utterance into one of the four list
// operations. Parsing is deliberately rule-based so routing stays
// deterministic and testable; the order of checks resolves overlaps
// ("mark milk as bought" must complete, not add; "remove the done items"
// must clear, not complete). Unrecognized phrasings read the list, which
// is the harmless interpretation.
func ParseListIntent(utterance string) Intent {
	text := strings.ToLower(strings.TrimSpace(utterance))
	text = strings.TrimRight(text, ".!?")

	if m := addExplicitRe.FindStringSubmatch(text); m != nil {
		return Intent{Action: ActionAdd, Target: cleanTarget(m[1])}
	}

	if clearRe.MatchString(text) {
		return Intent{Action: ActionClear}
	}

	for _, re := range completeRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return Intent{Action: ActionComplete, Target: cleanTarget(m[1])}
		}
	}

	if m := addGenericRe.FindStringSubmatch(text); m != nil {
		return Intent{Action: ActionAdd, Target: cleanTarget(m[1])}
	}

	return Intent{Action: ActionList}
}

// cleanTarget strips the phrasing around a payload: trailing "to my
// shopping list" style clauses, politeness, punctuation, and a leading
// article.
func cleanTarget(s string) string {
	s = strings.TrimSpace(s)
	s = listTailRe.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, " please")
	s = strings.TrimRight(s, ".!?, ")
	for _, article := range []string{"the ", "a ", "an ", "some "} {
		if strings.HasPrefix(s, article) {
			s = s[len(article):]
			break
		}
	}
	return strings.TrimSpace(s)
}
