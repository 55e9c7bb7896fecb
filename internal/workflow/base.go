package workflow

// base carries the identity every workflow shares. Concrete workflows embed
// it and implement Run.
type base struct {
	name        string
	description string
	triggers    []string
}

func (b *base) Name() string        { return b.name }
func (b *base) Description() string { return b.description }
func (b *base) Triggers() []string  { return b.triggers }

// SetTriggers replaces the default trigger phrases, for config overrides.
// Must be called before registration; the registry assumes a fixed set.
func (b *base) SetTriggers(triggers []string) {
	if len(triggers) > 0 {
		b.triggers = triggers
	}
}

var rankWords = []string{
	"First", "Second", "Third", "Fourth", "Fifth",
	"Sixth", "Seventh", "Eighth", "Ninth", "Tenth",
}

// rankWord speaks a zero-based position ("First", "Second", ...) so
// responses never read raw numerals.
func rankWord(i int) string {
	if i < len(rankWords) {
		return rankWords[i]
	}
	return "Next"
}

var countWords = []string{
	"no", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
}

// countWord speaks a small count ("three"), falling back to "several" when
// the list is long enough that the exact number stops mattering aloud.
func countWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return "several"
}
