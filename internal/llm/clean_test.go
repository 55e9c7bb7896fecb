package llm

import "testing"

func TestCleanForSpeech(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"numbered list",
			"1. Insert the key\n2. Turn it",
			"Insert the key Turn it",
		},
		{
			"markdown markers",
			"This is **bold** and *italic* and `code`",
			"This is bold and italic and code",
		},
		{
			"complexity notation",
			"Lookup is O(log n) on average",
			"Lookup is big O of log n on average",
		},
		{
			"whitespace collapse",
			"first  line\n\n\nsecond   line",
			"first line second line",
		},
		{
			"plain text untouched",
			"Nothing to change here.",
			"Nothing to change here.",
		},
	}

	for _, tc := range cases {
		if got := CleanForSpeech(tc.in); got != tc.want {
			t.Errorf("%s: CleanForSpeech(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}
