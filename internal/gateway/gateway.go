package gateway

import "context"

// Converser is a conversation surface: it owns the turn-taking loop that
// feeds utterances to the dispatcher and delivers responses back. Exactly
// one utterance is in flight at a time.
type Converser interface {
	// Start runs the conversation loop until ctx is canceled or input ends.
	Start(ctx context.Context) error
	// Stop gracefully shuts down the surface.
	Stop() error
}
