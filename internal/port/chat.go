package port

import "context"

// ChatCompleter abstracts the LLM chat backend. Complete returns the
// assistant's reply for a single user message, with the system prompt
// tailored to the given persona.
type ChatCompleter interface {
	Complete(ctx context.Context, persona, message string) (string, error)
}
