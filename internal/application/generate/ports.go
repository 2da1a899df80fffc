package generate

import "context"

// ChatCompleter is an application port for one generative text request. It
// returns the raw text produced by the model; non-2xx service responses and
// transport failures come back as errors.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}
