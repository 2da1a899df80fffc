package study

import (
	"context"

	"studypipe/internal/domain/study"
)

// AudioFetcher is an application port for resolving a source URL to a local
// audio file. Implementations are best effort: they report an error only when
// no usable audio exists at the returned path.
type AudioFetcher interface {
	Fetch(ctx context.Context, sourceURL, outputPath string) (string, error)
}

// TranscriptionGateway is an application port for the remote speech-to-text
// service. Poll blocks until the service reports a terminal state, relaying
// every observed intermediate status through onStatus.
type TranscriptionGateway interface {
	Upload(ctx context.Context, audioPath string) (string, error)
	SubmitTranscript(ctx context.Context, audioURL, languageCode string) (string, error)
	Poll(ctx context.Context, transcriptID string, onStatus func(status string)) (study.Transcript, error)
}

// ContentGenerator is an application port for producing study content from
// transcript text. Both methods always return a non-empty list; the string
// carries a partial-failure notice when fallback content was served.
type ContentGenerator interface {
	Questions(ctx context.Context, transcript, language string) ([]study.Question, string)
	Flashcards(ctx context.Context, transcript, language string) ([]study.Flashcard, string)
}
