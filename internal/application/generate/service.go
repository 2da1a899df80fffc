package generate

import (
	"context"
	"encoding/json"
	"log"

	"studypipe/internal/domain/study"
)

// Strategy is one rung of the generation ladder: an output-size budget, an
// input-truncation length, and a target item count. Rungs are tried most
// ambitious first; the first one that yields a valid result wins.
type Strategy struct {
	MaxTokens     int
	TranscriptLen int
	Items         int
}

var questionLadder = []Strategy{
	{MaxTokens: 4000, TranscriptLen: 3000, Items: 12},
	{MaxTokens: 3500, TranscriptLen: 2500, Items: 10},
	{MaxTokens: 3000, TranscriptLen: 2000, Items: 9},
	{MaxTokens: 2500, TranscriptLen: 1500, Items: 8},
	{MaxTokens: 2000, TranscriptLen: 1000, Items: 7},
}

var flashcardLadder = []Strategy{
	{MaxTokens: 3500, TranscriptLen: 2500, Items: 15},
	{MaxTokens: 3000, TranscriptLen: 2000, Items: 12},
	{MaxTokens: 2500, TranscriptLen: 1500, Items: 10},
	{MaxTokens: 2000, TranscriptLen: 1000, Items: 8},
}

const (
	minQuestions  = 5
	minFlashcards = 3

	questionTemperature  = 0.3
	flashcardTemperature = 0.2
)

// Service turns transcript text into question and flashcard sets, working
// down the strategy ladder until a response parses and validates.
type Service struct {
	chat   ChatCompleter
	logger *log.Logger
}

// NewService creates a content generation service with an injected completer.
func NewService(chat ChatCompleter, logger *log.Logger) *Service {
	return &Service{chat: chat, logger: logger}
}

// Questions generates a multiple-choice question set from transcript text.
// The returned notice is empty on success; when every strategy fails it
// describes the failure and the fixed fallback set is returned instead, so
// the result is never empty.
func (s *Service) Questions(ctx context.Context, transcript, language string) ([]study.Question, string) {
	prompt := promptFor(questionPrompts, language)

	for _, strategy := range questionLadder {
		content, err := s.chat.Complete(ctx,
			questionSystemPrompt(strategy.Items),
			prompt+"\n\nTranscript content to analyze:\n"+truncate(transcript, strategy.TranscriptLen),
			questionTemperature,
			strategy.MaxTokens,
		)
		if err != nil {
			s.logger.Printf("question strategy %+v failed: %v", strategy, err)
			continue
		}

		var out struct {
			Questions []study.Question `json:"questions"`
		}
		if !parsePayload(CleanResponse(content), &out) {
			s.logger.Printf("question strategy %+v produced unparseable output", strategy)
			continue
		}
		if validQuestions(out.Questions) && len(out.Questions) >= minQuestions {
			return out.Questions, ""
		}
		s.logger.Printf("question strategy %+v produced invalid or insufficient questions (%d)", strategy, len(out.Questions))
	}

	return fallbackQuestions(), questionFallbackNotice
}

// Flashcards generates a flashcard set from transcript text, with the same
// ladder and fallback semantics as Questions.
func (s *Service) Flashcards(ctx context.Context, transcript, language string) ([]study.Flashcard, string) {
	prompt := promptFor(flashcardPrompts, language)

	for _, strategy := range flashcardLadder {
		content, err := s.chat.Complete(ctx,
			flashcardSystemPrompt(strategy.Items),
			prompt+"\n\nTranscript content to analyze:\n"+truncate(transcript, strategy.TranscriptLen),
			flashcardTemperature,
			strategy.MaxTokens,
		)
		if err != nil {
			s.logger.Printf("flashcard strategy %+v failed: %v", strategy, err)
			continue
		}

		var out struct {
			Flashcards []study.Flashcard `json:"flashcards"`
		}
		if !parsePayload(CleanResponse(content), &out) {
			s.logger.Printf("flashcard strategy %+v produced unparseable output", strategy)
			continue
		}
		if validFlashcards(out.Flashcards) && len(out.Flashcards) >= minFlashcards {
			return out.Flashcards, ""
		}
		s.logger.Printf("flashcard strategy %+v produced invalid or insufficient flashcards (%d)", strategy, len(out.Flashcards))
	}

	return fallbackFlashcards(), flashcardFallbackNotice
}

// parsePayload unmarshals cleaned model output into out, retrying once with
// the repaired text when the raw payload does not parse.
func parsePayload(payload string, out interface{}) bool {
	if err := json.Unmarshal([]byte(payload), out); err == nil {
		return true
	}
	repaired, ok := RepairJSON(payload)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(repaired), out) == nil
}

func validQuestions(questions []study.Question) bool {
	if len(questions) == 0 {
		return false
	}
	for _, q := range questions {
		if !q.Valid() {
			return false
		}
	}
	return true
}

func validFlashcards(cards []study.Flashcard) bool {
	if len(cards) == 0 {
		return false
	}
	for _, card := range cards {
		if !card.Valid() {
			return false
		}
	}
	return true
}

// truncate cuts transcript text to at most limit runes without splitting a
// multi-byte character.
func truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
