package study

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"studypipe/internal/domain/study"
	"studypipe/internal/metrics"
)

// ErrMissingURL is returned when a submission carries no source URL.
var ErrMissingURL = errors.New("source URL is required")

// Service owns the job pipeline: it accepts submissions, runs one detached
// goroutine per job through download, upload, transcription, and content
// generation, and records every transition in the status registry.
type Service struct {
	fetcher     AudioFetcher
	transcriber TranscriptionGateway
	generator   ContentGenerator
	registry    *Registry
	collector   *metrics.Collector
	logger      *log.Logger
	workDir     string
}

// NewService wires the pipeline service with its ports.
func NewService(
	fetcher AudioFetcher,
	transcriber TranscriptionGateway,
	generator ContentGenerator,
	collector *metrics.Collector,
	logger *log.Logger,
	workDir string,
) *Service {
	return &Service{
		fetcher:     fetcher,
		transcriber: transcriber,
		generator:   generator,
		registry:    NewRegistry(),
		collector:   collector,
		logger:      logger,
		workDir:     workDir,
	}
}

// Submit registers a new job and starts its pipeline in the background. The
// job id is visible in the registry before Submit returns, so a status poll
// issued immediately afterwards never sees not_found.
func (s *Service) Submit(sourceURL, languageCode string) (string, error) {
	if strings.TrimSpace(sourceURL) == "" {
		return "", ErrMissingURL
	}

	jobID := uuid.NewString()
	s.registry.Set(jobID, study.JobState{Status: study.StatusDownloading})
	s.collector.RecordSubmit()
	s.logger.Printf("job accepted: %s", jobID)

	go s.run(jobID, sourceURL, languageCode)
	return jobID, nil
}

// Status returns the current state for a job id, or a not_found state for
// unknown ids.
func (s *Service) Status(jobID string) study.JobState {
	state, ok := s.registry.Get(jobID)
	if !ok {
		return study.JobState{Status: study.StatusNotFound}
	}
	return state
}

// run executes one job end to end. Jobs are never cancelled once started; the
// background context lives until the pipeline reaches a terminal state.
func (s *Service) run(jobID, sourceURL, languageCode string) {
	ctx := context.Background()
	start := time.Now()

	audioPath := filepath.Join(s.workDir, fmt.Sprintf("temp_audio_%s.mp3", jobID))
	defer func() {
		// The artifact must not outlive the job on any exit path. A file
		// that was never created is fine.
		if err := os.Remove(audioPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Printf("job %s: cleanup failed: %v", jobID, err)
		}
	}()

	if _, err := s.fetcher.Fetch(ctx, sourceURL, audioPath); err != nil {
		s.fail(jobID, start, err)
		return
	}

	s.registry.Set(jobID, study.JobState{Status: study.StatusUploading})
	audioURL, err := s.transcriber.Upload(ctx, audioPath)
	if err != nil {
		s.fail(jobID, start, err)
		return
	}

	s.registry.Set(jobID, study.JobState{Status: study.StatusSubmitting})
	transcriptID, err := s.transcriber.SubmitTranscript(ctx, audioURL, languageCode)
	if err != nil {
		s.fail(jobID, start, err)
		return
	}

	s.registry.Set(jobID, study.JobState{Status: study.StatusProcessing})
	transcript, err := s.transcriber.Poll(ctx, transcriptID, func(status string) {
		// Relay intermediate service statuses verbatim; terminal statuses
		// get their full payload below.
		if st := study.Status(status); !st.Terminal() {
			s.registry.Set(jobID, study.JobState{Status: st})
		}
	})
	if err != nil {
		s.fail(jobID, start, err)
		return
	}

	s.registry.Set(jobID, study.JobState{Status: study.StatusGeneratingContent})
	questions, questionErr := s.generator.Questions(ctx, transcript.Text, transcript.LanguageDetected)
	flashcards, flashcardErr := s.generator.Flashcards(ctx, transcript.Text, transcript.LanguageDetected)

	s.registry.Set(jobID, study.JobState{
		Status:             study.StatusCompleted,
		Transcript:         transcript.Text,
		LanguageDetected:   transcript.LanguageDetected,
		LanguageConfidence: transcript.LanguageConfidence,
		AudioDuration:      transcript.AudioDuration,
		MCQs:               questions,
		MCQError:           questionErr,
		Flashcards:         flashcards,
		FlashcardError:     flashcardErr,
	})
	s.collector.RecordCompleted(time.Since(start))
	s.logger.Printf("job completed: %s (%d questions, %d flashcards)", jobID, len(questions), len(flashcards))
}

// fail records a terminal error state for the job and stops the pipeline.
func (s *Service) fail(jobID string, start time.Time, err error) {
	s.registry.Set(jobID, study.JobState{Status: study.StatusError, Error: err.Error()})
	s.collector.RecordFailed(time.Since(start))
	s.logger.Printf("job failed: %s: %v", jobID, err)
}
