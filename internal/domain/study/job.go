package study

// Status describes where a job currently is in the pipeline.
type Status string

const (
	StatusDownloading       Status = "downloading"
	StatusUploading         Status = "uploading"
	StatusSubmitting        Status = "submitting"
	StatusProcessing        Status = "processing"
	StatusGeneratingContent Status = "generating_content"
	StatusCompleted         Status = "completed"
	StatusError             Status = "error"
	StatusNotFound          Status = "not_found"
)

// Terminal reports whether no further transition can happen for a status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// JobState is the full status payload polled by clients.
// Intermediate transcription statuses reported by the speech service
// (e.g. "queued") are relayed verbatim in Status.
type JobState struct {
	Status             Status      `json:"status"`
	Error              string      `json:"error,omitempty"`
	Transcript         string      `json:"transcript,omitempty"`
	LanguageDetected   string      `json:"language_detected,omitempty"`
	LanguageConfidence float64     `json:"language_confidence,omitempty"`
	AudioDuration      float64     `json:"audio_duration,omitempty"`
	MCQs               []Question  `json:"mcqs,omitempty"`
	MCQError           string      `json:"mcq_error,omitempty"`
	Flashcards         []Flashcard `json:"flashcards,omitempty"`
	FlashcardError     string      `json:"flashcard_error,omitempty"`
}

// Transcript is the terminal output of a successful transcription.
type Transcript struct {
	Text               string
	LanguageDetected   string
	LanguageConfidence float64
	AudioDuration      float64
}
