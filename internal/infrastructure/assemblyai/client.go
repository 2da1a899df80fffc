package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"studypipe/internal/domain/study"
)

// Client is an AssemblyAI speech-to-text infrastructure adapter.
type Client struct {
	BaseURL      string
	APIKey       string
	HTTP         *http.Client
	PollInterval time.Duration
	// MaxAttempts bounds Poll; 0 keeps polling until a terminal status.
	MaxAttempts int
}

// NewClient creates an AssemblyAI adapter with a 5s poll interval.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		APIKey:       apiKey,
		HTTP:         &http.Client{},
		PollInterval: 5 * time.Second,
	}
}

// Upload posts raw audio bytes and returns the hosted audio URL.
func (c *Client) Upload(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v2/upload", file)
	if err != nil {
		return "", err
	}
	req.Header.Set("authorization", c.APIKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError("upload failed", resp)
	}

	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.UploadURL == "" {
		return "", errors.New("upload response missing upload_url")
	}
	return out.UploadURL, nil
}

// SubmitTranscript requests transcription of a hosted audio URL. A non-empty
// languageCode pins the transcript language and disables automatic detection.
func (c *Client) SubmitTranscript(ctx context.Context, audioURL, languageCode string) (string, error) {
	payload := map[string]interface{}{
		"audio_url":          audioURL,
		"language_detection": true,
		"multichannel":       false,
		"punctuate":          true,
		"format_text":        true,
	}
	if languageCode != "" {
		payload["language_code"] = languageCode
		payload["language_detection"] = false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v2/transcript", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("authorization", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError("transcription submission failed", resp)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("transcript response missing id")
	}
	return out.ID, nil
}

// Poll queries transcript status on a fixed interval until the service reports
// a terminal state. Every observed status is relayed through onStatus so
// callers can surface progress to pollers.
func (c *Client) Poll(ctx context.Context, transcriptID string, onStatus func(status string)) (study.Transcript, error) {
	interval := c.PollInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	for attempt := 0; c.MaxAttempts == 0 || attempt < c.MaxAttempts; attempt++ {
		result, err := c.fetchTranscript(ctx, transcriptID)
		if err != nil {
			return study.Transcript{}, err
		}

		if onStatus != nil {
			onStatus(result.Status)
		}

		switch result.Status {
		case "completed":
			return study.Transcript{
				Text:               result.Text,
				LanguageDetected:   result.LanguageDetected,
				LanguageConfidence: result.Confidence,
				AudioDuration:      result.AudioDuration,
			}, nil
		case "error":
			message := result.Error
			if message == "" {
				message = "unknown error"
			}
			return study.Transcript{}, errors.New(message)
		}

		select {
		case <-ctx.Done():
			return study.Transcript{}, ctx.Err()
		case <-time.After(interval):
		}
	}

	return study.Transcript{}, fmt.Errorf("transcription %s did not finish within %d polls", transcriptID, c.MaxAttempts)
}

type transcriptResponse struct {
	Status           string  `json:"status"`
	Text             string  `json:"text"`
	LanguageDetected string  `json:"language_detected"`
	Confidence       float64 `json:"confidence"`
	AudioDuration    float64 `json:"audio_duration"`
	Error            string  `json:"error"`
}

func (c *Client) fetchTranscript(ctx context.Context, transcriptID string) (transcriptResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v2/transcript/"+transcriptID, nil)
	if err != nil {
		return transcriptResponse{}, err
	}
	req.Header.Set("authorization", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return transcriptResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return transcriptResponse{}, statusError("polling failed", resp)
	}

	var out transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return transcriptResponse{}, err
	}
	return out, nil
}

func statusError(prefix string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%s: %d - %s", prefix, resp.StatusCode, strings.TrimSpace(string(body)))
}
