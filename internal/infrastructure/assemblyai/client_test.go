package assemblyai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.mp3")
	if err := os.WriteFile(path, []byte("fake audio bytes"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return path
}

func newTestClient(serverURL string) *Client {
	c := NewClient(serverURL, "test-key")
	c.PollInterval = time.Millisecond
	return c
}

func TestUpload(t *testing.T) {
	var gotAuth string
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/upload" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("authorization")
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		gotBody = string(data)
		json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.assemblyai.com/upload/abc"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	url, err := client.Upload(context.Background(), writeTempAudio(t))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "https://cdn.assemblyai.com/upload/abc" {
		t.Fatalf("unexpected upload url: %s", url)
	}
	if gotAuth != "test-key" {
		t.Fatalf("expected api key in authorization header, got %q", gotAuth)
	}
	if gotBody != "fake audio bytes" {
		t.Fatalf("expected raw file bytes as body, got %q", gotBody)
	}
}

func TestUpload_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Upload(context.Background(), writeTempAudio(t))
	if err == nil {
		t.Fatal("expected error on 401")
	}
	if err.Error() != "upload failed: 401 - invalid api key" {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	_, err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Fatal("expected error for missing audio file")
	}
}

func TestSubmitTranscript_AutoDetection(t *testing.T) {
	var payload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/transcript" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "tr-1"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	id, err := client.SubmitTranscript(context.Background(), "https://cdn.example/audio", "")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if id != "tr-1" {
		t.Fatalf("unexpected transcript id: %s", id)
	}
	if payload["language_detection"] != true {
		t.Fatalf("expected automatic language detection, got %v", payload["language_detection"])
	}
	if _, ok := payload["language_code"]; ok {
		t.Fatal("language_code must be absent without a hint")
	}
	if payload["punctuate"] != true || payload["format_text"] != true {
		t.Fatalf("expected punctuate and format_text enabled: %v", payload)
	}
}

func TestSubmitTranscript_PinnedLanguage(t *testing.T) {
	var payload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(map[string]string{"id": "tr-2"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.SubmitTranscript(context.Background(), "https://cdn.example/audio", "hi"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if payload["language_code"] != "hi" {
		t.Fatalf("expected pinned language_code hi, got %v", payload["language_code"])
	}
	if payload["language_detection"] != false {
		t.Fatal("expected language detection disabled when a code is pinned")
	}
}

func TestSubmitTranscript_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad audio url", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SubmitTranscript(context.Background(), "https://cdn.example/audio", "")
	if err == nil || err.Error() != "transcription submission failed: 400 - bad audio url" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPoll_RelaysStatusesUntilCompleted(t *testing.T) {
	responses := []map[string]interface{}{
		{"status": "queued"},
		{"status": "processing"},
		{
			"status":            "completed",
			"text":              "lecture transcript",
			"language_detected": "en",
			"confidence":        0.97,
			"audio_duration":    421.5,
		},
	}
	var call int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/transcript/tr-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		resp := responses[call]
		if call < len(responses)-1 {
			call++
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	var relayed []string
	transcript, err := client.Poll(context.Background(), "tr-1", func(status string) {
		relayed = append(relayed, status)
	})
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if transcript.Text != "lecture transcript" {
		t.Fatalf("unexpected transcript text: %q", transcript.Text)
	}
	if transcript.LanguageDetected != "en" || transcript.LanguageConfidence != 0.97 || transcript.AudioDuration != 421.5 {
		t.Fatalf("transcript metadata lost: %+v", transcript)
	}
	want := []string{"queued", "processing", "completed"}
	if !reflect.DeepEqual(relayed, want) {
		t.Fatalf("unexpected relayed statuses: want %v got %v", want, relayed)
	}
}

func TestPoll_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": "audio too short"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Poll(context.Background(), "tr-1", nil)
	if err == nil || err.Error() != "audio too short" {
		t.Fatalf("expected service error text, got %v", err)
	}
}

func TestPoll_ErrorStatusWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Poll(context.Background(), "tr-1", nil)
	if err == nil || err.Error() != "unknown error" {
		t.Fatalf("expected unknown error fallback, got %v", err)
	}
}

func TestPoll_Non2xxIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Poll(context.Background(), "tr-1", nil)
	if err == nil || err.Error() != "polling failed: 404 - gone" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPoll_MaxAttempts(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]string{"status": "processing"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.MaxAttempts = 3
	_, err := client.Poll(context.Background(), "tr-1", nil)
	if err == nil {
		t.Fatal("expected error once attempts are exhausted")
	}
	if !strings.Contains(err.Error(), "did not finish within 3 polls") {
		t.Fatalf("unexpected error text: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected exactly 3 polls, got %d", calls)
	}
}

func TestPoll_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "processing"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.PollInterval = time.Minute
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := client.Poll(ctx, "tr-1", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
