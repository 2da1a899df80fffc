package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ErrNoAudio is returned when yt-dlp finished but produced no usable file.
var ErrNoAudio = fmt.Errorf("no audio produced")

// Fetcher wraps yt-dlp audio extraction.
type Fetcher struct {
	Bin    string
	runner func(ctx context.Context, name string, args ...string) error
	stat   func(name string) (os.FileInfo, error)
}

// NewFetcher creates a yt-dlp adapter using the given binary name.
func NewFetcher(bin string) *Fetcher {
	return &Fetcher{Bin: bin, runner: run, stat: os.Stat}
}

// NewFetcherForTests creates a fetcher with injectable process and stat functions.
func NewFetcherForTests(
	bin string,
	runner func(ctx context.Context, name string, args ...string) error,
	stat func(name string) (os.FileInfo, error),
) *Fetcher {
	return &Fetcher{Bin: bin, runner: runner, stat: stat}
}

// Fetch downloads the best audio for sourceURL into outputPath as mp3.
// Extraction is best effort: yt-dlp runs with --ignore-errors, so per-format
// failures are swallowed and only a missing or empty output file is reported.
func (f *Fetcher) Fetch(ctx context.Context, sourceURL, outputPath string) (string, error) {
	args := buildArgs(sourceURL, outputPath)
	_ = f.runner(ctx, f.Bin, args...)

	info, err := f.stat(outputPath)
	if err != nil || info.Size() == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoAudio, sourceURL)
	}
	return outputPath, nil
}

// buildArgs builds yt-dlp CLI args for quiet mp3 extraction.
func buildArgs(sourceURL, outputPath string) []string {
	template := strings.TrimSuffix(outputPath, ".mp3") + ".%(ext)s"
	return []string{
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"--output", template,
		"--quiet",
		"--no-warnings",
		"--ignore-errors",
		"--extractor-args", "youtube:skip=dash,hls",
		"--user-agent", userAgent,
		sourceURL,
	}
}

func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
