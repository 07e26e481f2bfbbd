package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// TTSService generates and caches spoken-word audio files. Speech is a
// best-effort concern: callers treat any failure as "word not spoken" and
// never surface it as a session error.
type TTSService struct {
	audioDir string
}

// NewTTSService creates a new TTS service
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
	}
}

// GenerateAudioFile converts text to speech and saves it as an MP3.
// Returns the filename (not full path) on success. Already-generated words
// are served from the cache.
func (s *TTSService) GenerateAudioFile(text string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(text))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")

	filename := fmt.Sprintf("word_%s.mp3", sanitized)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	if err := s.generateUsingGoogleTTS(text, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// generateUsingGoogleTTS uses Google Translate's text-to-speech endpoint,
// which needs no API key.
func (s *TTSService) generateUsingGoogleTTS(text, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	req, err := http.NewRequest("GET", baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Google rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// DeleteAudioFile removes a cached audio file
func (s *TTSService) DeleteAudioFile(filename string) error {
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // Already deleted
	}

	return os.Remove(path)
}
