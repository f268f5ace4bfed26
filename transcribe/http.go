package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/commcoach/voxlens/logging"
)

// HTTPClient talks to a whisper-style transcription service over HTTP:
// POST /transcribe with a multipart WAV upload, JSON text back.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  logging.Logger
}

// NewHTTPClient creates a transcription client for the given service URL
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
		logger: logging.WithFields(logging.Fields{
			"component": "transcribe_http",
		}),
	}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the WAV file and returns the recognized text
func (h *HTTPClient) Transcribe(ctx context.Context, wavPath string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return "", err
	}

	fd, err := os.Open(wavPath)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	if _, err = io.Copy(part, fd); err != nil {
		return "", err
	}
	if err = writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/transcribe", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	h.logger.Debug("Sending transcription request", logging.Fields{
		"url":  h.baseURL + "/transcribe",
		"file": filepath.Base(wavPath),
	})

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return "", ErrNoSpeech
	case resp.StatusCode != http.StatusOK:
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s: %s", ErrServiceUnavailable, resp.Status, string(respBody))
	}

	var out transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrServiceUnavailable, err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", ErrNoSpeech
	}

	h.logger.Debug("Transcription completed", logging.Fields{
		"characters": len(text),
	})

	return text, nil
}
