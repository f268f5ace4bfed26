package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWAV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speech.wav")
	require.NoError(t, os.WriteFile(path, []byte("fake wav payload"), 0o644))
	return path
}

func TestTranscribeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transcribe", r.URL.Path)

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			http.Error(w, "bad upload", http.StatusBadRequest)
			return
		}
		defer file.Close()
		assert.Equal(t, "speech.wav", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "I think we should talk."}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	text, err := client.Transcribe(context.Background(), writeWAV(t))

	require.NoError(t, err)
	assert.Equal(t, "I think we should talk.", text)
}

func TestTranscribeNoSpeechStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.Transcribe(context.Background(), writeWAV(t))

	assert.ErrorIs(t, err, ErrNoSpeech)
}

func TestTranscribeEmptyTextIsNoSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"text": "   "}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.Transcribe(context.Background(), writeWAV(t))

	assert.ErrorIs(t, err, ErrNoSpeech)
}

func TestTranscribeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.Transcribe(context.Background(), writeWAV(t))

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestTranscribeUnreachableService(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1")
	_, err := client.Transcribe(context.Background(), writeWAV(t))

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestTranscribeMissingFile(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1")
	_, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))

	assert.Error(t, err)
}
