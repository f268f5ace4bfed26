// Package transcribe defines the boundary to the external speech-to-text
// collaborator. The engine never performs recognition itself: it hands a
// canonical WAV file to a Transcriber and consumes the text that comes back.
package transcribe

import (
	"context"
	"errors"
)

// Typed failure kinds. There is no automatic retry: a timeout or service
// error surfaces immediately and the caller decides what to do.
var (
	// ErrNoSpeech means the service processed the audio but could not make
	// out any words
	ErrNoSpeech = errors.New("speech could not be understood")

	// ErrServiceUnavailable means the recognition service did not produce a
	// usable response at all
	ErrServiceUnavailable = errors.New("transcription service unavailable")
)

// Transcriber converts a recorded WAV file into text
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
