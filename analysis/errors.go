package analysis

import "fmt"

// ErrorKind is a stable string tag for the failure class, suitable for
// dispatching user-facing messages
type ErrorKind string

const (
	// KindInputValidation covers rejected sources: missing file, empty file,
	// oversized file, unsupported container
	KindInputValidation ErrorKind = "input_validation"

	// KindTranscode covers ffmpeg/ffprobe failures
	KindTranscode ErrorKind = "transcode"

	// KindTranscription covers transcription collaborator failures
	KindTranscription ErrorKind = "transcription"

	// KindClassification guards against programming defects in the scoring
	// path; it should never surface in normal operation
	KindClassification ErrorKind = "classification"
)

// EngineError is a typed analysis failure carrying a user-actionable message
// and an optional hint
type EngineError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
	Err     error     `json:"-"`
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func newEngineError(kind ErrorKind, message, hint string, err error) *EngineError {
	return &EngineError{Kind: kind, Message: message, Hint: hint, Err: err}
}
