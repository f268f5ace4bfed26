package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commcoach/voxlens/textstyle"
	"github.com/commcoach/voxlens/transcribe"
	"github.com/commcoach/voxlens/vocal"
)

type stubTranscriber struct {
	text  string
	err   error
	calls int
}

func (s *stubTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestAnalyzeNeedsInput(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	result, err := a.AnalyzeCommunication(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, StatusNeedsInput, result.Status)
	assert.NotEmpty(t, result.Guidance)

	// Whitespace-only input counts as missing
	result, err = a.AnalyzeCommunication(context.Background(), Request{Text: "   "})
	require.NoError(t, err)
	assert.Equal(t, StatusNeedsInput, result.Status)
}

func TestAnalyzeTextOnly(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	result, err := a.AnalyzeCommunication(context.Background(), Request{
		Text:         "I feel frustrated when meetings run late. I think we should set a timer. What do you think?",
		Relationship: RelationshipPartner,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusAnalyzed, result.Status)
	assert.False(t, result.TranscribedFromAudio)
	assert.Nil(t, result.VocalReport)

	require.NotNil(t, result.StyleAnalysis)
	assert.Equal(t, textstyle.StyleAssertive, result.StyleAnalysis.Style)

	assert.NotEmpty(t, result.Coaching)
	assert.NotEmpty(t, result.RelationshipTip)
}

func TestAnalyzeRejectsUnsupportedExtension(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	path := writeTestFile(t, "sample.aac", []byte("not really audio"))

	_, err := a.AnalyzeCommunication(context.Background(), Request{
		Text:      "hello",
		AudioPath: path,
	})
	require.Error(t, err)

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, KindInputValidation, engineErr.Kind)
	assert.NotEmpty(t, engineErr.Hint)
}

func TestAnalyzeRejectsMissingFile(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	_, err := a.AnalyzeCommunication(context.Background(), Request{
		Text:      "hello",
		AudioPath: filepath.Join(t.TempDir(), "missing.wav"),
	})

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, KindInputValidation, engineErr.Kind)
}

func TestAnalyzeRejectsEmptyFile(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	path := writeTestFile(t, "empty.wav", nil)

	_, err := a.AnalyzeCommunication(context.Background(), Request{
		Text:      "hello",
		AudioPath: path,
	})

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, KindInputValidation, engineErr.Kind)
}

func TestAnalyzeRejectsOversizedFile(t *testing.T) {
	config := DefaultConfig()
	config.Decoder.MaxSourceBytes = 16

	a := NewAnalyzer(config, nil)
	path := writeTestFile(t, "big.wav", make([]byte, 64))

	_, err := a.AnalyzeCommunication(context.Background(), Request{
		Text:      "hello",
		AudioPath: path,
	})

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, KindInputValidation, engineErr.Kind)
}

func TestAnalyzeAudioOnlyWithoutTranscriber(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	path := writeTestFile(t, "speech.wav", []byte("placeholder"))

	_, err := a.AnalyzeCommunication(context.Background(), Request{AudioPath: path})

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, KindTranscription, engineErr.Kind)
	assert.NotEmpty(t, engineErr.Hint)
}

func TestAnalyzeAudioOnlyWithTranscriber(t *testing.T) {
	// The file is not decodable audio, so vocal analysis degrades to a
	// limited report while the transcribed text still gets classified
	a := NewAnalyzer(nil, &stubTranscriber{text: "I think we should talk about the schedule."})
	path := writeTestFile(t, "speech.wav", []byte("placeholder"))

	result, err := a.AnalyzeCommunication(context.Background(), Request{AudioPath: path})
	require.NoError(t, err)

	assert.Equal(t, StatusAnalyzed, result.Status)
	assert.True(t, result.TranscribedFromAudio)
	assert.Equal(t, "I think we should talk about the schedule.", result.OriginalMessage)

	require.NotNil(t, result.VocalReport)
	assert.Equal(t, vocal.StatusLimited, result.VocalReport.Status)

	require.NotNil(t, result.StyleAnalysis)
	assert.Equal(t, textstyle.StyleAssertive, result.StyleAnalysis.Style)
}

func TestAnalyzeTranscriptReplacesTypedText(t *testing.T) {
	transcriber := &stubTranscriber{text: "I think we should talk about the schedule."}
	a := NewAnalyzer(nil, transcriber)
	path := writeTestFile(t, "speech.wav", []byte("placeholder"))

	result, err := a.AnalyzeCommunication(context.Background(), Request{
		Text:      "typed words",
		AudioPath: path,
	})
	require.NoError(t, err)

	// The recording is authoritative: the transcript replaces the typed text
	assert.Equal(t, 1, transcriber.calls)
	assert.True(t, result.TranscribedFromAudio)
	assert.Equal(t, "I think we should talk about the schedule.", result.OriginalMessage)
}

func TestAnalyzeTranscriptionFailureAbortsDespiteTypedText(t *testing.T) {
	a := NewAnalyzer(nil, &stubTranscriber{err: transcribe.ErrServiceUnavailable})
	path := writeTestFile(t, "speech.wav", []byte("placeholder"))

	_, err := a.AnalyzeCommunication(context.Background(), Request{
		Text:      "typed words",
		AudioPath: path,
	})

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, KindTranscription, engineErr.Kind)
}

func TestAnalyzeTranscriberNoSpeech(t *testing.T) {
	a := NewAnalyzer(nil, &stubTranscriber{err: transcribe.ErrNoSpeech})
	path := writeTestFile(t, "speech.wav", []byte("placeholder"))

	_, err := a.AnalyzeCommunication(context.Background(), Request{AudioPath: path})

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, KindTranscription, engineErr.Kind)
	assert.True(t, errors.Is(err, transcribe.ErrNoSpeech))
}

func TestEngineErrorFormatting(t *testing.T) {
	inner := errors.New("boom")
	err := newEngineError(KindTranscode, "could not convert the recording", "Try a WAV file.", inner)

	assert.Contains(t, err.Error(), "transcode")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, inner)
}
