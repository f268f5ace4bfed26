// Package analysis orchestrates a full communication diagnosis: decode and
// optionally transcribe a recording, extract and score vocal delivery,
// classify the text style, fuse both signal sets, and generate coaching.
package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/commcoach/voxlens/logging"
	"github.com/commcoach/voxlens/textstyle"
	"github.com/commcoach/voxlens/transcode"
	"github.com/commcoach/voxlens/transcribe"
	"github.com/commcoach/voxlens/vocal"
)

const needsInputGuidance = "Provide a message text, an audio recording, or both."

// Config holds engine configuration
type Config struct {
	Decoder *transcode.DecoderConfig `json:"decoder"`
}

// DefaultConfig returns engine defaults tuned for spoken messages
func DefaultConfig() *Config {
	return &Config{
		Decoder: transcode.DefaultDecoderConfig(),
	}
}

// Analyzer is the engine entry point. Safe for sequential reuse; each call is
// self-contained and shares no mutable state with other calls.
type Analyzer struct {
	config      *Config
	decoder     *transcode.Decoder
	transcriber transcribe.Transcriber
	extractor   *vocal.FeatureExtractor
	scorer      *vocal.ProfileScorer
	classifier  *textstyle.Classifier
	logger      logging.Logger
}

// NewAnalyzer creates an analyzer. The transcriber may be nil, in which case
// any request carrying audio fails with a transcription error asking for
// typed text.
func NewAnalyzer(config *Config, transcriber transcribe.Transcriber) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Analyzer{
		config:      config,
		decoder:     transcode.NewDecoder(config.Decoder),
		transcriber: transcriber,
		extractor:   vocal.NewFeatureExtractor(),
		scorer:      vocal.NewProfileScorer(),
		classifier:  textstyle.NewClassifier(),
		logger: logging.WithFields(logging.Fields{
			"component": "analyzer",
		}),
	}
}

// AnalyzeCommunication diagnoses one communication sample. A missing input is
// reported through the result status, not an error; all real failures return
// a typed *EngineError.
func (a *Analyzer) AnalyzeCommunication(ctx context.Context, req Request) (*Result, error) {
	text := strings.TrimSpace(req.Text)
	audioPath := strings.TrimSpace(req.AudioPath)

	if text == "" && audioPath == "" {
		return &Result{
			Status:   StatusNeedsInput,
			Guidance: needsInputGuidance,
		}, nil
	}

	var vocalReport *vocal.ProfileScore
	transcribed := false

	if audioPath != "" {
		if err := a.decoder.ValidateSource(audioPath); err != nil {
			return nil, newEngineError(KindInputValidation,
				"audio source was rejected",
				"Check the file path and use one of the accepted formats.",
				err)
		}

		// The recording is the authoritative message: its transcript replaces
		// any typed text, and a transcription failure aborts the request even
		// when text was typed.
		transcript, err := a.transcribeSource(ctx, audioPath)
		if err != nil {
			return nil, err
		}
		text = transcript
		transcribed = true

		vocalReport = a.extractVocalReport(ctx, audioPath)
	}

	if text == "" {
		return &Result{
			Status:   StatusNeedsInput,
			Guidance: needsInputGuidance,
		}, nil
	}

	styleAnalysis := a.classifier.Classify(text)
	if styleAnalysis == nil || styleAnalysis.Style == "" {
		return nil, newEngineError(KindClassification,
			"classifier produced no style", "", nil)
	}

	fuseVocalSignals(styleAnalysis, vocalReport)

	result := &Result{
		Status:               StatusAnalyzed,
		OriginalMessage:      text,
		TranscribedFromAudio: transcribed,
		StyleAnalysis:        styleAnalysis,
		VocalReport:          vocalReport,
		Coaching:             buildCoaching(styleAnalysis.Style, vocalReport),
		RewrittenMessage:     rewriteMessage(text, styleAnalysis.Style),
		RelationshipTip:      relationshipTip(req.Relationship),
	}

	a.logger.Info("Analysis completed", logging.Fields{
		"style":       string(styleAnalysis.Style),
		"overall":     styleAnalysis.OverallScore,
		"transcribed": transcribed,
		"has_vocal":   vocalReport != nil && vocalReport.Status == vocal.StatusSuccess,
	})

	return result, nil
}

// transcribeSource produces text for an audio-only request. Non-WAV sources
// are transcoded to a scoped temp WAV first.
func (a *Analyzer) transcribeSource(ctx context.Context, audioPath string) (string, error) {
	if a.transcriber == nil {
		return "", newEngineError(KindTranscription,
			"no transcription service is configured",
			"Type your message instead.",
			nil)
	}

	wavPath := audioPath
	if !transcode.IsWAV(audioPath) {
		converted, cleanup, err := a.decoder.TranscodeToWAV(ctx, audioPath)
		if err != nil {
			return "", newEngineError(KindTranscode,
				"could not convert the recording",
				"Try uploading a WAV file instead.",
				err)
		}
		defer cleanup()
		wavPath = converted
	}

	transcript, err := a.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		if errors.Is(err, transcribe.ErrNoSpeech) {
			return "", newEngineError(KindTranscription,
				"no speech was detected in the recording",
				"Type your message instead.",
				err)
		}
		return "", newEngineError(KindTranscription,
			"transcription failed",
			"Type your message instead.",
			err)
	}

	return transcript, nil
}

// extractVocalReport decodes the source and scores the delivery. Any failure
// here degrades to a limited report; the text diagnosis still proceeds.
func (a *Analyzer) extractVocalReport(ctx context.Context, audioPath string) *vocal.ProfileScore {
	buf, err := a.decoder.DecodeFile(ctx, audioPath)
	if err != nil {
		a.logger.Warn("Vocal analysis unavailable, continuing text-only", logging.Fields{
			"reason": err.Error(),
		})
		return vocal.LimitedScore()
	}

	profile, err := a.extractor.Extract(buf)
	if err != nil {
		a.logger.Warn("Feature extraction failed, continuing text-only", logging.Fields{
			"reason": err.Error(),
		})
		return vocal.LimitedScore()
	}

	return a.scorer.Score(profile)
}
