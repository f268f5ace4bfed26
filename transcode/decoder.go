package transcode

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/commcoach/voxlens/logging"
)

// Typed failure kinds so callers can surface distinct, user-actionable errors
var (
	ErrSourceNotFound    = errors.New("audio source not found")
	ErrEmptySource       = errors.New("audio source is empty")
	ErrSourceTooLarge    = errors.New("audio source exceeds maximum size")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrTranscodeFailed   = errors.New("audio transcode failed")
)

// AudioBuffer represents decoded single-channel audio. It lives for the
// duration of one analysis call and is never persisted.
type AudioBuffer struct {
	Samples    []float64     `json:"-"`
	SampleRate int           `json:"sample_rate"`
	Duration   time.Duration `json:"duration"`
}

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	TargetSampleRate   int           `json:"target_sample_rate"`
	FFmpegPath         string        `json:"ffmpeg_path"`  // Path to ffmpeg binary
	FFprobePath        string        `json:"ffprobe_path"` // Path to ffprobe binary
	Timeout            time.Duration `json:"timeout"`      // Timeout for ffmpeg operations
	MaxSourceBytes     int64         `json:"max_source_bytes"`
	AcceptedExtensions []string      `json:"accepted_extensions"`
}

// DefaultDecoderConfig returns default decoder configuration tuned for speech
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		TargetSampleRate: 16000, // Mono speech band
		FFmpegPath:       "ffmpeg",
		FFprobePath:      "ffprobe",
		Timeout:          30 * time.Second,
		MaxSourceBytes:   50 * 1024 * 1024,
		AcceptedExtensions: []string{
			".wav", ".mp3", ".m4a", ".mp4", ".ogg", ".flac",
		},
	}
}

// AudioMetadata holds detected audio properties from FFprobe
type AudioMetadata struct {
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Codec      string  `json:"codec"`
	Duration   float64 `json:"duration"`
	Bitrate    int     `json:"bitrate"`
}

// Decoder handles audio decoding using FFmpeg
type Decoder struct {
	config *DecoderConfig
}

// NewDecoder creates a new audio decoder
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{config: config}
}

// Config returns the decoder configuration
func (d *Decoder) Config() *DecoderConfig {
	return d.config
}

// IsWAV reports whether the path already carries the canonical container
func IsWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// ValidateSource checks the source against the format whitelist and the size
// guards. It runs before any decode work so oversized or unsupported inputs
// fail fast without exec'ing ffmpeg.
func (d *Decoder) ValidateSource(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(d.config.AcceptedExtensions, ext) {
		return fmt.Errorf("%w: %q (accepted: %s)",
			ErrUnsupportedFormat, ext, strings.Join(d.config.AcceptedExtensions, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return fmt.Errorf("stat audio source: %w", err)
	}

	if info.Size() == 0 {
		return ErrEmptySource
	}

	if d.config.MaxSourceBytes > 0 && info.Size() > d.config.MaxSourceBytes {
		return fmt.Errorf("%w: %.1fMB (max %dMB)",
			ErrSourceTooLarge,
			float64(info.Size())/(1024*1024),
			d.config.MaxSourceBytes/(1024*1024))
	}

	return nil
}

// DecodeFile decodes an audio file into a mono sample buffer at the target
// sample rate
func (d *Decoder) DecodeFile(ctx context.Context, filename string) (*AudioBuffer, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "audio_decoder",
		"function":  "DecodeFile",
		"filename":  filename,
	})

	logger.Debug("Starting audio file decode")

	metadata, err := d.probeAudioFile(ctx, filename)
	if err != nil {
		logger.Error(err, "Failed to probe audio file")
		return nil, err
	}

	logger.Debug("Audio metadata detected", logging.Fields{
		"input_sample_rate": metadata.SampleRate,
		"input_channels":    metadata.Channels,
		"input_codec":       metadata.Codec,
		"input_duration":    metadata.Duration,
	})

	args := []string{
		"-i", filename,
		"-vn",         // No video
		"-f", "f64le", // Output raw float64 little-endian
		"-ac", "1", // Mono
		"-ar", strconv.Itoa(d.config.TargetSampleRate),
		"-v", "error",
		"pipe:1",
	}

	cmdCtx := ctx
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, d.config.FFmpegPath, args...)

	logger.Debug("Running ffmpeg command", logging.Fields{
		"args": strings.Join(args, " "),
	})

	output, err := cmd.Output()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			logger.Error(err, "Ffmpeg decode failed", logging.Fields{
				"stderr": string(exitError.Stderr),
			})
			return nil, fmt.Errorf("ffmpeg decode failed: %w, stderr: %s", err, string(exitError.Stderr))
		}
		return nil, fmt.Errorf("ffmpeg decode failed: %w", err)
	}

	samples := d.bytesToFloat64(output)
	if len(samples) == 0 {
		return nil, fmt.Errorf("no audio samples decoded")
	}

	duration := time.Duration(len(samples)) * time.Second / time.Duration(d.config.TargetSampleRate)

	logger.Debug("FFmpeg decode completed successfully", logging.Fields{
		"output_samples":     len(samples),
		"output_sample_rate": d.config.TargetSampleRate,
		"output_duration":    duration.Seconds(),
	})

	return &AudioBuffer{
		Samples:    samples,
		SampleRate: d.config.TargetSampleRate,
		Duration:   duration,
	}, nil
}

// TranscodeToWAV converts a whitelisted container into a temporary mono WAV
// file for the transcription collaborator. The returned cleanup function must
// be called (typically deferred) so the temporary file is released on every
// exit path; on transcode failure the file is already removed.
func (d *Decoder) TranscodeToWAV(ctx context.Context, src string) (string, func(), error) {
	logger := logging.WithFields(logging.Fields{
		"component": "audio_decoder",
		"function":  "TranscodeToWAV",
		"source":    src,
	})

	tmp, err := os.CreateTemp("", "voxlens-*.wav")
	if err != nil {
		return "", nil, fmt.Errorf("create temp wav: %w", err)
	}
	wavPath := tmp.Name()
	tmp.Close()

	cleanup := func() {
		if err := os.Remove(wavPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove temporary wav", logging.Fields{
				"path": wavPath,
			})
		}
	}

	args := []string{
		"-y",
		"-i", src,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(d.config.TargetSampleRate),
		"-v", "error",
		wavPath,
	}

	cmdCtx := ctx
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, d.config.FFmpegPath, args...)

	logger.Debug("Running ffmpeg transcode", logging.Fields{
		"args": strings.Join(args, " "),
	})

	if output, err := cmd.CombinedOutput(); err != nil {
		cleanup()

		if errors.Is(err, exec.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: ffmpeg is not installed", ErrTranscodeFailed)
		}

		logger.Error(err, "Ffmpeg transcode failed", logging.Fields{
			"stderr": string(output),
		})
		return "", nil, fmt.Errorf("%w: %s", ErrTranscodeFailed, strings.TrimSpace(string(output)))
	}

	return wavPath, cleanup, nil
}

// probeAudioFile uses ffprobe to get audio information from a file
func (d *Decoder) probeAudioFile(ctx context.Context, filename string) (*AudioMetadata, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "a:0", // First audio stream only
		filename,
	}

	cmdCtx := ctx
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, d.config.FFprobePath, args...)

	output, err := cmd.Output()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("ffprobe failed: %w, stderr: %s", err, string(exitError.Stderr))
		}
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return d.parseFFprobeOutput(output)
}

// parseFFprobeOutput parses ffprobe JSON to extract audio metadata
func (d *Decoder) parseFFprobeOutput(jsonData []byte) (*AudioMetadata, error) {
	var probe struct {
		Streams []struct {
			CodecType  string `json:"codec_type"`
			CodecName  string `json:"codec_name"`
			SampleRate string `json:"sample_rate"`
			Channels   int    `json:"channels"`
			Duration   string `json:"duration"`
			BitRate    string `json:"bit_rate"`
		} `json:"streams"`
	}

	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	if len(probe.Streams) == 0 {
		return nil, fmt.Errorf("no audio streams found")
	}

	stream := probe.Streams[0]

	if stream.CodecType != "audio" {
		return nil, fmt.Errorf("stream is not audio type: %s", stream.CodecType)
	}

	sampleRate, err := strconv.Atoi(stream.SampleRate)
	if err != nil {
		sampleRate = 44100 // Fallback to common sample rate
	}

	duration, err := strconv.ParseFloat(stream.Duration, 64)
	if err != nil {
		duration = 0
	}

	bitrate, err := strconv.Atoi(stream.BitRate)
	if err != nil {
		bitrate = 0
	}

	if stream.Channels <= 0 || stream.Channels > 8 {
		return nil, fmt.Errorf("invalid channel count: %d", stream.Channels)
	}

	return &AudioMetadata{
		SampleRate: sampleRate,
		Channels:   stream.Channels,
		Codec:      stream.CodecName,
		Duration:   duration,
		Bitrate:    bitrate,
	}, nil
}

// bytesToFloat64 converts raw float64 bytes to []float64
func (d *Decoder) bytesToFloat64(data []byte) []float64 {
	if len(data)%8 != 0 {
		// Trim to multiple of 8 bytes
		data = data[:len(data)-(len(data)%8)]
	}

	if len(data) == 0 {
		return nil
	}

	sampleCount := len(data) / 8
	samples := make([]float64, sampleCount)

	for i := 0; i < sampleCount; i++ {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		samples[i] = math.Float64frombits(bits)
	}

	return samples
}
