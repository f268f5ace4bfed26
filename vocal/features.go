// Package vocal computes delivery characteristics (volume, pace, pitch,
// clarity, pauses) from a decoded speech buffer and maps them to qualitative
// levels and scores.
package vocal

import (
	"errors"
	"fmt"
	"time"

	"github.com/commcoach/voxlens/algorithms/filters"
	"github.com/commcoach/voxlens/algorithms/spectral"
	"github.com/commcoach/voxlens/algorithms/temporal"
	"github.com/commcoach/voxlens/algorithms/tonal"
	"github.com/commcoach/voxlens/logging"
	"github.com/commcoach/voxlens/transcode"
)

// MinAnalyzableDuration is the shortest recording worth analyzing. Anything
// shorter cannot carry a meaningful pace or pause statistic.
const MinAnalyzableDuration = 500 * time.Millisecond

// pauseSplitTopDB marks frames quieter than 30 dB below the loudest frame as
// pauses
const pauseSplitTopDB = 30.0

var (
	// ErrTooShort means the buffer is under MinAnalyzableDuration
	ErrTooShort = errors.New("audio too short to analyze")

	// ErrSilentBuffer means the buffer carries no measurable energy
	ErrSilentBuffer = errors.New("audio buffer is silent")
)

// FeatureProfile holds the raw per-dimension statistics computed from one
// sample buffer. Immutable once computed.
type FeatureProfile struct {
	Duration time.Duration `json:"duration"`

	// Volume
	MeanEnergy   float64 `json:"mean_energy"`    // Mean short-frame RMS
	EnergyStdDev float64 `json:"energy_std_dev"` // Volume variability

	// Pace
	OnsetRate float64 `json:"onset_rate"` // Acoustic events per second

	// Pitch
	PitchMean   float64 `json:"pitch_mean"`
	PitchStdDev float64 `json:"pitch_std_dev"`
	PitchValid  bool    `json:"pitch_valid"` // False when no estimate survived gating

	// Clarity proxy
	MeanZCR float64 `json:"mean_zcr"` // Mean normalized zero-crossing rate

	// Pauses
	PauseCount      int     `json:"pause_count"`
	AvgPauseSeconds float64 `json:"avg_pause_seconds"`
}

// FeatureExtractor computes a FeatureProfile from an AudioBuffer
type FeatureExtractor struct {
	dc      *filters.DCRemoval
	energy  *temporal.Energy
	onsets  *temporal.OnsetDetection
	silence *temporal.SilenceDetection
	zcr     *spectral.ZeroCrossingRate
	pitch   *tonal.PitchTracker
	logger  logging.Logger
}

// NewFeatureExtractor creates a feature extractor with speech-tuned defaults
func NewFeatureExtractor() *FeatureExtractor {
	return &FeatureExtractor{
		dc:      filters.NewDCRemoval(),
		energy:  temporal.NewEnergy(2048, 512),
		onsets:  temporal.NewOnsetDetection(),
		silence: temporal.NewSilenceDetection(),
		zcr:     spectral.NewZeroCrossingRate(),
		pitch:   tonal.NewPitchTracker(),
		logger: logging.WithFields(logging.Fields{
			"component": "vocal_features",
		}),
	}
}

// Extract computes all five feature families from the buffer. The statistics
// are independent: a failed pitch estimate degrades to an unclear pitch state
// instead of failing the profile, but a silent or too-short buffer is an
// error.
func (fe *FeatureExtractor) Extract(buf *transcode.AudioBuffer) (*FeatureProfile, error) {
	if buf == nil || len(buf.Samples) == 0 {
		return nil, ErrSilentBuffer
	}

	if buf.Duration < MinAnalyzableDuration {
		return nil, fmt.Errorf("%w: %.2fs (min %.1fs)",
			ErrTooShort, buf.Duration.Seconds(), MinAnalyzableDuration.Seconds())
	}

	samples := fe.dc.Process(buf.Samples)

	// Volume
	energies := fe.energy.ComputeRMSFrames(samples)
	meanEnergy, energyStdDev := fe.energy.Statistics(energies)
	if len(energies) == 0 || meanEnergy == 0 {
		return nil, ErrSilentBuffer
	}

	// Pace
	onsetRate := fe.onsets.ComputeOnsetRate(samples, buf.SampleRate)

	// Pitch: gating can legitimately reject everything (whispered or noisy
	// input), which is an unclear state rather than a failure
	pitchMean, pitchStdDev := 0.0, 0.0
	pitchValid := false
	track, err := fe.pitch.Track(samples, buf.SampleRate)
	if err != nil {
		fe.logger.Debug("Pitch tracking unavailable", logging.Fields{
			"reason": err.Error(),
		})
	} else {
		salient := fe.pitch.SelectSalient(track)
		if len(salient) > 0 {
			pitchMean, pitchStdDev = tonal.PitchStatistics(salient)
			pitchValid = true
		}
	}

	// Clarity proxy
	meanZCR := fe.zcr.MeanRate(samples)

	// Pauses
	intervals := fe.silence.SplitVoiced(samples, pauseSplitTopDB)
	if len(intervals) == 0 {
		return nil, ErrSilentBuffer
	}
	pauseCount := len(intervals) - 1
	voiced := fe.silence.VoicedDuration(intervals, buf.SampleRate)
	avgPause := (buf.Duration.Seconds() - voiced) / float64(max(pauseCount, 1))
	avgPause = max(avgPause, 0)

	profile := &FeatureProfile{
		Duration:        buf.Duration,
		MeanEnergy:      meanEnergy,
		EnergyStdDev:    energyStdDev,
		OnsetRate:       onsetRate,
		PitchMean:       pitchMean,
		PitchStdDev:     pitchStdDev,
		PitchValid:      pitchValid,
		MeanZCR:         meanZCR,
		PauseCount:      pauseCount,
		AvgPauseSeconds: avgPause,
	}

	fe.logger.Debug("Feature extraction completed", logging.Fields{
		"duration":    buf.Duration.Seconds(),
		"mean_energy": meanEnergy,
		"onset_rate":  onsetRate,
		"pitch_valid": pitchValid,
		"mean_zcr":    meanZCR,
		"pause_count": pauseCount,
	})

	return profile, nil
}
