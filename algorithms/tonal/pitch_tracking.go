package tonal

import (
	"fmt"
	"sort"

	"github.com/commcoach/voxlens/algorithms/spectral"
	"github.com/commcoach/voxlens/algorithms/windowing"
	"gonum.org/v1/gonum/stat"
)

// PitchTracker estimates a pitch contour by picking spectral peaks per STFT
// frame. Each retained peak carries its magnitude so low-confidence estimates
// can be gated out afterwards.
type PitchTracker struct {
	stft       *spectral.STFT
	window     *windowing.Hann
	windowSize int
	hopSize    int
	minFreq    float64
	maxFreq    float64
	relThresh  float64
}

// PitchTrack holds candidate pitch estimates and their spectral magnitudes
type PitchTrack struct {
	Pitches    []float64 `json:"pitches"`    // Candidate frequencies (Hz)
	Magnitudes []float64 `json:"magnitudes"` // Corresponding peak magnitudes
}

// NewPitchTracker creates a pitch tracker tuned for speech
func NewPitchTracker() *PitchTracker {
	windowSize := 2048
	return &PitchTracker{
		stft:       spectral.NewSTFT(),
		window:     windowing.NewHann(windowSize, false),
		windowSize: windowSize,
		hopSize:    512,
		minFreq:    150.0,  // Below typical speech fundamentals is noise
		maxFreq:    4000.0, // Above is fricative energy, not pitch
		relThresh:  0.1,    // Peaks below 10% of the frame maximum are ignored
	}
}

// Track computes the pitch track for a signal
func (pt *PitchTracker) Track(signal []float64, sampleRate int) (*PitchTrack, error) {
	if len(signal) < pt.windowSize {
		return nil, fmt.Errorf("signal too short for pitch tracking: %d samples", len(signal))
	}

	result, err := pt.stft.ComputeWithWindow(signal, pt.windowSize, pt.hopSize, sampleRate, pt.window)
	if err != nil {
		return nil, err
	}

	minBin := int(pt.minFreq / result.FreqResolution)
	maxBin := int(pt.maxFreq / result.FreqResolution)
	maxBin = min(maxBin, result.FreqBins-2)
	minBin = max(minBin, 1)

	track := &PitchTrack{}

	for _, magnitude := range result.Magnitude {
		if len(magnitude) == 0 {
			continue
		}

		frameMax := 0.0
		for _, m := range magnitude {
			if m > frameMax {
				frameMax = m
			}
		}
		if frameMax == 0.0 {
			continue
		}

		floor := frameMax * pt.relThresh

		for bin := minBin; bin <= maxBin; bin++ {
			if magnitude[bin] > magnitude[bin-1] &&
				magnitude[bin] > magnitude[bin+1] &&
				magnitude[bin] >= floor {
				freq := pt.interpolatePeak(magnitude, bin, result.FreqResolution)
				track.Pitches = append(track.Pitches, freq)
				track.Magnitudes = append(track.Magnitudes, magnitude[bin])
			}
		}
	}

	return track, nil
}

// interpolatePeak refines a peak bin to sub-bin accuracy using parabolic
// interpolation over the three points around the maximum
func (pt *PitchTracker) interpolatePeak(magnitude []float64, bin int, freqResolution float64) float64 {
	alpha := magnitude[bin-1]
	beta := magnitude[bin]
	gamma := magnitude[bin+1]

	denom := alpha - 2*beta + gamma
	offset := 0.0
	if denom != 0 {
		offset = 0.5 * (alpha - gamma) / denom
	}

	return (float64(bin) + offset) * freqResolution
}

// SelectSalient retains only pitch estimates whose magnitude reaches the
// median magnitude, suppressing low-confidence estimates. The comparison is
// inclusive: a track with uniform magnitudes keeps all of its estimates.
func (pt *PitchTracker) SelectSalient(track *PitchTrack) []float64 {
	if track == nil || len(track.Pitches) == 0 {
		return []float64{}
	}

	sorted := make([]float64, len(track.Magnitudes))
	copy(sorted, track.Magnitudes)
	sort.Float64s(sorted)

	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	var salient []float64
	for i, p := range track.Pitches {
		if track.Magnitudes[i] >= median {
			salient = append(salient, p)
		}
	}

	return salient
}

// PitchStatistics calculates mean and standard deviation of pitch values
func PitchStatistics(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0.0, 0.0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		stdDev = stat.StdDev(values, nil)
	}

	return mean, stdDev
}
