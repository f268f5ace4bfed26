package temporal

import (
	"math"
)

// OnsetDetection detects acoustic event onsets (syllable-like energy bursts)
// in speech signals using an energy-based method
type OnsetDetection struct {
	energy *Energy
}

// NewOnsetDetection creates a new onset detector
func NewOnsetDetection() *OnsetDetection {
	return &OnsetDetection{
		energy: NewEnergy(512, 256),
	}
}

// DetectOnsetsEnergy detects onsets as peaks in the positive energy
// derivative. Returns onset positions as sample indices.
func (od *OnsetDetection) DetectOnsetsEnergy(signal []float64, sampleRate int, threshold, minInterval float64) []int {
	if len(signal) == 0 {
		return []int{}
	}

	envelope := od.energy.ComputeRMSFrames(signal)
	if len(envelope) < 2 {
		return []int{}
	}

	// Only positive energy changes indicate onsets
	energyDiff := make([]float64, len(envelope)-1)
	for i := 0; i < len(energyDiff); i++ {
		diff := envelope[i+1] - envelope[i]
		if diff > 0 {
			energyDiff[i] = diff
		}
	}

	onsetFrames := od.findPeaks(energyDiff, threshold, minInterval, od.energy.HopSize(), sampleRate)

	onsetSamples := make([]int, len(onsetFrames))
	for i, frameIdx := range onsetFrames {
		onsetSamples[i] = od.energy.FrameToSample(frameIdx)
	}

	return onsetSamples
}

// ComputeOnsetRate calculates onset density (onsets per second) using an
// adaptive threshold derived from the energy derivative statistics
func (od *OnsetDetection) ComputeOnsetRate(signal []float64, sampleRate int) float64 {
	if len(signal) == 0 || sampleRate <= 0 {
		return 0.0
	}

	envelope := od.energy.ComputeRMSFrames(signal)
	if len(envelope) < 2 {
		return 0.0
	}

	energyDiff := make([]float64, len(envelope)-1)
	for i := 0; i < len(energyDiff); i++ {
		diff := envelope[i+1] - envelope[i]
		if diff > 0 {
			energyDiff[i] = diff
		}
	}

	threshold := od.AdaptiveThreshold(energyDiff)
	minInterval := 0.05 // 50ms minimum between events

	onsets := od.findPeaks(energyDiff, threshold, minInterval, od.energy.HopSize(), sampleRate)

	duration := float64(len(signal)) / float64(sampleRate)
	if duration == 0 {
		return 0.0
	}

	return float64(len(onsets)) / duration
}

// findPeaks finds local maxima above threshold with a minimum spacing
func (od *OnsetDetection) findPeaks(flux []float64, threshold, minInterval float64, hopSize, sampleRate int) []int {
	if len(flux) < 3 {
		return []int{}
	}

	minIntervalFrames := int(minInterval * float64(sampleRate) / float64(hopSize))

	var peaks []int
	lastPeakFrame := -minIntervalFrames // Allow first peak

	for i := 1; i < len(flux)-1; i++ {
		if flux[i] > flux[i-1] &&
			flux[i] > flux[i+1] &&
			flux[i] >= threshold &&
			i-lastPeakFrame >= minIntervalFrames {
			peaks = append(peaks, i)
			lastPeakFrame = i
		}
	}

	return peaks
}

// AdaptiveThreshold calculates a detection threshold from the derivative
// statistics: mean + one standard deviation. Speech onsets are softer than
// musical transients, so a two-sigma threshold misses syllables.
func (od *OnsetDetection) AdaptiveThreshold(flux []float64) float64 {
	if len(flux) == 0 {
		return 0.0
	}

	mean := 0.0
	for _, val := range flux {
		mean += val
	}
	mean /= float64(len(flux))

	variance := 0.0
	for _, val := range flux {
		diff := val - mean
		variance += diff * diff
	}
	variance /= float64(len(flux))

	return mean + math.Sqrt(variance)
}
