package spectral

import (
	"gonum.org/v1/gonum/stat"
)

// ZeroCrossingRate calculates zero crossing rate as a speech clarity proxy.
// High ZCR indicates fricatives/unvoiced speech, low ZCR indicates voiced speech.
type ZeroCrossingRate struct {
	frameSize int
	hopSize   int
}

// NewZeroCrossingRate creates a new zero crossing rate calculator
func NewZeroCrossingRate() *ZeroCrossingRate {
	return &ZeroCrossingRate{
		frameSize: 2048, // Default frame size
		hopSize:   512,  // Default hop size
	}
}

// NewZeroCrossingRateWithParams creates calculator with custom parameters
func NewZeroCrossingRateWithParams(frameSize, hopSize int) *ZeroCrossingRate {
	return &ZeroCrossingRate{
		frameSize: frameSize,
		hopSize:   hopSize,
	}
}

// ComputeNormalized calculates normalized ZCR (0-1 range) for a single frame.
// Normalized by the maximum possible crossings (alternating signal).
func (zcr *ZeroCrossingRate) ComputeNormalized(frame []float64) float64 {
	if len(frame) < 2 {
		return 0.0
	}

	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] >= 0 && frame[i] < 0) || (frame[i-1] < 0 && frame[i] >= 0) {
			crossings++
		}
	}

	maxCrossings := len(frame) - 1
	return float64(crossings) / float64(maxCrossings)
}

// ComputeFrames calculates normalized ZCR for overlapping frames of a signal
func (zcr *ZeroCrossingRate) ComputeFrames(signal []float64) []float64 {
	if len(signal) < zcr.frameSize {
		return []float64{}
	}

	numFrames := (len(signal)-zcr.frameSize)/zcr.hopSize + 1
	zcrValues := make([]float64, numFrames)

	for i := 0; i < numFrames; i++ {
		startIdx := i * zcr.hopSize
		endIdx := startIdx + zcr.frameSize

		if endIdx > len(signal) {
			break
		}

		frame := signal[startIdx:endIdx]
		zcrValues[i] = zcr.ComputeNormalized(frame)
	}

	return zcrValues
}

// MeanRate computes the mean normalized ZCR across all frames of a signal.
// Falls back to a whole-signal computation when the signal is shorter than
// one frame.
func (zcr *ZeroCrossingRate) MeanRate(signal []float64) float64 {
	zcrValues := zcr.ComputeFrames(signal)
	if len(zcrValues) == 0 {
		return zcr.ComputeNormalized(signal)
	}

	return stat.Mean(zcrValues, nil)
}
