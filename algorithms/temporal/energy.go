package temporal

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Energy computes short-time energy features used for volume, onset and
// pause analysis
type Energy struct {
	frameSize int
	hopSize   int
}

// NewEnergy creates a new energy calculator
func NewEnergy(frameSize, hopSize int) *Energy {
	return &Energy{
		frameSize: frameSize,
		hopSize:   hopSize,
	}
}

// ComputeRMSFrames calculates RMS energy for overlapping frames
func (e *Energy) ComputeRMSFrames(signal []float64) []float64 {
	if len(signal) < e.frameSize || e.hopSize <= 0 || e.frameSize <= 0 {
		return []float64{}
	}

	numFrames := (len(signal)-e.frameSize)/e.hopSize + 1
	energies := make([]float64, numFrames)

	for i := 0; i < numFrames; i++ {
		startIdx := i * e.hopSize
		endIdx := startIdx + e.frameSize

		if endIdx > len(signal) {
			break
		}

		sumSquares := 0.0
		for j := startIdx; j < endIdx; j++ {
			sumSquares += signal[j] * signal[j]
		}
		energies[i] = math.Sqrt(sumSquares / float64(e.frameSize))
	}

	return energies
}

// Statistics calculates mean and standard deviation of frame energies
func (e *Energy) Statistics(energies []float64) (mean, stdDev float64) {
	if len(energies) == 0 {
		return 0.0, 0.0
	}

	mean = stat.Mean(energies, nil)
	if len(energies) > 1 {
		stdDev = stat.StdDev(energies, nil)
	}

	return mean, stdDev
}

// FrameToSample converts a frame index to its starting sample index
func (e *Energy) FrameToSample(frameIdx int) int {
	return frameIdx * e.hopSize
}

// FrameSize returns the configured frame size
func (e *Energy) FrameSize() int {
	return e.frameSize
}

// HopSize returns the configured hop size
func (e *Energy) HopSize() int {
	return e.hopSize
}
