package temporal

import (
	"math"
)

// SilenceDetection segments a signal into voiced intervals for pause analysis
type SilenceDetection struct {
	energy *Energy
}

// NewSilenceDetection creates a new silence detector
func NewSilenceDetection() *SilenceDetection {
	return &SilenceDetection{
		energy: NewEnergy(2048, 512),
	}
}

// SplitVoiced returns [start, end) sample intervals whose frame level is
// within topDB of the loudest frame. Everything between intervals is treated
// as a pause.
func (sd *SilenceDetection) SplitVoiced(signal []float64, topDB float64) [][2]int {
	if len(signal) == 0 {
		return [][2]int{}
	}

	energies := sd.energy.ComputeRMSFrames(signal)
	if len(energies) == 0 {
		// Signal shorter than one frame: treat it as a single interval if it
		// carries any energy at all
		for _, s := range signal {
			if s != 0 {
				return [][2]int{{0, len(signal)}}
			}
		}
		return [][2]int{}
	}

	ref := 0.0
	for _, e := range energies {
		if e > ref {
			ref = e
		}
	}
	if ref == 0.0 {
		return [][2]int{}
	}

	// Frames louder than ref - topDB are voiced
	floor := ref * math.Pow(10.0, -topDB/20.0)

	hopSize := sd.energy.HopSize()
	frameSize := sd.energy.FrameSize()

	var intervals [][2]int
	currentStart := -1

	for i, e := range energies {
		voiced := e > floor

		if voiced && currentStart == -1 {
			currentStart = i * hopSize
		} else if !voiced && currentStart != -1 {
			end := i*hopSize + frameSize
			end = min(end, len(signal))
			intervals = append(intervals, [2]int{currentStart, end})
			currentStart = -1
		}
	}

	if currentStart != -1 {
		intervals = append(intervals, [2]int{currentStart, len(signal)})
	}

	return intervals
}

// VoicedDuration sums the lengths of voiced intervals in seconds
func (sd *SilenceDetection) VoicedDuration(intervals [][2]int, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0.0
	}

	total := 0
	for _, iv := range intervals {
		total += iv[1] - iv[0]
	}

	return float64(total) / float64(sampleRate)
}
