package filters

// DCRemoval implements a DC blocking filter (first-order high-pass) to remove
// the DC component from audio signals before feature extraction. A DC offset
// biases RMS energy and breaks zero-crossing counts.
//
// References:
//   - Julius O. Smith III, "Introduction to Digital Filters with Audio Applications"
//     https://ccrma.stanford.edu/~jos/filters/DC_Blocker.html
type DCRemoval struct {
	poleLocation float64 // R parameter (0 < R < 1)

	// State variables
	x1 float64 // Previous input sample x[n-1]
	y1 float64 // Previous output sample y[n-1]
}

// NewDCRemoval creates a new DC removal filter with default settings.
// A pole location of 0.995 gives a cutoff of roughly 8 Hz at 44.1 kHz.
func NewDCRemoval() *DCRemoval {
	return &DCRemoval{
		poleLocation: 0.995,
	}
}

// NewDCRemovalWithPole creates a DC removal filter with an explicit pole
// location. Closer to 1 means a lower cutoff (more DC blocking).
func NewDCRemovalWithPole(poleLocation float64) *DCRemoval {
	return &DCRemoval{
		poleLocation: poleLocation,
	}
}

// Process filters a whole buffer, returning a new slice. Filter state is
// reset first so independent buffers don't bleed into each other.
func (dc *DCRemoval) Process(signal []float64) []float64 {
	dc.Reset()

	output := make([]float64, len(signal))
	for i, x := range signal {
		// y[n] = x[n] - x[n-1] + R * y[n-1]
		y := x - dc.x1 + dc.poleLocation*dc.y1
		dc.x1 = x
		dc.y1 = y
		output[i] = y
	}

	return output
}

// Reset clears the filter state
func (dc *DCRemoval) Reset() {
	dc.x1 = 0
	dc.y1 = 0
}
