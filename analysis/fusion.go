package analysis

import (
	"github.com/commcoach/voxlens/textstyle"
	"github.com/commcoach/voxlens/vocal"
)

// fuseVocalSignals folds a successful vocal report into the text-derived
// analysis. Delivery measurements replace the text proxies for clarity and
// confidence; emotional tone can clamp the tone score. Empathy is a purely
// textual signal and is never overridden. Limited vocal reports leave the
// analysis untouched.
func fuseVocalSignals(analysis *textstyle.StyleAnalysis, report *vocal.ProfileScore) {
	if analysis == nil || report == nil || report.Status != vocal.StatusSuccess {
		return
	}

	analysis.ClarityScore = report.Clarity.Score
	analysis.ConfidenceScore = report.ConfidenceScore

	switch report.EmotionalTone {
	case vocal.ToneAgitated:
		analysis.ToneScore = min(analysis.ToneScore, 4)
		analysis.Issues = append(analysis.Issues, "Voice sounds agitated or stressed")
	case vocal.ToneCalm:
		analysis.ToneScore = max(analysis.ToneScore, 7)
		analysis.Strengths = append(analysis.Strengths, "Calm vocal tone")
	case vocal.ToneEngaged:
		analysis.Strengths = append(analysis.Strengths, "Engaged, enthusiastic delivery")
	}

	analysis.RecomputeOverall()
}
