package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commcoach/voxlens/textstyle"
	"github.com/commcoach/voxlens/vocal"
)

func successReport(tone vocal.EmotionalTone) *vocal.ProfileScore {
	return &vocal.ProfileScore{
		Status:          vocal.StatusSuccess,
		Clarity:         &vocal.DimensionScore{Level: vocal.ClarityClear, Score: 9},
		ConfidenceScore: 8,
		EmotionalTone:   tone,
	}
}

func baseAnalysis() *textstyle.StyleAnalysis {
	a := &textstyle.StyleAnalysis{
		Style:           textstyle.StyleNeutral,
		ToneScore:       6,
		ClarityScore:    5,
		ConfidenceScore: 4,
		EmpathyScore:    5,
	}
	a.RecomputeOverall()
	return a
}

func TestFusionOverridesClarityAndConfidence(t *testing.T) {
	analysis := baseAnalysis()

	fuseVocalSignals(analysis, successReport(vocal.ToneNeutral))

	assert.Equal(t, 9, analysis.ClarityScore)
	assert.Equal(t, 8, analysis.ConfidenceScore)
	assert.Equal(t, 6, analysis.ToneScore)
	assert.Equal(t, 7, analysis.OverallScore) // round((6+9+8+5)/4)
}

func TestFusionAgitatedClampsTone(t *testing.T) {
	analysis := baseAnalysis()
	analysis.ToneScore = 8

	fuseVocalSignals(analysis, successReport(vocal.ToneAgitated))

	assert.Equal(t, 4, analysis.ToneScore)
	assert.Contains(t, analysis.Issues, "Voice sounds agitated or stressed")
}

func TestFusionAgitatedKeepsLowerTone(t *testing.T) {
	analysis := baseAnalysis()
	analysis.ToneScore = 3

	fuseVocalSignals(analysis, successReport(vocal.ToneAgitated))

	assert.Equal(t, 3, analysis.ToneScore)
}

func TestFusionCalmRaisesTone(t *testing.T) {
	analysis := baseAnalysis()
	analysis.ToneScore = 5

	fuseVocalSignals(analysis, successReport(vocal.ToneCalm))

	assert.Equal(t, 7, analysis.ToneScore)
	assert.Contains(t, analysis.Strengths, "Calm vocal tone")
}

func TestFusionCalmKeepsHigherTone(t *testing.T) {
	analysis := baseAnalysis()
	analysis.ToneScore = 9

	fuseVocalSignals(analysis, successReport(vocal.ToneCalm))

	assert.Equal(t, 9, analysis.ToneScore)
}

func TestFusionEngagedAddsStrengthOnly(t *testing.T) {
	analysis := baseAnalysis()

	fuseVocalSignals(analysis, successReport(vocal.ToneEngaged))

	assert.Equal(t, 6, analysis.ToneScore)
	assert.Contains(t, analysis.Strengths, "Engaged, enthusiastic delivery")
}

func TestFusionNeverTouchesEmpathy(t *testing.T) {
	analysis := baseAnalysis()
	analysis.EmpathyScore = 2

	fuseVocalSignals(analysis, successReport(vocal.ToneCalm))

	assert.Equal(t, 2, analysis.EmpathyScore)
}

func TestFusionIgnoresLimitedReport(t *testing.T) {
	analysis := baseAnalysis()
	before := *analysis

	fuseVocalSignals(analysis, vocal.LimitedScore())
	assert.Equal(t, before, *analysis)

	fuseVocalSignals(analysis, nil)
	assert.Equal(t, before, *analysis)
}
