package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commcoach/voxlens/textstyle"
	"github.com/commcoach/voxlens/vocal"
)

func TestRewriteAggressiveMessage(t *testing.T) {
	rewritten := rewriteMessage("You always ignore my suggestions", textstyle.StyleAggressive)

	require.NotEmpty(t, rewritten)
	assert.Equal(t, "when this happens, I feel ignore my suggestions", rewritten)
}

func TestRewriteRemovesAggressivePatterns(t *testing.T) {
	c := textstyle.NewClassifier()
	original := "You always interrupt me and you never apologize."

	analysis := c.Classify(original)
	require.Equal(t, textstyle.StyleAggressive, analysis.Style)

	rewritten := rewriteMessage(original, analysis.Style)
	require.NotEmpty(t, rewritten)

	// The reworded message no longer reads as aggressive
	reclassified := c.Classify(rewritten)
	assert.False(t, textstyle.IsAggressive(reclassified.Style))
}

func TestRewritePassiveMessage(t *testing.T) {
	tests := []struct {
		original string
		expected string
	}{
		{"I guess we can start", "I think we can start"},
		{"Maybe we could meet earlier", "I suggest we meet earlier"},
		{"Sorry, but I need the room", "I need the room"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, rewriteMessage(tt.original, textstyle.StylePassive))
	}
}

func TestRewriteSkipsStylesWithoutRules(t *testing.T) {
	assert.Empty(t, rewriteMessage("I think this works", textstyle.StyleAssertive))
	assert.Empty(t, rewriteMessage("The report is ready", textstyle.StyleNeutral))
}

func TestRewriteReturnsEmptyWhenNothingChanged(t *testing.T) {
	assert.Empty(t, rewriteMessage("This is terrible work", textstyle.StyleAggressive))
}

func TestVocalCoachingLines(t *testing.T) {
	report := &vocal.ProfileScore{
		Status:  vocal.StatusSuccess,
		Volume:  &vocal.DimensionScore{Level: vocal.VolumeLoud},
		Pace:    &vocal.DimensionScore{Level: vocal.PaceFast},
		Pitch:   &vocal.DimensionScore{Level: vocal.VarietyMonotone},
		Clarity: &vocal.DimensionScore{Level: vocal.ClarityUnclear},
		Pauses:  &vocal.DimensionScore{Level: vocal.PausesManyLong},
	}

	lines := vocalCoaching(report)
	assert.Len(t, lines, 5)
}

func TestVocalCoachingSkipsOptimalDelivery(t *testing.T) {
	report := &vocal.ProfileScore{
		Status:  vocal.StatusSuccess,
		Volume:  &vocal.DimensionScore{Level: vocal.VolumeModerate},
		Pace:    &vocal.DimensionScore{Level: vocal.PaceModerate},
		Pitch:   &vocal.DimensionScore{Level: vocal.VarietyExpressive},
		Clarity: &vocal.DimensionScore{Level: vocal.ClarityClear},
		Pauses:  &vocal.DimensionScore{Level: vocal.PausesNatural},
	}

	assert.Empty(t, vocalCoaching(report))
}

func TestVocalCoachingIgnoresLimitedReports(t *testing.T) {
	assert.Empty(t, vocalCoaching(nil))
	assert.Empty(t, vocalCoaching(vocal.LimitedScore()))
}

func TestBuildCoachingCombinesStyleAndDelivery(t *testing.T) {
	report := &vocal.ProfileScore{
		Status:  vocal.StatusSuccess,
		Volume:  &vocal.DimensionScore{Level: vocal.VolumeSoft},
		Pace:    &vocal.DimensionScore{Level: vocal.PaceModerate},
		Pitch:   &vocal.DimensionScore{Level: vocal.VarietyExpressive},
		Clarity: &vocal.DimensionScore{Level: vocal.ClarityClear},
		Pauses:  &vocal.DimensionScore{Level: vocal.PausesNatural},
	}

	coaching := buildCoaching(textstyle.StylePassive, report)

	// Style advice, then the headed delivery block with one line
	styleLines := len(styleCoaching[textstyle.StylePassive])
	assert.Len(t, coaching, styleLines+2)
	assert.Equal(t, vocalCoachingHeader, coaching[styleLines])
}

func TestBuildCoachingOmitsHeaderWithoutDeliveryAdvice(t *testing.T) {
	coaching := buildCoaching(textstyle.StyleNeutral, vocal.LimitedScore())

	assert.Equal(t, styleCoaching[textstyle.StyleNeutral], coaching)
	assert.NotContains(t, coaching, vocalCoachingHeader)
}

func TestEveryStyleHasCoaching(t *testing.T) {
	styles := []textstyle.Style{
		textstyle.StyleAggressive,
		textstyle.StyleSomewhatAggressive,
		textstyle.StylePassive,
		textstyle.StyleAssertive,
		textstyle.StyleAssertiveEmpathetic,
		textstyle.StyleNeutral,
	}

	for _, style := range styles {
		assert.NotEmpty(t, styleCoaching[style], "style %s", style)
	}
}

func TestRelationshipTips(t *testing.T) {
	for _, rel := range []string{
		RelationshipBoss, RelationshipColleague, RelationshipPartner,
		RelationshipFamily, RelationshipFriend,
	} {
		assert.NotEmpty(t, relationshipTip(rel), "relationship %s", rel)
	}

	assert.Empty(t, relationshipTip("stranger"))
	assert.Empty(t, relationshipTip(""))
}
