package analysis

import (
	"regexp"
	"strings"

	"github.com/commcoach/voxlens/textstyle"
	"github.com/commcoach/voxlens/vocal"
)

// styleCoaching holds the fixed advice lines per style family
var styleCoaching = map[textstyle.Style][]string{
	textstyle.StyleAggressive: {
		"Replace 'you always/never' with specific examples: 'yesterday when X happened'",
		"Use 'I' statements: 'I feel frustrated when...' instead of 'You make me...'",
		"Take a breath before responding. Aggression usually means you feel unheard.",
	},
	textstyle.StyleSomewhatAggressive: {
		"Watch for blame language. Describe the behavior, not the person.",
		"Try framing requests as 'I' statements to keep the other side listening.",
	},
	textstyle.StylePassive: {
		"Drop the qualifiers: say 'I think we should X' instead of 'maybe we could sort of X'",
		"Your opinion has value. State it directly, then invite feedback.",
		"Stop apologizing for having needs.",
	},
	textstyle.StyleAssertive: {
		"Good assertive communication. To level up: add empathy by acknowledging their view first.",
	},
	textstyle.StyleAssertiveEmpathetic: {
		"Excellent communication style. You balance confidence with empathy.",
	},
	textstyle.StyleNeutral: {
		"Try adding 'I' statements to make your communication more engaging and personal.",
	},
}

type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Deterministic substitutions, case-insensitive. Aggressive rewrites reframe
// blame as observation; passive rewrites strip the hedging.
var aggressiveRewrites = []rewriteRule{
	{regexp.MustCompile(`(?i)\byou always\b`), "when this happens, I feel"},
	{regexp.MustCompile(`(?i)\byou never\b`), "when this doesn't happen, I feel"},
	{regexp.MustCompile(`(?i)\byou should\b`), "I'd appreciate if you could"},
	{regexp.MustCompile(`(?i)\bwhy didn'?t you\b`), "I noticed"},
}

var passiveRewrites = []rewriteRule{
	{regexp.MustCompile(`(?i)\bi guess\b`), "I think"},
	{regexp.MustCompile(`(?i)\bmaybe we could\b`), "I suggest we"},
	{regexp.MustCompile(`(?i)\bsorry,?\s*but\s*`), ""},
}

// rewriteMessage applies the substitution table for the detected style and
// returns the reworded message, or the empty string when the style has no
// rewrite rules or nothing changed
func rewriteMessage(text string, style textstyle.Style) string {
	var rules []rewriteRule
	switch {
	case textstyle.IsAggressive(style):
		rules = aggressiveRewrites
	case style == textstyle.StylePassive:
		rules = passiveRewrites
	default:
		return ""
	}

	rewritten := text
	for _, rule := range rules {
		rewritten = rule.pattern.ReplaceAllString(rewritten, rule.replacement)
	}
	rewritten = strings.TrimSpace(rewritten)

	if rewritten == strings.TrimSpace(text) {
		return ""
	}
	return rewritten
}

const vocalCoachingHeader = "Vocal coaching:"

// buildCoaching assembles the advice list: style advice first, then a
// separately headed block with at most one line per sub-optimal delivery
// dimension
func buildCoaching(style textstyle.Style, report *vocal.ProfileScore) []string {
	coaching := make([]string, 0, 4)
	coaching = append(coaching, styleCoaching[style]...)

	if vocalLines := vocalCoaching(report); len(vocalLines) > 0 {
		coaching = append(coaching, vocalCoachingHeader)
		coaching = append(coaching, vocalLines...)
	}

	return coaching
}

// vocalCoaching turns sub-optimal delivery dimensions into advice lines
func vocalCoaching(report *vocal.ProfileScore) []string {
	if report == nil || report.Status != vocal.StatusSuccess {
		return nil
	}

	var lines []string

	switch report.Volume.Level {
	case vocal.VolumeLoud:
		lines = append(lines, "Lower your volume slightly. Loud delivery reads as aggressive even when the words are fine.")
	case vocal.VolumeSoft:
		lines = append(lines, "Project your voice more. Soft delivery undercuts your message.")
	}

	switch report.Pace.Level {
	case vocal.PaceFast:
		lines = append(lines, "Slow down. Fast speech sounds nervous and is harder to follow.")
	case vocal.PaceSlow:
		lines = append(lines, "Pick up the pace a little to hold attention.")
	}

	if report.Pitch.Level == vocal.VarietyMonotone {
		lines = append(lines, "Vary your pitch. Monotone delivery sounds disengaged.")
	}

	if report.Clarity.Level == vocal.ClarityUnclear {
		lines = append(lines, "Enunciate more clearly. Open your mouth wider and finish your words.")
	}

	switch report.Pauses.Level {
	case vocal.PausesManyLong:
		lines = append(lines, "Shorten your pauses. Long gaps sound uncertain.")
	case vocal.PausesFew:
		lines = append(lines, "Add short pauses so the listener can process.")
	}

	return lines
}
