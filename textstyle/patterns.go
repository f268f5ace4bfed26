package textstyle

import (
	"regexp"
)

// Rule is one phrase-level pattern with the human-readable description that
// gets appended to issues or strengths when it matches
type Rule struct {
	Pattern     *regexp.Regexp
	Description string
}

// The four pattern tables are ordered and data-driven so coverage and
// precedence are defined once. Each rule matches at most once per message.

var aggressiveRules = []Rule{
	{regexp.MustCompile(`\byou always\b`), "Absolute blame ('you always')"},
	{regexp.MustCompile(`\byou never\b`), "Absolute blame ('you never')"},
	{regexp.MustCompile(`\byou should\b`), "Commanding tone"},
	{regexp.MustCompile(`\bwhy didn'?t you\b`), "Accusatory question"},
	{regexp.MustCompile(`\bwhat'?s wrong with you\b`), "Personal attack"},
	{regexp.MustCompile(`\byou need to\b`), "Demanding language"},
	{regexp.MustCompile(`\byou'?re (being )?(stupid|lazy|useless)\b`), "Direct insult"},
}

var passiveRules = []Rule{
	{regexp.MustCompile(`\bmaybe we could\b`), "Overly tentative"},
	{regexp.MustCompile(`\bi guess\b`), "Lacks confidence"},
	{regexp.MustCompile(`\bsorry,? but\b`), "Unnecessary apologizing"},
	{regexp.MustCompile(`\bif that'?s okay\b`), "Excessive permission-seeking"},
	{regexp.MustCompile(`\bjust think\b`), "'Just' minimizes your opinion"},
	{regexp.MustCompile(`\bi'?m no expert\b`), "Self-deprecating"},
	{regexp.MustCompile(`\bkind of\b|\bsort of\b`), "Hedging language"},
}

var assertiveRules = []Rule{
	{regexp.MustCompile(`\bi feel\b.*\bwhen\b`), "Great 'I feel when' statement"},
	{regexp.MustCompile(`\bi think\b`), "Owning your opinion"},
	{regexp.MustCompile(`\bi believe\b`), "Confident stance"},
	{regexp.MustCompile(`\bi need\b`), "Clear need expression"},
	{regexp.MustCompile(`\bi'?d like\b`), "Polite but direct"},
	{regexp.MustCompile(`\blet'?s\b`), "Collaborative language"},
	{regexp.MustCompile(`\bwhat do you think\b`), "Inviting dialogue"},
}

var empatheticRules = []Rule{
	{regexp.MustCompile(`\bi understand\b`), "Shows understanding"},
	{regexp.MustCompile(`\bi hear you\b`), "Active listening"},
	{regexp.MustCompile(`\bthat must be\b`), "Emotional validation"},
	{regexp.MustCompile(`\bhow do you feel\b`), "Checking in on emotions"},
	{regexp.MustCompile(`\bi appreciate\b`), "Showing gratitude"},
}

// fillerVocabulary lists the filler tokens that erode clarity. Multi-word
// entries are matched as phrases.
var fillerVocabulary = []string{
	"um", "uh", "like", "you know", "basically", "literally", "actually", "honestly",
}

var fillerPatterns = compileFillerPatterns()

func compileFillerPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(fillerVocabulary))
	for i, word := range fillerVocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return patterns
}
