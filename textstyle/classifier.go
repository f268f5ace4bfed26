// Package textstyle classifies the communication style of a message by
// scanning it against ordered pattern tables and scoring four dimensions:
// tone, clarity, confidence and empathy.
package textstyle

import (
	"math"
	"strings"
)

// Style is the categorical communication-style verdict for a message
type Style string

const (
	StyleAggressive          Style = "aggressive"
	StyleSomewhatAggressive  Style = "somewhat_aggressive"
	StylePassive             Style = "passive"
	StyleAssertive           Style = "assertive"
	StyleAssertiveEmpathetic Style = "assertive_empathetic"
	StyleNeutral             Style = "neutral"
)

// SignalSet holds the raw pattern-match counts and collected notes derived
// from one message string
type SignalSet struct {
	AggressiveCount int      `json:"aggressive_count"`
	PassiveCount    int      `json:"passive_count"`
	AssertiveCount  int      `json:"assertive_count"`
	EmpatheticCount int      `json:"empathetic_count"`
	Issues          []string `json:"issues"`
	Strengths       []string `json:"strengths"`
	FillerWords     []string `json:"filler_words"`
}

// StyleAnalysis is the scored classification of one message. It is created
// fresh per call and only mutated by the fusion pass.
type StyleAnalysis struct {
	Style           Style    `json:"style"`
	ToneScore       int      `json:"tone_score"`
	ClarityScore    int      `json:"clarity_score"`
	ConfidenceScore int      `json:"confidence_score"`
	EmpathyScore    int      `json:"empathy_score"`
	OverallScore    int      `json:"overall_score"`
	Issues          []string `json:"issues"`
	Strengths       []string `json:"strengths"`
	FillerWords     []string `json:"filler_words"`
}

// RecomputeOverall refreshes the overall score as the rounded mean of the
// four sub-scores. Must be called after any score override.
func (a *StyleAnalysis) RecomputeOverall() {
	sum := a.ToneScore + a.ClarityScore + a.ConfidenceScore + a.EmpathyScore
	a.OverallScore = int(math.Round(float64(sum) / 4.0))
}

// Classifier scans message text against the pattern tables. It is stateless:
// identical input always yields an identical analysis.
type Classifier struct{}

// NewClassifier creates a new text style classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Scan counts pattern matches per category and detects filler words
func (c *Classifier) Scan(text string) *SignalSet {
	lower := strings.ToLower(text)

	set := &SignalSet{
		Issues:      []string{},
		Strengths:   []string{},
		FillerWords: []string{},
	}

	for _, rule := range aggressiveRules {
		if rule.Pattern.MatchString(lower) {
			set.Issues = append(set.Issues, rule.Description)
			set.AggressiveCount++
		}
	}

	for _, rule := range passiveRules {
		if rule.Pattern.MatchString(lower) {
			set.Issues = append(set.Issues, rule.Description)
			set.PassiveCount++
		}
	}

	for _, rule := range assertiveRules {
		if rule.Pattern.MatchString(lower) {
			set.Strengths = append(set.Strengths, rule.Description)
			set.AssertiveCount++
		}
	}

	for _, rule := range empatheticRules {
		if rule.Pattern.MatchString(lower) {
			set.Strengths = append(set.Strengths, rule.Description)
			set.EmpatheticCount++
		}
	}

	for i, pattern := range fillerPatterns {
		if pattern.MatchString(lower) {
			set.FillerWords = append(set.FillerWords, fillerVocabulary[i])
		}
	}

	return set
}

// Classify derives the style label and dimension scores from one message.
// Branch order defines precedence: aggressive signals are checked before
// assertive ones, so a message carrying both classifies as aggressive.
func (c *Classifier) Classify(text string) *StyleAnalysis {
	set := c.Scan(text)

	analysis := &StyleAnalysis{
		Style:           StyleNeutral,
		ToneScore:       6,
		ClarityScore:    7,
		ConfidenceScore: 6,
		EmpathyScore:    5,
		Issues:          set.Issues,
		Strengths:       set.Strengths,
		FillerWords:     set.FillerWords,
	}

	switch {
	case set.AggressiveCount >= 2:
		analysis.Style = StyleAggressive
		analysis.ToneScore = 3
		analysis.ConfidenceScore = 7
		analysis.EmpathyScore = 2
	case set.AggressiveCount == 1:
		analysis.Style = StyleSomewhatAggressive
		analysis.ToneScore = 5
	case set.PassiveCount >= 2:
		analysis.Style = StylePassive
		analysis.ToneScore = 5
		analysis.ConfidenceScore = 3
	case set.AssertiveCount >= 2 && set.EmpatheticCount >= 1:
		analysis.Style = StyleAssertiveEmpathetic
		analysis.ToneScore = 9
		analysis.ConfidenceScore = 8
		analysis.EmpathyScore = 8
	case set.AssertiveCount >= 1:
		analysis.Style = StyleAssertive
		analysis.ToneScore = 8
		analysis.ConfidenceScore = 7
	}

	// Fillers erode clarity, floored at 3
	analysis.ClarityScore = max(3, 10-2*len(set.FillerWords))

	analysis.RecomputeOverall()

	return analysis
}

// IsAggressive reports whether a style belongs to the aggressive family
func IsAggressive(s Style) bool {
	return s == StyleAggressive || s == StyleSomewhatAggressive
}

// IsAssertive reports whether a style belongs to the assertive family
func IsAssertive(s Style) bool {
	return s == StyleAssertive || s == StyleAssertiveEmpathetic
}
