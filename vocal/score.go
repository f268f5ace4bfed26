package vocal

import (
	"math"
)

// Status reports whether vocal scoring produced usable numbers
type Status string

const (
	// StatusSuccess means a full profile was scored
	StatusSuccess Status = "success"

	// StatusLimited means feature extraction was unavailable; no scores are
	// fabricated and downstream fusion must treat this as "no audio signal"
	StatusLimited Status = "limited"
)

// EmotionalTone is a coarse mood label derived from delivery characteristics,
// distinct from the text-derived style label
type EmotionalTone string

const (
	ToneAgitated EmotionalTone = "agitated/stressed"
	ToneCalm     EmotionalTone = "calm/sad"
	ToneEngaged  EmotionalTone = "engaged/enthusiastic"
	ToneBored    EmotionalTone = "bored/disengaged"
	ToneNeutral  EmotionalTone = "neutral/controlled"
)

// Qualitative level names
const (
	VolumeLoud     = "loud"
	VolumeSoft     = "soft"
	VolumeModerate = "moderate"

	PaceFast     = "fast"
	PaceSlow     = "slow"
	PaceModerate = "moderate"

	PitchHigh    = "high"
	PitchLow     = "low"
	PitchMedium  = "medium"
	PitchUnknown = "unclear"

	VarietyExpressive = "expressive"
	VarietyMonotone   = "monotone"

	ClarityClear    = "clear"
	ClarityUnclear  = "unclear"
	ClarityModerate = "moderate"

	PausesManyLong = "many_long"
	PausesNatural  = "natural"
	PausesFew      = "few"
)

// DimensionScore is one scored delivery dimension
type DimensionScore struct {
	Level string `json:"level"`
	Score int    `json:"score"`
	Note  string `json:"note"`
}

// ProfileScore maps raw vocal statistics to qualitative levels, 0-10 scores,
// an aggregate confidence score and an emotional tone label
type ProfileScore struct {
	Status          Status          `json:"status"`
	DurationSeconds float64         `json:"duration_seconds,omitempty"`
	Volume          *DimensionScore `json:"volume,omitempty"`
	VolumeSteady    string          `json:"volume_consistency,omitempty"` // "steady" or "varied"
	Pace            *DimensionScore `json:"pace,omitempty"`
	PaceRate        float64         `json:"pace_events_per_sec,omitempty"`
	PitchLevel      string          `json:"pitch_level,omitempty"`
	Pitch           *DimensionScore `json:"pitch,omitempty"` // Level holds the variety label
	Clarity         *DimensionScore `json:"clarity,omitempty"`
	Pauses          *DimensionScore `json:"pauses,omitempty"`
	AvgPauseSeconds float64         `json:"avg_pause_seconds,omitempty"`
	ConfidenceScore int             `json:"confidence_score,omitempty"`
	EmotionalTone   EmotionalTone   `json:"emotional_tone,omitempty"`
	OverallScore    float64         `json:"overall_score,omitempty"`
}

// LimitedScore returns the degraded result used when feature extraction
// failed or was unavailable
func LimitedScore() *ProfileScore {
	return &ProfileScore{Status: StatusLimited}
}

// ProfileScorer maps a FeatureProfile to a ProfileScore using fixed
// thresholds
type ProfileScorer struct{}

// NewProfileScorer creates a new profile scorer
func NewProfileScorer() *ProfileScorer {
	return &ProfileScorer{}
}

// Score converts raw statistics to levels, notes and scores. A nil profile
// yields the limited status.
func (ps *ProfileScorer) Score(p *FeatureProfile) *ProfileScore {
	if p == nil {
		return LimitedScore()
	}

	score := &ProfileScore{
		Status:          StatusSuccess,
		DurationSeconds: round2(p.Duration.Seconds()),
		PaceRate:        round2(p.OnsetRate),
		AvgPauseSeconds: round2(p.AvgPauseSeconds),
	}

	// Volume
	switch {
	case p.MeanEnergy > 0.15:
		score.Volume = &DimensionScore{VolumeLoud, 5, "Speaking loudly - may come across as aggressive"}
	case p.MeanEnergy < 0.03:
		score.Volume = &DimensionScore{VolumeSoft, 4, "Speaking softly - may seem unconfident or passive"}
	default:
		score.Volume = &DimensionScore{VolumeModerate, 8, "Good volume - clear and audible"}
	}
	if p.EnergyStdDev > 0.05 {
		score.VolumeSteady = "varied"
	} else {
		score.VolumeSteady = "steady"
	}

	// Pace
	switch {
	case p.OnsetRate > 4:
		score.Pace = &DimensionScore{PaceFast, 6, "Speaking quickly - may indicate nervousness or excitement"}
	case p.OnsetRate < 2:
		score.Pace = &DimensionScore{PaceSlow, 6, "Speaking slowly - sounds thoughtful but may lose attention"}
	default:
		score.Pace = &DimensionScore{PaceModerate, 8, "Good speaking pace - easy to follow"}
	}

	// Pitch
	if p.PitchValid {
		switch {
		case p.PitchMean > 220:
			score.PitchLevel = PitchHigh
		case p.PitchMean < 100:
			score.PitchLevel = PitchLow
		default:
			score.PitchLevel = PitchMedium
		}

		if p.PitchStdDev > 50 {
			score.Pitch = &DimensionScore{VarietyExpressive, 8, "Good vocal variety - engaging to listen to"}
		} else {
			score.Pitch = &DimensionScore{VarietyMonotone, 4, "Monotone delivery - may sound disengaged"}
		}
	} else {
		score.PitchLevel = PitchUnknown
		score.Pitch = &DimensionScore{PitchUnknown, 4, "Could not analyze pitch"}
	}

	// Clarity
	switch {
	case p.MeanZCR > 0.15:
		score.Clarity = &DimensionScore{ClarityClear, 9, "Clear enunciation - easy to understand"}
	case p.MeanZCR < 0.05:
		score.Clarity = &DimensionScore{ClarityUnclear, 3, "Mumbled or unclear speech - work on articulation"}
	default:
		score.Clarity = &DimensionScore{ClarityModerate, 6, "Acceptable clarity - could improve enunciation"}
	}

	// Pauses
	switch {
	case p.AvgPauseSeconds > 1.5:
		score.Pauses = &DimensionScore{PausesManyLong, 5, "Long pauses - may indicate uncertainty or searching for words"}
	case p.AvgPauseSeconds > 0.5:
		score.Pauses = &DimensionScore{PausesNatural, 8, "Natural pausing - allows the listener to process"}
	default:
		score.Pauses = &DimensionScore{PausesFew, 5, "Few pauses - may sound rushed"}
	}

	score.ConfidenceScore = ps.confidenceScore(score)
	score.EmotionalTone = ps.emotionalTone(p, score)

	// Overall vocal score: unweighted mean of the five dimension scores
	sum := score.Volume.Score + score.Pace.Score + score.Pitch.Score +
		score.Clarity.Score + score.Pauses.Score
	score.OverallScore = math.Round(float64(sum)/5.0*10) / 10

	return score
}

// confidenceScore starts at a baseline of 5 and applies fixed per-dimension
// deltas, clamped to [1, 10]
func (ps *ProfileScorer) confidenceScore(s *ProfileScore) int {
	confidence := 5

	switch s.Volume.Level {
	case VolumeModerate:
		confidence += 2
	case VolumeLoud:
		confidence += 1
	case VolumeSoft:
		confidence -= 2
	}

	switch s.Pace.Level {
	case PaceModerate:
		confidence += 2
	case PaceFast, PaceSlow:
		confidence -= 1
	}

	switch s.Pitch.Level {
	case VarietyExpressive:
		confidence += 2
	case VarietyMonotone:
		confidence -= 2
	}

	switch s.Clarity.Level {
	case ClarityClear:
		confidence += 2
	case ClarityUnclear:
		confidence -= 2
	}

	switch s.Pauses.Level {
	case PausesNatural:
		confidence += 1
	case PausesManyLong:
		confidence -= 2
	}

	return min(max(confidence, 1), 10)
}

// emotionalTone applies the ordered tone rules; the first match wins
func (ps *ProfileScorer) emotionalTone(p *FeatureProfile, s *ProfileScore) EmotionalTone {
	switch {
	case p.MeanEnergy > 0.15 && p.OnsetRate > 4:
		return ToneAgitated
	case p.MeanEnergy < 0.05 && s.PitchLevel == PitchLow:
		return ToneCalm
	case s.Pitch.Level == VarietyExpressive && s.Volume.Level == VolumeModerate:
		return ToneEngaged
	case s.Pitch.Level == VarietyMonotone && s.Pace.Level == PaceSlow:
		return ToneBored
	default:
		return ToneNeutral
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
