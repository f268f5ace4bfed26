package analysis

import (
	"github.com/commcoach/voxlens/textstyle"
	"github.com/commcoach/voxlens/vocal"
)

// Status reports how an analysis request resolved
type Status string

const (
	// StatusAnalyzed means a full diagnosis was produced
	StatusAnalyzed Status = "analyzed"

	// StatusNeedsInput means neither text nor audio was supplied. This is a
	// usage condition, not an error.
	StatusNeedsInput Status = "needs_input"

	// StatusError means the request failed before classification
	StatusError Status = "error"
)

// Known relationship contexts for the closing tip
const (
	RelationshipBoss      = "boss"
	RelationshipColleague = "colleague"
	RelationshipPartner   = "partner"
	RelationshipFamily    = "family"
	RelationshipFriend    = "friend"
)

// Request describes one communication sample to diagnose. Text and AudioPath
// may each be empty; at least one must be set for a diagnosis.
type Request struct {
	Text         string `json:"text,omitempty"`
	AudioPath    string `json:"audio_path,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// Result is the complete diagnosis for one request
type Result struct {
	Status               Status                   `json:"status"`
	Guidance             string                   `json:"guidance,omitempty"`
	OriginalMessage      string                   `json:"original_message,omitempty"`
	TranscribedFromAudio bool                     `json:"transcribed_from_audio"`
	StyleAnalysis        *textstyle.StyleAnalysis `json:"style_analysis,omitempty"`
	VocalReport          *vocal.ProfileScore      `json:"vocal_report,omitempty"`
	Coaching             []string                 `json:"coaching,omitempty"`
	RewrittenMessage     string                   `json:"rewritten_message,omitempty"`
	RelationshipTip      string                   `json:"relationship_tip,omitempty"`
}
