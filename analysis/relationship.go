package analysis

// relationshipTips maps a relationship context to one static closing tip
var relationshipTips = map[string]string{
	RelationshipBoss:      "With your boss: be direct but respectful. Lead with solutions, not complaints.",
	RelationshipColleague: "With colleagues: collaborative language ('let's', 'we could') builds trust.",
	RelationshipPartner:   "With your partner: 'I feel' statements prevent blame spirals. Validate before problem-solving.",
	RelationshipFamily:    "With family: old patterns run deep. Pause before reacting to triggers.",
	RelationshipFriend:    "With friends: honesty delivered with warmth keeps the friendship strong.",
}

// relationshipTip returns the tip for a known relationship context and the
// empty string otherwise
func relationshipTip(relationship string) string {
	return relationshipTips[relationship]
}
