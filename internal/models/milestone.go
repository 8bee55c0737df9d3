package models

// MilestoneGroup lists the users at or past one threshold value
type MilestoneGroup struct {
	Value     int      `json:"value"`
	Usernames []string `json:"usernames"`
}

// MilestoneReport groups milestone hits per category.
// Level and referral groups are cumulative (>= threshold); streak groups
// contain only users whose streak hit an exact multiple of the configured
// divisor today.
type MilestoneReport struct {
	Level    []MilestoneGroup `json:"level"`
	Streak   []MilestoneGroup `json:"streak"`
	Referral []MilestoneGroup `json:"referral"`
}

// Empty reports whether the scan found no milestone hits at all
func (r *MilestoneReport) Empty() bool {
	return len(r.Level) == 0 && len(r.Streak) == 0 && len(r.Referral) == 0
}
