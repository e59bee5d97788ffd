package models

// Filter narrows a match query. Zero-value fields are omitted from the
// request entirely, never sent as empty strings.
type Filter struct {
	SkillID  string
	Location string
}

// IsZero reports whether no filter is applied.
func (f Filter) IsZero() bool {
	return f.SkillID == "" && f.Location == ""
}
