package models

// User is the public part of a counterpart's profile as returned by the
// matching endpoint.
type User struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Location string `json:"location"`
	Bio      string `json:"bio,omitempty"`
}

// Exchange is one concrete skill pair that could be bartered with a
// candidate: the skill I would give and the skill I would get.
type Exchange struct {
	OfferedSkillID     ID     `json:"offered_skill_id"`
	OfferedSkillName   string `json:"offered_skill_name"`
	RequestedSkillID   ID     `json:"requested_skill_id"`
	RequestedSkillName string `json:"requested_skill_name"`
}

// Candidate is a user proposed as a potential skill-exchange partner,
// together with the skill sets that made the match and the viable exchanges.
type Candidate struct {
	User              User       `json:"user"`
	OfferedSkills     []Skill    `json:"offered_skills"`
	RequestedSkills   []Skill    `json:"requested_skills"`
	PossibleExchanges []Exchange `json:"possible_exchanges"`
}
