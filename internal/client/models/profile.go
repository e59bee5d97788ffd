package models

// Profile is the authenticated user's own profile. Skills here are plain
// names: the profile endpoint stores them denormalized, unlike the matching
// endpoints which return Skill objects.
type Profile struct {
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	Bio            string   `json:"bio"`
	PhotoURL       string   `json:"photo_url"`
	OfferedSkills  []string `json:"offered_skills"`
	RequiredSkills []string `json:"required_skills"`
	Availability   string   `json:"availability"`
	Location       string   `json:"location"`
}

// SkillUser is a user listed under a specific skill by the skill-browsing
// endpoint.
type SkillUser struct {
	ID              ID      `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Bio             string  `json:"bio"`
	Location        string  `json:"location"`
	PhotoURL        string  `json:"photo_url"`
	OfferedSkills   []Skill `json:"offered_skills"`
	RequestedSkills []Skill `json:"requested_skills"`
}
