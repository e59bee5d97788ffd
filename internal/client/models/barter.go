package models

// BarterRequest asks the backend to open a barter session with a provider:
// I give OfferedSkillID, I get RequestedSkillID. Constructed transiently per
// initiation; the backend is authoritative for the created session.
type BarterRequest struct {
	ProviderID       string `json:"provider_id"`
	OfferedSkillID   string `json:"offered_skill_id"`
	RequestedSkillID string `json:"requested_skill_id"`
}
