// Package models defines the client-side data shapes exchanged with the
// skill-exchange backend. All normalization of wire quirks (numeric vs
// string ids, bare-string skills) happens here, at decode time.
package models

// Credential is the persisted authentication state: an opaque bearer token
// and the id of the user it belongs to. Token and UserID are written and
// cleared together by the session controller.
type Credential struct {
	Token  string
	UserID string
}
