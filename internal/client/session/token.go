package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// now is a test seam.
var now = time.Now

// tokenExpiry peeks at the exp claim of a JWT without verifying its
// signature. The client has no signing key; verification is the backend's
// job. Returns false for opaque or claimless tokens.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpiry reports when the stored token expires, for display purposes
// (e.g. the whoami command). ok is false when the token carries no usable
// exp claim.
func TokenExpiry(token string) (exp time.Time, ok bool) {
	return tokenExpiry(token)
}
