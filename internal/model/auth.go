package model

// AccessToken is the object embedded in the JWT access token. Identity is
// resolved by the upstream auth service; this backend only verifies it.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
