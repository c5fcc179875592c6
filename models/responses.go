package models

// NotesResponse is the body of GET /api/notes/: every note of one owner.
type NotesResponse struct {
	Notes []Note `json:"notes"`

	// Length is the number of entries in Notes.
	Length int `json:"length"`
}

// AuthResponse is the body returned by register and login. The bearer token
// itself travels in the Authorization header.
type AuthResponse struct {
	UserID string `json:"user_id"`
	Login  string `json:"login"`
}

// VersionResponse is the body of GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
}
