package model

// Member is one roster entry. The roster is loaded once per run and is
// read-only afterwards; members are keyed by their identifier.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Committee string `json:"committee"`
	Email     string `json:"email,omitempty"`
}
