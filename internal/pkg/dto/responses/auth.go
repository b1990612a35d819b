package responses

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Session struct {
	User          SessionUser `json:"user"`
	Authenticated bool        `json:"authenticated"`
	Token         string      `json:"token,omitempty"`
	ExpiresAt     string      `json:"expiresAt,omitempty"`
}
