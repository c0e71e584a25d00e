package dto

// RegisteredUser is the user payload returned by /auth/register.
type RegisteredUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// SessionUser is the user payload returned by /auth/login and /auth/check_session.
type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterRes represents the response for a successful registration.
type RegisterRes struct {
	Success bool           `json:"success"`
	User    RegisteredUser `json:"user"`
}

// LoginRes represents the response for a successful login.
type LoginRes struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}

// CheckSessionRes represents the response for /auth/check_session.
type CheckSessionRes struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
}
