package models

// Credentials is a username/password pair. It doubles as the login request
// body and as the record type of the seeded credential list.
//
// Passwords are compared in plain text; there is no hashing anywhere.
type Credentials struct {
	// Username is the account login, e.g. "admin".
	Username string `json:"username"`

	// Password is the plain-text password. It is never logged.
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest = Credentials
