package domain

// Identity is who a session token speaks for.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// User is the public view of an identity returned by login and /me.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
