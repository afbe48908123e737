package domain

// User's Password field holds the bcrypt hash, never the plaintext.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
