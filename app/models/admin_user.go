package models

// Validate checks if the admin user meets all validation requirements.
func (u *AdminUser) Validate() error {
	return validate.Struct(u)
}

// Profile is the subset of AdminUser safe to return to clients.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Profile returns the client-facing view of the user.
func (u *AdminUser) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username}
}
