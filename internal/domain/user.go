package domain

import "time"

// User represents a registered shop owner.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	ShopName     string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the projection of a User that is safe to return to clients.
// The password hash and refresh token never leave the server.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	ShopName string `json:"shopName"`
}

// Public strips the credential fields from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		ShopName: u.ShopName,
	}
}
