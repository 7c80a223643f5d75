package models

import (
	"database/sql"
	"time"
)

// User is the persistent account record. Password, refresh-token, and
// reset-token material is stored only in hashed form.
//
// RefreshTokenHash is null unless a login has occurred and logout has not
// since cleared it. ResetTokenHash and ResetTokenExpiresAt are either both
// null or both set; a successful reset clears both.
type User struct {
	ID               string
	UserName         string
	Email            string
	PasswordHash     string
	FullName         string
	AvatarURL        sql.NullString
	Role             string
	RefreshTokenHash sql.NullString
	ResetTokenHash   sql.NullString
	ResetTokenExpiry sql.NullTime
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublicView is the caller-facing projection of a User. It never carries
// hash or token fields.
type PublicView struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the safe projection of u.
func (u *User) Public() *PublicView {
	v := &PublicView{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.AvatarURL.Valid {
		v.AvatarURL = u.AvatarURL.String
	}
	return v
}
