package models

import "time"

type UserAccount struct {
	UserID    int       `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	IsActive  bool      `json:"is_active"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// GuestUser est le compte sentinelle utilisé quand le client passe la
// reconnaissance faciale. UserID 0 : jamais d'historique de commandes.
func GuestUser() UserAccount {
	return UserAccount{
		UserID:   0,
		FullName: "Client invité",
		Email:    "guest@megapos.app",
		IsActive: true,
	}
}

// IsGuest indique si le compte est la sentinelle invité.
func (u UserAccount) IsGuest() bool {
	return u.UserID == 0
}
