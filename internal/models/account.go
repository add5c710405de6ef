package models

import "time"

// Account is a registered user in the mock account table. The password is
// stored and compared verbatim; this mirrors the behavior of the system
// being modeled and is not a credential store.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionUser is the account as exposed to an active session: everything
// except the password.
type SessionUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (a Account) SessionUser() SessionUser {
	return SessionUser{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Avatar:    a.Avatar,
		CreatedAt: a.CreatedAt,
	}
}
