package entity

import "time"

// Credential cuenta de autenticación del gateway (tabla auth_users). Sin rol: el rol vive en profiles.
type Credential struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
}
