package users

import "time"

// User es una cuenta de dueño. Pets guarda los ids de sus mascotas perdidas.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time

	Pets []string
}
