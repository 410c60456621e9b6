package missingpets

import "time"

type Status string

const (
	StatusMissing  Status = "missing"
	StatusReunited Status = "reunited"
)

type Location struct {
	Latitude  float64
	Longitude float64
}

// MissingPet la registra su dueño; Image guarda el CID del gateway de media.
type MissingPet struct {
	ID          string
	Name        string
	Age         string
	Breed       string
	Color       string
	Gender      string
	Description string

	LastKnownLocation Location
	Image             string

	UserID    string
	CreatedAt time.Time
	Status    Status
}
