package foundpets

import "time"

type Status string

const (
	StatusFound   Status = "found"
	StatusClaimed Status = "claimed"
)

type Location struct {
	Latitude  float64
	Longitude float64
}

// FoundPet la registra cualquiera, sin cuenta. Shelter es el nombre del refugio.
type FoundPet struct {
	ID       string
	Location Location
	Date     time.Time
	Shelter  string
	Picture  string

	CreatedAt time.Time
	Status    Status
	ClaimedBy string
}
