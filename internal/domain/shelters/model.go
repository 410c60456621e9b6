package shelters

// Shelter es dato de referencia: solo lectura desde la API.
type Shelter struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Website string
}

// DefaultShelter se siembra cuando el directorio está vacío.
var DefaultShelter = Shelter{
	Name:    "FindMyPet Community Shelter",
	Address: "100 Harbor Street, Springfield",
	Phone:   "(555) 010-0199",
	Website: "https://findmypet.example/shelters/community",
}
