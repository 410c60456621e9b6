package events

// PetKind indica en qué colección vive la mascota del evento.
type PetKind string

const (
	PetKindMissing PetKind = "missing"
	PetKindFound   PetKind = "found"
)

type EventType string

const (
	EventTypeRegistered EventType = "REGISTERED"
	EventTypeReunited   EventType = "REUNITED"
	EventTypeClaimed    EventType = "CLAIMED"
)

type ActorType string

const (
	ActorTypeOwnerUser ActorType = "OWNER_USER"
	ActorTypeUser      ActorType = "USER"
	ActorTypeAnonymous ActorType = "ANONYMOUS"
)
