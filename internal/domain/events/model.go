package events

import "time"

type Actor struct {
	Type ActorType
	ID   string // vacío para ANONYMOUS
}

// PetEvent es una entrada del historial de estado de una mascota.
type PetEvent struct {
	ID      string
	PetID   string
	PetKind PetKind

	Type EventType

	OccurredAt time.Time
	Actor      Actor
}
