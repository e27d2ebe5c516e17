package identity

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleRequester Role = "requester"
	RoleReviewer  Role = "reviewer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRequester, RoleReviewer:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is an opaque identity: an id plus a display name carried along for
// messages. Two actors are the same iff their IDs match; the display name is
// never part of equality.
type Actor struct {
	id   uuid.UUID
	name string
}

func NewActor(id uuid.UUID, name string) Actor {
	return Actor{id: id, name: name}
}

func (a Actor) ID() uuid.UUID { return a.id }
func (a Actor) Name() string  { return a.name }

func (a Actor) Equals(other Actor) bool {
	return a.id == other.id
}

func (a Actor) IsZero() bool {
	return a.id == uuid.Nil
}
