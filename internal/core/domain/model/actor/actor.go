package actor

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// ErrActorNameIsRequired is returned when an actor is created without a display name.
var ErrActorNameIsRequired = errors.New("actor name is required")

// Actor is the authenticated identity issuing a command, as verified by the
// identity provider. It is a value object: the engine never stores actors,
// only records their identity on audit stamps.
type Actor struct {
	id   kernel.UUID
	name string
	role Role

	isConstructed bool
}

// NewActor creates a validated Actor from the identity provider's output.
//
// Parameters:
//   - id: the actor's unique identifier (must be a valid UUID)
//   - name: display name recorded on audit stamps (must be non-empty)
//   - role: the actor's verified role (must be a defined role)
func NewActor(id kernel.UUID, name string, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if name == "" {
		return Actor{}, ErrActorNameIsRequired
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		name:          name,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name.
func (a Actor) Name() string {
	return a.name
}

// Role returns the actor's verified role.
func (a Actor) Role() Role {
	return a.role
}

// IsEqual compares two actors by their unique identifiers.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id)
}
