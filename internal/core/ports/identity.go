package ports

import (
	"orderflow/internal/core/domain/model/actor"
)

// IdentityProvider resolves an opaque credential (a bearer token) into the
// acting party. Implementations return a fully constructed actor or an
// error; the transition gate never sees an unauthenticated caller.
type IdentityProvider interface {
	Resolve(token string) (actor.Actor, error)
}
