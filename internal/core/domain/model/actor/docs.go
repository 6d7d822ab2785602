// Package actor provides the identity model consumed by the order lifecycle:
// the Role enumeration the transition table keys on, and the Actor value
// object representing an authenticated caller.
//
// Actors are produced by the identity provider adapter and flow through
// commands into audit stamps; the core never persists them as entities.
package actor
