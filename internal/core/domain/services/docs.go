// Package services provides domain services for the order lifecycle that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionGate: the role authorization table deciding which actor may
//     perform which command against which lifecycle state
//
// Domain services here are pure decision functions; they hold no state and
// perform no I/O, following Domain-Driven Design principles.
package services
