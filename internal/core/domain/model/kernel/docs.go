// Package kernel holds the value objects shared by every aggregate of the
// visa-services domain. Today that is the UUID identifier; aggregates never
// expose google/uuid directly.
package kernel
