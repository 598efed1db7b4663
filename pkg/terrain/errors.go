package terrain

import "errors"

var (
	// ErrInvalidInput reports a site set that cannot produce a
	// well-formed decomposition (fewer than 3 sites, or duplicates).
	ErrInvalidInput = errors.New("terrain: invalid input")

	// ErrTopologyInconsistency reports a decomposition that violates
	// the winding or edge-sharing contract, which would otherwise
	// silently corrupt the adjacency graphs.
	ErrTopologyInconsistency = errors.New("terrain: inconsistent topology")

	// ErrDependencyFailure reports a failure of the tessellation or
	// noise capability the builder depends on.
	ErrDependencyFailure = errors.New("terrain: dependency failure")
)
