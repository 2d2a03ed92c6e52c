package listclient

import (
	"github.com/oklog/ulid"

	"github.com/SystemBuilders/ListKey/internal/listservice"
)

// Client describes a client that can be used to interact with a node
// serving the list service. Each method makes one call to the node.
//
// Failures reported by the node are returned as the matching
// listservice error, wrapped with a stack; use errors.Cause to
// compare them.
type Client interface {
	// Create creates a new empty list on the node.
	Create() (ulid.ULID, error)
	// Drop deletes a list.
	Drop(id ulid.ULID) error
	// IDs returns the IDs of the lists hosted on the node.
	IDs() ([]ulid.ULID, error)
	// Snapshot returns the contents of a list.
	Snapshot(id ulid.ULID) (listservice.Snapshot, error)
	// Push appends a value and returns the new length.
	Push(id ulid.ULID, v listservice.Value) (int, error)
	// Unshift prepends a value and returns the new length.
	Unshift(id ulid.ULID, v listservice.Value) (int, error)
	// Pop removes and returns the last value.
	Pop(id ulid.ULID) (listservice.Value, error)
	// Shift removes and returns the first value.
	Shift(id ulid.ULID) (listservice.Value, error)
	// Get returns the value at a position.
	Get(id ulid.ULID, position int) (listservice.Value, error)
	// Set overwrites the value at a position.
	Set(id ulid.ULID, position int, v listservice.Value) error
	// Insert adds a value at a position and returns the new length.
	Insert(id ulid.ULID, position int, v listservice.Value) (int, error)
	// Remove removes and returns the value at a position.
	Remove(id ulid.ULID, position int) (listservice.Value, error)
	// Reverse reverses a list.
	Reverse(id ulid.ULID) error
	// Stats returns the node's counters.
	Stats() (listservice.Stats, error)
}

// Config describes the configuration of the node the client talks to.
type Config interface {
	// IP provides the IP address where the server is running,
	// optionally prefixed with a scheme.
	IP() string
	// Port provides the port where the server is running.
	Port() string
}
