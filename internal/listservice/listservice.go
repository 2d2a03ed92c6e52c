package listservice

import (
	"encoding/json"

	"github.com/oklog/ulid"
)

// Value is the element type of the hosted lists. Values are opaque
// JSON documents that are stored and returned as they were received.
type Value = json.RawMessage

// ListService describes a service that hosts many singly linked lists,
// each identified by an ID, and lets callers mutate them concurrently.
//
// Every operation on a list is applied atomically with respect to other
// operations on the same list. Operations on an unknown list fail with
// ErrListDoesntExist.
type ListService interface {
	// Create creates a new empty list and returns its ID.
	Create() (ulid.ULID, error)
	// Drop deletes the list with the given ID.
	Drop(id ulid.ULID) error
	// IDs returns the IDs of all the hosted lists.
	IDs() []ulid.ULID
	// Snapshot returns the contents of the list in order.
	Snapshot(id ulid.ULID) (Snapshot, error)
	// Push appends a value to the list and returns the new length.
	Push(id ulid.ULID, v Value) (int, error)
	// Unshift prepends a value to the list and returns the new length.
	Unshift(id ulid.ULID, v Value) (int, error)
	// Pop removes and returns the last value of the list.
	// It fails with ErrEmptyList if there is nothing to remove.
	Pop(id ulid.ULID) (Value, error)
	// Shift removes and returns the first value of the list.
	// It fails with ErrEmptyList if there is nothing to remove.
	Shift(id ulid.ULID) (Value, error)
	// Get returns the value at the given position.
	// Valid positions are [0, length-1].
	Get(id ulid.ULID, position int) (Value, error)
	// Set overwrites the value at the given position.
	// Valid positions are [0, length-1].
	Set(id ulid.ULID, position int, v Value) error
	// Insert adds a value at the given position and returns the new length.
	// Valid positions are [0, length].
	Insert(id ulid.ULID, position int, v Value) (int, error)
	// Remove removes and returns the value at the given position.
	// Valid positions are [0, length-1].
	Remove(id ulid.ULID, position int) (Value, error)
	// Reverse reverses the order of the list in place.
	Reverse(id ulid.ULID) error
	// Stats returns counters describing the service.
	Stats() Stats
}

// Snapshot is a copy of a list's contents at one point in time.
type Snapshot struct {
	ID     ulid.ULID `json:"id"`
	Length int       `json:"length"`
	Values []Value   `json:"values"`
}

// Stats holds the service counters.
type Stats struct {
	Lists      int64 `json:"lists"`
	Evicted    int64 `json:"evicted"`
	Operations int64 `json:"operations"`
}
