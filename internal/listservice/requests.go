package listservice

import "github.com/oklog/ulid"

// ValueRequest is the body sent by the client to operations
// that store a value.
type ValueRequest struct {
	Value Value `json:"value"`
}

// ValueRes carries a value returned by an operation.
type ValueRes struct {
	Value Value `json:"value"`
}

// LengthRes carries the length of a list after an operation.
type LengthRes struct {
	Length int `json:"length"`
}

// CreateRes carries the ID of a newly created list.
type CreateRes struct {
	ID ulid.ULID `json:"id"`
}

// IDsRes carries the IDs of the hosted lists.
type IDsRes struct {
	IDs []ulid.ULID `json:"ids"`
}
