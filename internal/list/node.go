package list

// Node is the single entity of a SinglyLinkedList. It holds one value
// and a link to the node after it.
//
// The link is only ever rewritten by the list owning the node, so code
// outside this package can walk a chain with Next but never relink it.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// NewNode returns a detached node holding the given value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{
		Value: value,
	}
}

// Next returns the node after n, or nil if n is the last node
// of its list or has been removed from it.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
