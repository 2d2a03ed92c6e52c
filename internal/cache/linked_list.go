package cache

// LinkedList describes the doubly linked list the LRU cache orders its
// entries with.
type LinkedList[K comparable, V any] interface {
	// InsertNodeToLeft inserts a node to the left of the given node,
	// with the key and value provided. It returns the pointer to the
	// node inserted into the linked list. A nil node means the list
	// is empty.
	InsertNodeToLeft(node *DLLNode[K, V], key K, value V) *DLLNode[K, V]
	// InsertNodeToRight inserts a node to the right of the given node,
	// with the key and value provided. It returns the pointer to the
	// node inserted into the linked list. A nil node means the list
	// is empty.
	InsertNodeToRight(node *DLLNode[K, V], key K, value V) *DLLNode[K, V]
	// DeleteNode deletes the node provided as the argument from the
	// linked list.
	DeleteNode(*DLLNode[K, V])
}
