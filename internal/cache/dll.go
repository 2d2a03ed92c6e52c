package cache

// DLLNode is the single entity of the doubly linked list.
type DLLNode[K comparable, V any] struct {
	LeftNode  *DLLNode[K, V]
	RightNode *DLLNode[K, V]
	NodeKey   K
	Value     V
}

// Left returns the node to the left of the current node.
func (dllNode *DLLNode[K, V]) Left() *DLLNode[K, V] {
	return dllNode.LeftNode
}

// Right returns the node to the right of the current node.
func (dllNode *DLLNode[K, V]) Right() *DLLNode[K, V] {
	return dllNode.RightNode
}

// Key returns the key of the node.
func (dllNode *DLLNode[K, V]) Key() K {
	return dllNode.NodeKey
}

// Assert that *DoublyLinkedList implements LinkedList.
var _ LinkedList[string, int] = (*DoublyLinkedList[string, int])(nil)

// DoublyLinkedList implements LinkedList.
//
// All nodes have a left and a right link except the head and the tail node.
type DoublyLinkedList[K comparable, V any] struct {
	Head *DLLNode[K, V]
	Tail *DLLNode[K, V]
}

// NewDoublyLinkedList returns a new instance of an empty DoublyLinkedList.
func NewDoublyLinkedList[K comparable, V any]() *DoublyLinkedList[K, V] {
	return &DoublyLinkedList[K, V]{}
}

// InsertNodeToLeft inserts a node with given key and value to the left of the given node.
func (dll *DoublyLinkedList[K, V]) InsertNodeToLeft(node *DLLNode[K, V], key K, value V) *DLLNode[K, V] {
	newNode := &DLLNode[K, V]{
		NodeKey: key,
		Value:   value,
	}
	if node == nil {
		// Since the DLL was empty before, this will be the Head and Tail node too.
		dll.Head = newNode
		dll.Tail = newNode
		return newNode
	}

	leftNode := node.LeftNode
	newNode.LeftNode = leftNode
	newNode.RightNode = node
	node.LeftNode = newNode
	if leftNode == nil {
		dll.Head = newNode
	} else {
		leftNode.RightNode = newNode
	}
	return newNode
}

// InsertNodeToRight inserts a node with the given key and value to the right of the given node.
func (dll *DoublyLinkedList[K, V]) InsertNodeToRight(node *DLLNode[K, V], key K, value V) *DLLNode[K, V] {
	newNode := &DLLNode[K, V]{
		NodeKey: key,
		Value:   value,
	}
	if node == nil {
		dll.Head = newNode
		dll.Tail = newNode
		return newNode
	}

	rightNode := node.RightNode
	newNode.RightNode = rightNode
	newNode.LeftNode = node
	node.RightNode = newNode
	if rightNode == nil {
		dll.Tail = newNode
	} else {
		rightNode.LeftNode = newNode
	}
	return newNode
}

// DeleteNode deletes the provided node.
func (dll *DoublyLinkedList[K, V]) DeleteNode(node *DLLNode[K, V]) {
	if node == nil {
		return
	}
	leftNode := node.LeftNode
	rightNode := node.RightNode

	if leftNode == nil {
		dll.Head = rightNode
	} else {
		leftNode.RightNode = rightNode
	}
	if rightNode == nil {
		dll.Tail = leftNode
	} else {
		rightNode.LeftNode = leftNode
	}

	node.LeftNode = nil
	node.RightNode = nil
}

// Keys returns the keys of the list from head to tail order.
func (dll *DoublyLinkedList[K, V]) Keys() []K {
	var keys []K
	for node := dll.Head; node != nil; node = node.RightNode {
		keys = append(keys, node.NodeKey)
	}
	return keys
}
