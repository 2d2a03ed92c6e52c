package list

// SinglyLinkedList is a list of nodes linked in one direction.
//
// The list caches its last node so that appending doesn't walk the
// chain, and caches its length so that bounds checks don't either.
// Positions are zero based.
//
// The zero value is an empty list ready to use. A SinglyLinkedList is
// not safe for concurrent use; callers sharing one must guard it.
type SinglyLinkedList[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns a new instance of an empty SinglyLinkedList.
func New[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// Len returns the number of nodes in the list.
func (l *SinglyLinkedList[T]) Len() int {
	return l.length
}

// IsEmpty returns true if the list holds no nodes.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.length == 0
}

// Head returns the first node of the list, nil if the list is empty.
func (l *SinglyLinkedList[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node of the list, nil if the list is empty.
func (l *SinglyLinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// Push appends a node with the given value to the end of the list.
// It returns the list so that calls can be chained.
func (l *SinglyLinkedList[T]) Push(value T) *SinglyLinkedList[T] {
	node := NewNode(value)
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		l.tail = node
	}
	l.length++
	return l
}

// Unshift prepends a node with the given value to the start of the list.
// It returns the list so that calls can be chained.
func (l *SinglyLinkedList[T]) Unshift(value T) *SinglyLinkedList[T] {
	node := NewNode(value)
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head = node
	}
	l.length++
	return l
}

// Pop removes the last node of the list and returns it.
// It returns false if the list is empty.
//
// There are no back links, so the node before the tail is found
// by walking from the head.
func (l *SinglyLinkedList[T]) Pop() (*Node[T], bool) {
	if l.head == nil {
		return nil, false
	}

	removed := l.tail
	if l.head == l.tail {
		l.head = nil
		l.tail = nil
	} else {
		newTail := l.head
		for newTail.next != l.tail {
			newTail = newTail.next
		}
		newTail.next = nil
		l.tail = newTail
	}
	l.length--
	return removed, true
}

// Shift removes the first node of the list and returns it.
// It returns false if the list is empty.
func (l *SinglyLinkedList[T]) Shift() (*Node[T], bool) {
	if l.head == nil {
		return nil, false
	}

	removed := l.head
	l.head = removed.next
	if l.head == nil {
		l.tail = nil
	}
	removed.next = nil
	l.length--
	return removed, true
}

// Get returns the node at the given position. It returns false
// if the position is outside [0, Len()-1].
func (l *SinglyLinkedList[T]) Get(position int) (*Node[T], bool) {
	if position < 0 || position >= l.length {
		return nil, false
	}

	node := l.head
	for i := 0; i < position; i++ {
		node = node.next
	}
	return node, true
}

// Set overwrites the value of the node at the given position.
// It returns false, changing nothing, if there is no such node.
func (l *SinglyLinkedList[T]) Set(position int, value T) bool {
	node, ok := l.Get(position)
	if !ok {
		return false
	}
	node.Value = value
	return true
}

// Insert adds a node with the given value so that it ends up at the
// given position. Inserting at Len() appends.
// It returns false, changing nothing, if the position is outside [0, Len()].
func (l *SinglyLinkedList[T]) Insert(position int, value T) bool {
	if position < 0 || position > l.length {
		return false
	}
	if position == 0 {
		l.Unshift(value)
		return true
	}
	if position == l.length {
		l.Push(value)
		return true
	}

	prev, _ := l.Get(position - 1)
	node := NewNode(value)
	node.next = prev.next
	prev.next = node
	l.length++
	return true
}

// Remove removes the node at the given position and returns it.
// It returns false if the position is outside [0, Len()-1].
func (l *SinglyLinkedList[T]) Remove(position int) (*Node[T], bool) {
	if position < 0 || position >= l.length {
		return nil, false
	}
	if position == 0 {
		return l.Shift()
	}
	if position == l.length-1 {
		return l.Pop()
	}

	prev, _ := l.Get(position - 1)
	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	l.length--
	return removed, true
}

// Reverse reverses the order of the nodes in place.
func (l *SinglyLinkedList[T]) Reverse() {
	var prev *Node[T]
	current := l.head
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	l.head, l.tail = l.tail, l.head
}
