package cache

import (
	"sync"
)

var _ Cache[string, int] = (*LRUCache[string, int])(nil)

// EvictFunc is called with the key and value of an element
// that was pushed out of a full cache.
type EvictFunc[K comparable, V any] func(key K, value V)

// LRUCache implements a cache. It uses a linked list as
// the primary data structure along with a hash-map for
// checking existance of an element in the cache.
//
// The starting element in the linked list will always be
// the most recently used element in the cache and will be
// maintained that way by all the operating functions.
//
// GetElement and PutElement inherently implement a method
// to rank the elements on the basis of recency.
// This order is controlled by:
// * Maintaining a logical order in the DLL - first element is MRU.
// * At every insertion, the MRU is maintained at the Head of the DLL.
// * After every access, the element is moved to the MRU position in the DLL.
// * All insertions occur at the head of the DLL since this is the
//   MRU position. This ensures that the LRU position is the tail.
//
// The hash map maintains the existance of the element in the cache
// and the DLL is to maintain the order of usage of the elements.
type LRUCache[K comparable, V any] struct {
	capacity int
	m        map[K]*DLLNode[K, V]
	dll      *DoublyLinkedList[K, V]
	onEvict  EvictFunc[K, V]
	mu       sync.Mutex
}

// NewLRUCache creates a new LRUCache of provided size. onEvict may be nil.
func NewLRUCache[K comparable, V any](capacity int, onEvict EvictFunc[K, V]) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		m:        make(map[K]*DLLNode[K, V], capacity),
		dll:      NewDoublyLinkedList[K, V](),
		onEvict:  onEvict,
	}, nil
}

// GetElement gets an element from the cache. It returns
// the associated data with the element with an error.
//
// Whenever an element is retrieved from the cache,
// it's bumped to the MRU position in the DLL.
//
// Error is returned only if the element doesn't exist in the cache.
func (lru *LRUCache[K, V]) GetElement(key K) (V, error) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	node, ok := lru.m[key]
	if !ok {
		var zero V
		return zero, ErrElementDoesntExist
	}
	if node != lru.dll.Head {
		lru.dll.DeleteNode(node)
		lru.m[key] = lru.dll.InsertNodeToLeft(lru.dll.Head, key, node.Value)
	}
	return node.Value, nil
}

// PutElement inserts an element in the cache.
// All insertions occur at the head node of the DLL.
//
// Removal of the LRU is done my deleting the tail node,
// making place for a new node.
func (lru *LRUCache[K, V]) PutElement(key K, value V) error {
	lru.mu.Lock()

	if _, ok := lru.m[key]; ok {
		lru.mu.Unlock()
		return ErrElementAlreadyExists
	}

	var (
		evicted     *DLLNode[K, V]
		shouldEvict bool
	)
	if len(lru.m) == lru.capacity {
		evicted = lru.dll.Tail
		lru.dll.DeleteNode(evicted)
		delete(lru.m, evicted.NodeKey)
		shouldEvict = lru.onEvict != nil
	}
	lru.m[key] = lru.dll.InsertNodeToLeft(lru.dll.Head, key, value)
	lru.mu.Unlock()

	// The callback runs outside the lock so that it may use the cache.
	if shouldEvict {
		lru.onEvict(evicted.NodeKey, evicted.Value)
	}
	return nil
}

// RemoveElement deletes an element from the cache.
func (lru *LRUCache[K, V]) RemoveElement(key K) error {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	node, ok := lru.m[key]
	if !ok {
		return ErrElementDoesntExist
	}
	lru.dll.DeleteNode(node)
	delete(lru.m, key)
	return nil
}

// Capacity returns the max capacity of the cache.
func (lru *LRUCache[K, V]) Capacity() int {
	return lru.capacity
}

// Size returns the number of elements in the cache.
func (lru *LRUCache[K, V]) Size() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return len(lru.m)
}

// Full returns true if the cache is full, else returns false.
func (lru *LRUCache[K, V]) Full() bool {
	return lru.Size() == lru.capacity
}

// Keys returns the keys in the cache, most recently used first.
func (lru *LRUCache[K, V]) Keys() []K {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return lru.dll.Keys()
}
