package listservice

import (
	"encoding/json"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
	"github.com/spaolacci/murmur3"
	"go.uber.org/atomic"

	"github.com/SystemBuilders/ListKey/internal/cache"
	"github.com/SystemBuilders/ListKey/internal/list"
)

// hostedList pairs a list with the mutex serialising access to it.
type hostedList struct {
	mu   sync.Mutex
	list *list.SinglyLinkedList[Value]
}

type shard struct {
	lists *cache.LRUCache[ulid.ULID, *hostedList]
}

var _ ListService = (*SimpleListService)(nil)

// SimpleListService is a list service that implements ListService.
//
// Lists are spread over shards by the murmur3 hash of their ID. Each
// shard keeps its lists in an LRU cache, so the service never holds
// more than roughly Options.Capacity lists. Each list has its own lock.
type SimpleListService struct {
	log    zerolog.Logger
	shards []*shard

	entropyMu sync.Mutex
	entropy   io.Reader

	hosted  atomic.Int64
	evicted atomic.Int64
	ops     atomic.Int64
}

// NewSimpleListService creates and returns a new list service ready to use.
func NewSimpleListService(log zerolog.Logger, opts Options) (*SimpleListService, error) {
	if opts.Capacity <= 0 || opts.Shards <= 0 {
		return nil, ErrInvalidOptions
	}
	if opts.Shards > opts.Capacity {
		opts.Shards = opts.Capacity
	}
	shardCapacity := (opts.Capacity + opts.Shards - 1) / opts.Shards

	ls := &SimpleListService{
		log:     log,
		shards:  make([]*shard, opts.Shards),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	for i := range ls.shards {
		lists, err := cache.NewLRUCache[ulid.ULID, *hostedList](shardCapacity, ls.onEvict)
		if err != nil {
			return nil, err
		}
		ls.shards[i] = &shard{lists: lists}
	}

	ls.
		log.
		Info().
		Int("capacity", opts.Capacity).
		Int("shards", opts.Shards).
		Msg("list service ready")
	return ls, nil
}

func (ls *SimpleListService) onEvict(id ulid.ULID, _ *hostedList) {
	ls.hosted.Dec()
	ls.evicted.Inc()
	ls.
		log.
		Info().
		Str("list", id.String()).
		Msg("evicted, capacity reached")
}

func (ls *SimpleListService) shardFor(id ulid.ULID) *shard {
	return ls.shards[murmur3.Sum32(id[:])%uint32(len(ls.shards))]
}

func (ls *SimpleListService) newID() (ulid.ULID, error) {
	ls.entropyMu.Lock()
	defer ls.entropyMu.Unlock()
	return ulid.New(ulid.Timestamp(time.Now()), ls.entropy)
}

// withList runs fn on the list with the given ID while holding its lock.
func (ls *SimpleListService) withList(id ulid.ULID, fn func(l *list.SinglyLinkedList[Value]) error) error {
	hl, err := ls.shardFor(id).lists.GetElement(id)
	if err != nil {
		ls.
			log.
			Debug().
			Str("list", id.String()).
			Msg("list doesn't exist")
		return ErrListDoesntExist
	}

	hl.mu.Lock()
	defer hl.mu.Unlock()
	ls.ops.Inc()
	return fn(hl.list)
}

// own validates v and copies it, so that the caller's buffer
// can be reused once the call returns.
func own(v Value) (Value, error) {
	if !json.Valid(v) {
		return nil, ErrInvalidValue
	}
	return append(Value(nil), v...), nil
}

// Create creates a new empty list.
func (ls *SimpleListService) Create() (ulid.ULID, error) {
	id, err := ls.newID()
	if err != nil {
		return ulid.ULID{}, err
	}
	hl := &hostedList{
		list: list.New[Value](),
	}
	if err := ls.shardFor(id).lists.PutElement(id, hl); err != nil {
		return ulid.ULID{}, err
	}
	ls.hosted.Inc()

	ls.
		log.
		Debug().
		Str("list", id.String()).
		Msg("created")
	return id, nil
}

// Drop deletes a list.
func (ls *SimpleListService) Drop(id ulid.ULID) error {
	if err := ls.shardFor(id).lists.RemoveElement(id); err != nil {
		ls.
			log.
			Debug().
			Str("list", id.String()).
			Msg("can't drop, doesn't exist")
		return ErrListDoesntExist
	}
	ls.hosted.Dec()

	ls.
		log.
		Debug().
		Str("list", id.String()).
		Msg("dropped")
	return nil
}

// IDs returns the IDs of the hosted lists, shard by shard,
// most recently used first within a shard.
func (ls *SimpleListService) IDs() []ulid.ULID {
	ids := make([]ulid.ULID, 0, ls.hosted.Load())
	for _, sh := range ls.shards {
		ids = append(ids, sh.lists.Keys()...)
	}
	return ids
}

// Snapshot copies the values of a list from head to tail.
func (ls *SimpleListService) Snapshot(id ulid.ULID) (Snapshot, error) {
	snap := Snapshot{ID: id}
	err := ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		snap.Length = l.Len()
		snap.Values = make([]Value, 0, l.Len())
		for node := l.Head(); node != nil; node = node.Next() {
			snap.Values = append(snap.Values, node.Value)
		}
		return nil
	})
	return snap, err
}

// Push appends a value to a list.
func (ls *SimpleListService) Push(id ulid.ULID, v Value) (int, error) {
	v, err := own(v)
	if err != nil {
		return 0, err
	}

	var length int
	err = ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		length = l.Push(v).Len()
		return nil
	})
	if err == nil {
		ls.
			log.
			Debug().
			Str("list", id.String()).
			Int("length", length).
			Msg("pushed")
	}
	return length, err
}

// Unshift prepends a value to a list.
func (ls *SimpleListService) Unshift(id ulid.ULID, v Value) (int, error) {
	v, err := own(v)
	if err != nil {
		return 0, err
	}

	var length int
	err = ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		length = l.Unshift(v).Len()
		return nil
	})
	if err == nil {
		ls.
			log.
			Debug().
			Str("list", id.String()).
			Int("length", length).
			Msg("unshifted")
	}
	return length, err
}

// Pop removes the last value of a list.
func (ls *SimpleListService) Pop(id ulid.ULID) (Value, error) {
	var v Value
	err := ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		node, ok := l.Pop()
		if !ok {
			return ErrEmptyList
		}
		v = node.Value
		return nil
	})
	ls.logResult(id, "pop", err)
	return v, err
}

// Shift removes the first value of a list.
func (ls *SimpleListService) Shift(id ulid.ULID) (Value, error) {
	var v Value
	err := ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		node, ok := l.Shift()
		if !ok {
			return ErrEmptyList
		}
		v = node.Value
		return nil
	})
	ls.logResult(id, "shift", err)
	return v, err
}

// Get returns the value at a position of a list.
func (ls *SimpleListService) Get(id ulid.ULID, position int) (Value, error) {
	var v Value
	err := ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		node, ok := l.Get(position)
		if !ok {
			return ErrPositionOutOfRange
		}
		v = node.Value
		return nil
	})
	return v, err
}

// Set overwrites the value at a position of a list.
func (ls *SimpleListService) Set(id ulid.ULID, position int, v Value) error {
	v, err := own(v)
	if err != nil {
		return err
	}

	err = ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		if !l.Set(position, v) {
			return ErrPositionOutOfRange
		}
		return nil
	})
	ls.logResult(id, "set", err)
	return err
}

// Insert adds a value at a position of a list.
func (ls *SimpleListService) Insert(id ulid.ULID, position int, v Value) (int, error) {
	v, err := own(v)
	if err != nil {
		return 0, err
	}

	var length int
	err = ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		if !l.Insert(position, v) {
			return ErrPositionOutOfRange
		}
		length = l.Len()
		return nil
	})
	ls.logResult(id, "insert", err)
	return length, err
}

// Remove removes the value at a position of a list.
func (ls *SimpleListService) Remove(id ulid.ULID, position int) (Value, error) {
	var v Value
	err := ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		node, ok := l.Remove(position)
		if !ok {
			return ErrPositionOutOfRange
		}
		v = node.Value
		return nil
	})
	ls.logResult(id, "remove", err)
	return v, err
}

// Reverse reverses a list in place.
func (ls *SimpleListService) Reverse(id ulid.ULID) error {
	err := ls.withList(id, func(l *list.SinglyLinkedList[Value]) error {
		l.Reverse()
		return nil
	})
	ls.logResult(id, "reverse", err)
	return err
}

// Stats returns the service counters.
func (ls *SimpleListService) Stats() Stats {
	return Stats{
		Lists:      ls.hosted.Load(),
		Evicted:    ls.evicted.Load(),
		Operations: ls.ops.Load(),
	}
}

func (ls *SimpleListService) logResult(id ulid.ULID, op string, err error) {
	if err != nil {
		ls.
			log.
			Debug().
			Str("list", id.String()).
			Str("op", op).
			Err(err).
			Msg("failed")
		return
	}
	ls.
		log.
		Debug().
		Str("list", id.String()).
		Str("op", op).
		Msg("applied")
}
