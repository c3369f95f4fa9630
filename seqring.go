package eventing

import (
	"fmt"
	"sync/atomic"
)

var (
	ErrProducerAcquired = fmt.Errorf("producer already acquired")
	ErrConsumerAcquired = fmt.Errorf("consumer already acquired")
)

// slot couples a value cell with its sequence stamp.
// seq == 0 means the slot has never been written.
type slot[T any] struct {
	seq atomic.Uint32 // sequence number of the value occupying this slot
	val T             // actual value stored in this slot
}

// SeqRing is a fixed-capacity overwrite ring dedicated to one producer and
// one consumer. The producer never waits: once the ring wraps, new writes
// overwrite the oldest slots and the consumer is told how many it missed.
type SeqRing[T any] struct {
	// Optional padding to avoid false sharing between frequently accessed fields
	_            [64]byte
	capacity     uint32
	slots        []slot[T]
	_            [64]byte
	nextSeq      atomic.Uint32 // next sequence to assign, updated by the producer
	_            [64]byte
	publishedSeq atomic.Uint32 // newest sequence visible to the consumer
	_            [64]byte
	producerLive atomic.Bool
	consumerLive atomic.Bool
	_            [64]byte
}

// New creates an empty ring with the given capacity.
// Capacity may be any value > 0; sequence s lives in slot (s-1) % capacity.
func New[T any](capacity int) *SeqRing[T] {
	if capacity <= 0 {
		panic("capacity must be > 0")
	}

	return &SeqRing[T]{
		capacity: uint32(capacity),
		slots:    make([]slot[T], capacity),
	}
}

// AcquireProducer reserves the single producer role.
// Returns ErrProducerAcquired while another producer handle is live.
func (r *SeqRing[T]) AcquireProducer() (*Producer[T], error) {
	if !r.producerLive.CompareAndSwap(false, true) {
		return nil, ErrProducerAcquired
	}
	return &Producer[T]{ring: r}, nil
}

// AcquireConsumer reserves the single consumer role with a fresh cursor.
// Returns ErrConsumerAcquired while another consumer handle is live.
func (r *SeqRing[T]) AcquireConsumer() (*Consumer[T], error) {
	if !r.consumerLive.CompareAndSwap(false, true) {
		return nil, ErrConsumerAcquired
	}
	return &Consumer[T]{ring: r}, nil
}

// Capacity returns the fixed ring capacity.
func (r *SeqRing[T]) Capacity() int {
	return int(r.capacity)
}

// idxFor maps a sequence number to its slot. Two sequences share a slot
// iff they differ by a multiple of the capacity.
func (r *SeqRing[T]) idxFor(seq uint32) uint32 {
	return (seq - 1) % r.capacity
}

func (r *SeqRing[T]) newestSeq() uint32 {
	return r.publishedSeq.Load()
}

// push assigns the next sequence number, stores the value, and publishes it.
// Sequence 0 is reserved for "never written", so the counter skips it on
// wraparound.
func (r *SeqRing[T]) push(v T) uint32 {
	seq := r.nextSeq.Add(1)
	if seq == 0 {
		seq = 1
		r.nextSeq.Store(1)
	}

	s := &r.slots[r.idxFor(seq)]
	s.val = v

	// Publish the value: slot tag first, then the ring-wide newest marker.
	s.seq.Store(seq)
	r.publishedSeq.Store(seq)

	return seq
}

// readAt copies the value tagged seq out of its slot.
// The tag is checked before and after the copy: any mismatch means the
// producer overwrote the slot and the copied bytes may be torn, so the
// copy is discarded.
func (r *SeqRing[T]) readAt(seq uint32) (T, bool) {
	var zero T
	s := &r.slots[r.idxFor(seq)]

	if s.seq.Load() != seq {
		return zero, false
	}

	v := s.val

	if s.seq.Load() != seq {
		return zero, false
	}

	return v, true
}
