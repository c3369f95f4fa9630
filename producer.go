package eventing

// Producer is the exclusive write handle for a SeqRing.
// At most one producer is live at a time; see SeqRing.AcquireProducer.
type Producer[T any] struct {
	ring *SeqRing[T]
}

// Push stores v in the ring and returns its sequence number (never 0).
// Push never blocks and never fails: when the consumer lags, the oldest
// undrained slot is overwritten.
// IMPORTANT: must be called from a single producer goroutine.
func (p *Producer[T]) Push(v T) uint32 {
	return p.ring.push(v)
}

// Release frees the producer role so a new producer can be acquired.
// Idempotent. The handle must not be used after Release.
func (p *Producer[T]) Release() {
	p.ring.producerLive.Store(false)
}
