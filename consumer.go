package eventing

// PollStats reports the outcome of one drain call.
type PollStats struct {
	Read    int    // items delivered to the hook
	Dropped int    // items lost to overwrite during this call
	Newest  uint32 // newest published sequence observed
}

// Consumer is the exclusive read handle for a SeqRing. It carries a private
// cursor (newest sequence already delivered in order) and a lifetime drop
// counter; neither is shared with the producer.
// IMPORTANT: all methods must be called from a single consumer goroutine.
type Consumer[T any] struct {
	ring         *SeqRing[T]
	lastSeq      uint32
	droppedAccum int
}

// Dropped returns how many items have been dropped since the consumer was
// acquired (or since ResetDropped).
func (c *Consumer[T]) Dropped() int {
	return c.droppedAccum
}

// ResetDropped clears the drop counter without touching the cursor.
func (c *Consumer[T]) ResetDropped() {
	c.droppedAccum = 0
}

// PollOne drains at most one item in order.
// Reports whether an item was delivered to the hook.
func (c *Consumer[T]) PollOne(hook func(seq uint32, v *T)) bool {
	return c.PollUpTo(1, hook).Read == 1
}

// PollUpTo drains up to max items in strictly increasing sequence order,
// invoking hook once per delivered item. The *T passed to the hook points
// at a local copy made during the read, never into shared storage.
//
// When the consumer lags the producer by more than the capacity, the cursor
// jumps forward to the oldest slot that is still intact and every skipped
// sequence is counted as dropped. max == 0 probes the newest published
// sequence without reading anything.
func (c *Consumer[T]) PollUpTo(max int, hook func(seq uint32, v *T)) PollStats {
	if max <= 0 {
		return PollStats{Newest: c.ring.newestSeq()}
	}

	newest := c.ring.newestSeq()
	if newest == 0 || newest == c.lastSeq {
		return PollStats{Newest: newest}
	}

	var read, dropped int
	n := c.ring.capacity

	for read < max {
		// The producer may advance concurrently; re-read every iteration.
		newest = c.ring.newestSeq()
		if c.lastSeq == newest {
			break
		}

		lag := newest - c.lastSeq
		if lag > n {
			// Fallen behind by more than the ring holds: everything before
			// newest-(n-1) is already overwritten. Jump the cursor there
			// and account the skipped sequences as dropped.
			next := c.lastSeq + 1
			keepFrom := newest - (n - 1)
			dropped += int(keepFrom - next)
			c.lastSeq = keepFrom - 1
			continue
		}

		next := c.lastSeq + 1
		if v, ok := c.ring.readAt(next); ok {
			hook(next, &v)
			c.lastSeq = next
			read++
		} else {
			// Overwritten between the lag check and the read.
			c.lastSeq = next
			dropped++
		}
	}

	c.droppedAccum += dropped

	return PollStats{Read: read, Dropped: dropped, Newest: newest}
}

// Latest reads whatever is newest right now, out of order, without moving
// the cursor or touching drop accounting. Reports whether a value was
// delivered; a concurrent overwrite mid-read counts as a miss.
func (c *Consumer[T]) Latest(hook func(seq uint32, v *T)) bool {
	newest := c.ring.newestSeq()
	if newest == 0 {
		return false
	}

	v, ok := c.ring.readAt(newest)
	if !ok {
		return false
	}

	hook(newest, &v)
	return true
}

// SkipToLatest fast-forwards the cursor so the next in-order poll yields
// the newest item at the time of the call. The skipped backlog is not
// counted as dropped.
func (c *Consumer[T]) SkipToLatest() {
	newest := c.ring.newestSeq()
	if newest != 0 {
		c.lastSeq = newest - 1
	}
}

// Release frees the consumer role so a new consumer can be acquired.
// Idempotent. The handle must not be used after Release.
func (c *Consumer[T]) Release() {
	c.ring.consumerLive.Store(false)
}
