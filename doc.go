/*
Package eventing provides a lock-free single-producer/single-consumer
overwrite ring for high-rate telemetry.

The producer never blocks: once the ring wraps, new writes overwrite the
oldest slots. Every write is stamped with a monotonically increasing 32-bit
sequence number (0 is reserved and means "empty"), and the consumer either
drains in order, learning exactly how many items it missed when it lags, or
samples the newest value out of order.

Memory ordering: the producer writes the value, publishes the per-slot
sequence, then publishes the ring-wide newest sequence. The consumer checks
the per-slot sequence before and after copying the value out, which makes a
concurrent overwrite detectable without locking the slot.

At most one producer handle and one consumer handle may be live at a time.
Acquisition is guarded by atomic flags; Release returns a handle's slot to
the ring so it can be acquired again.

Usage:

	ring := eventing.New[uint32](64)

	producer, err := ring.AcquireProducer()
	if err != nil {
		// a producer is already live
	}
	consumer, err := ring.AcquireConsumer()
	if err != nil {
		// a consumer is already live
	}

	producer.Push(42)
	consumer.PollOne(func(seq uint32, v *uint32) {
		// seq == 1, *v == 42
	})

Values are copied into and out of the ring; hooks receive a pointer to a
local copy, never into shared storage. Element types should be plain data
without interior ownership.
*/
package eventing
