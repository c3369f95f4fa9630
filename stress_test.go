package eventing

import (
	"runtime"
	"testing"

	"github.com/valyala/fastrand"
)

// Concurrent SPSC stress: a fast producer against a consumer draining with
// randomized batch sizes. Checks that delivered sequences are strictly
// increasing, every delivered value matches its sequence, and that reads
// plus drops account for every push exactly once.
func TestSPSCStressRandomBatches(t *testing.T) {
	const (
		capacity = 1 << 10
		N        = 200_000
	)

	r := New[int](capacity)
	p, _ := r.AcquireProducer()
	c, _ := r.AcquireConsumer()

	go func() {
		for i := 0; i < N; i++ {
			p.Push(i)
		}
	}()

	var (
		lastSeq      uint32
		totalRead    int
		totalDropped int
	)

	for totalRead+totalDropped < N {
		max := int(fastrand.Uint32n(64)) + 1
		stats := c.PollUpTo(max, func(seq uint32, v *int) {
			if seq <= lastSeq {
				t.Fatalf("sequence went backwards: %d after %d", seq, lastSeq)
			}
			if *v != int(seq)-1 {
				t.Fatalf("sequence %d: expected value %d, got %d", seq, int(seq)-1, *v)
			}
			lastSeq = seq
		})

		totalRead += stats.Read
		totalDropped += stats.Dropped

		if stats.Read == 0 && stats.Dropped == 0 {
			// queue empty at the moment, give the producer a chance
			runtime.Gosched()
		}
	}

	// The cursor visits every sequence exactly once, as a read or a drop.
	if totalRead+totalDropped != N {
		t.Fatalf("expected read+dropped == %d, got %d", N, totalRead+totalDropped)
	}
	if lastSeq != N {
		t.Fatalf("expected the final item (sequence %d) to be delivered, got %d", N, lastSeq)
	}
	if c.Dropped() != totalDropped {
		t.Fatalf("accumulated drops %d disagree with per-call sum %d", c.Dropped(), totalDropped)
	}
}

// A lagging consumer that only ever samples the newest value must still see
// values consistent with their sequence stamps (no torn reads).
func TestLatestUnderLoad(t *testing.T) {
	const (
		capacity = 8
		N        = 100_000
	)

	r := New[int](capacity)
	p, _ := r.AcquireProducer()
	c, _ := r.AcquireConsumer()

	producerDone := make(chan struct{})
	go func() {
		for i := 0; i < N; i++ {
			p.Push(i)
		}
		close(producerDone)
	}()

	sampled := 0
	for {
		ok := c.Latest(func(seq uint32, v *int) {
			if *v != int(seq)-1 {
				t.Fatalf("torn read: sequence %d carries value %d", seq, *v)
			}
		})
		if ok {
			sampled++
		}

		select {
		case <-producerDone:
			// One final sample must observe the very last push.
			var got pair
			if !c.Latest(func(seq uint32, v *int) { got = pair{seq, *v} }) {
				t.Fatalf("expected a final sample after the producer finished")
			}
			if got != (pair{N, N - 1}) {
				t.Fatalf("expected final sample (%d, %d), got %+v", N, N-1, got)
			}
			if sampled == 0 {
				t.Fatalf("expected at least one successful sample under load")
			}
			return
		default:
		}
	}
}
