package event

import (
	"sync/atomic"

	"github.com/lixenwraith/orrery/parameter"
)

// EventQueue buffers simulation events between the world and the host loop
// Any goroutine may Push; only the host loop calls Consume
// A full ring drops its oldest entry to make room
type EventQueue struct {
	ring  [parameter.EventQueueSize]SimEvent
	ready [parameter.EventQueueSize]atomic.Bool // Set once ring[i] is fully written

	head atomic.Uint64 // Next sequence to consume
	tail atomic.Uint64 // Next sequence to claim
}

// NewEventQueue returns an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func slot(seq uint64) uint64 {
	return seq & parameter.EventBufferMask
}

// window clamps the unread span [head, tail) to the ring capacity
func window(head, tail uint64) (start, n uint64) {
	if tail <= head {
		return head, 0
	}
	n = tail - head
	if n > parameter.EventQueueSize {
		return tail - parameter.EventQueueSize, parameter.EventQueueSize
	}
	return head, n
}

// Push appends ev, evicting the oldest unread event when the ring is full
func (eq *EventQueue) Push(ev SimEvent) {
	seq := eq.claim()
	i := slot(seq)
	eq.ring[i] = ev
	eq.ready[i].Store(true)

	// Drag head forward past the overwritten entry
	head := eq.head.Load()
	if seq+1-head > parameter.EventQueueSize {
		eq.head.CompareAndSwap(head, seq+1-parameter.EventQueueSize)
	}
}

// claim reserves the next write sequence
func (eq *EventQueue) claim() uint64 {
	for {
		seq := eq.tail.Load()
		if eq.tail.CompareAndSwap(seq, seq+1) {
			return seq
		}
	}
}

// Consume drains every ready event in push order
// Stops early at a slot a producer has claimed but not yet filled
func (eq *EventQueue) Consume() []SimEvent {
	for {
		head := eq.head.Load()
		start, n := window(head, eq.tail.Load())
		if n == 0 {
			return nil
		}

		out := make([]SimEvent, 0, n)
		for seq := start; seq < start+n; seq++ {
			i := slot(seq)
			if !eq.ready[i].Load() {
				break
			}
			out = append(out, eq.ring[i])
			eq.ready[i].Store(false)
		}

		// Head moved under us when a producer evicted; retry from the new head
		if !eq.head.CompareAndSwap(head, start+uint64(len(out))) {
			continue
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

// Len reports unread events; racy against concurrent pushes
func (eq *EventQueue) Len() int {
	_, n := window(eq.head.Load(), eq.tail.Load())
	return int(n)
}
