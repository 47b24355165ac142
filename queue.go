package reorderqueue

import (
	"sync"

	"github.com/quic-go/reorderqueue/internal/protocol"
	"github.com/quic-go/reorderqueue/internal/utils"
	"github.com/quic-go/reorderqueue/internal/utils/ringbuffer"
	"github.com/quic-go/reorderqueue/logging"
)

// Stats is a snapshot of the queue's aggregate counters.
type Stats struct {
	// ReceivedPackets is the number of packets admitted to the buffer.
	ReceivedPackets uint64
	// ReceivedBytes is the byte total of all admitted packets.
	ReceivedBytes protocol.ByteCount
	// DroppedPackets is the number of packets rejected at admission.
	DroppedPackets uint64
	// DroppedBytes is the byte total of all rejected packets.
	DroppedBytes protocol.ByteCount
}

// A Queue is a bounded FIFO packet queue with a deterministic reordering
// discipline. Packets are buffered in arrival order, subject to the
// configured capacity limit. Dequeue delivers them in arrival order, except
// that after every InSequenceLength in-order deliveries one packet is pulled
// into a held slot, up to ReorderDepth later packets are delivered past it,
// and then it is released. The resulting emission order reorders exactly one
// packet per cycle.
//
// The zero value is ready to use and applies the config defaults. Exported
// fields must not be modified after the first call to any method.
//
// The queue is built for a single packet-processing path. A mutex makes the
// individual operations safe for concurrent use; each call is one atomic
// step of the reordering cycle.
type Queue[T Item] struct {
	// Config is the queue configuration. A nil Config uses the defaults.
	Config *Config
	// Tracer records queue events. Optional.
	Tracer *logging.Tracer
	// DroppedPacket is called with every packet rejected at admission,
	// together with the reason. Ownership of the packet passes to the
	// callback; a rejected packet never enters the buffer. Optional.
	DroppedPacket func(T, logging.PacketDropReason)

	initOnce sync.Once
	conf     *Config
	logger   utils.Logger

	mu           sync.Mutex
	packets      ringbuffer.RingBuffer[T]
	bytesInQueue protocol.ByteCount

	// held is the packet currently pending out-of-order delivery.
	// It has left the buffer, but is still owned by the queue: its size is
	// part of bytesInQueue.
	held    T
	hasHeld bool
	// Exactly one of the two counters is advancing at any time:
	// holdCount while a packet is held, inSequenceCount otherwise.
	holdCount       int
	inSequenceCount int

	stats Stats
}

// New creates a reordering queue.
// It is equivalent to &Queue[T]{Config: conf, Tracer: tracer}.
func New[T Item](conf *Config, tracer *logging.Tracer) *Queue[T] {
	return &Queue[T]{Config: conf, Tracer: tracer}
}

func (q *Queue[T]) init() {
	q.initOnce.Do(func() {
		q.conf = populateConfig(q.Config)
		q.logger = utils.DefaultLogger.WithPrefix("reorderqueue")
	})
}

// Enqueue offers a packet to the queue and reports whether it was admitted.
// A rejected packet is handed to the DroppedPacket callback and is never
// buffered nor charged to the queue's byte total. Admission never interacts
// with the held slot or the reorder counters.
func (q *Queue[T]) Enqueue(item T) bool {
	q.init()
	size := item.Size()

	q.mu.Lock()
	// The packet count check only considers the buffer, not the held slot:
	// while a packet is held, the queue transiently owns limit+1 packets.
	// The byte check uses bytesInQueue, which does include the held packet.
	if q.conf.MaxLength.Unit == QueueSizeUnitPackets && uint64(q.packets.Len()) >= q.conf.MaxLength.Value {
		q.stats.DroppedPackets++
		q.stats.DroppedBytes += size
		q.mu.Unlock()
		q.drop(item, size, logging.PacketDropQueueFullPackets)
		return false
	}
	if q.conf.MaxLength.Unit == QueueSizeUnitBytes && uint64(q.bytesInQueue+size) >= q.conf.MaxLength.Value {
		q.stats.DroppedPackets++
		q.stats.DroppedBytes += size
		q.mu.Unlock()
		q.drop(item, size, logging.PacketDropQueueFullBytes)
		return false
	}
	q.packets.PushBack(item)
	q.bytesInQueue += size
	q.stats.ReceivedPackets++
	q.stats.ReceivedBytes += size
	numPackets := q.packets.Len()
	numBytes := q.bytesInQueue
	q.mu.Unlock()

	if q.Tracer != nil && q.Tracer.EnqueuedPacket != nil {
		q.Tracer.EnqueuedPacket(item.UID(), size)
	}
	q.logger.Debugf("Enqueued packet %d (%d bytes). Queue: %d packets, %d bytes.", item.UID(), size, numPackets, numBytes)
	return true
}

func (q *Queue[T]) drop(item T, size protocol.ByteCount, reason logging.PacketDropReason) {
	q.logger.Debugf("Queue full (%s). Dropping packet %d (%d bytes).", reason, item.UID(), size)
	if q.Tracer != nil && q.Tracer.DroppedPacket != nil {
		q.Tracer.DroppedPacket(item.UID(), size, reason)
	}
	if q.DroppedPacket != nil {
		q.DroppedPacket(item, reason)
	}
}

// dequeueResult describes what a Dequeue call did, for tracing. It is
// assembled while the mutex is held; the tracer callbacks run after it is
// released.
type dequeueResult struct {
	heldSet  bool // a packet was pulled into the held slot on this call
	heldUID  uint64
	heldSize protocol.ByteCount
	released bool // the returned packet is a released held packet
	bypassed int  // number of packets that overtook it, if released
}

// Dequeue removes and returns the next packet to deliver.
// It reports false if the buffer is empty; that is a normal condition, not
// an error. The packet returned is either the head of the buffer or, on a
// release, the previously held packet.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.init()
	q.mu.Lock()
	p, res, ok := q.dequeueLocked()
	q.mu.Unlock()
	if !ok {
		return p, false
	}

	if res.heldSet {
		if q.Tracer != nil && q.Tracer.HeldPacket != nil {
			q.Tracer.HeldPacket(res.heldUID, res.heldSize)
		}
		q.logger.Debugf("Holding packet %d.", res.heldUID)
	}
	if res.released {
		if q.Tracer != nil && q.Tracer.ReleasedPacket != nil {
			q.Tracer.ReleasedPacket(p.UID(), p.Size(), res.bypassed)
		}
		q.logger.Debugf("Released packet %d after %d bypasses.", p.UID(), res.bypassed)
	} else {
		if q.Tracer != nil && q.Tracer.DequeuedPacket != nil {
			q.Tracer.DequeuedPacket(p.UID(), p.Size())
		}
		q.logger.Debugf("Dequeued packet %d (%d bytes).", p.UID(), p.Size())
	}
	return p, true
}

func (q *Queue[T]) dequeueLocked() (T, dequeueResult, bool) {
	var res dequeueResult

	if q.packets.Empty() {
		var zero T
		return zero, res, false
	}

	// A held packet has been bypassed ReorderDepth times: release it.
	// The buffer is untouched on this call.
	// The comparison must not demand equality: the call that holds a packet
	// also delivers one bypass, so with a depth of 0 the counter starts
	// above the target.
	if q.hasHeld && q.holdCount >= q.conf.ReorderDepth {
		p, bypassed := q.releaseHeld()
		res.released = true
		res.bypassed = bypassed
		return p, res, true
	}

	if !q.hasHeld && q.inSequenceCount == q.conf.InSequenceLength {
		q.held = q.packets.PopFront()
		q.hasHeld = true
		q.inSequenceCount = 0
		q.holdCount = 0
		res.heldSet = true
		res.heldUID = q.held.UID()
		res.heldSize = q.held.Size()
		if q.packets.Empty() {
			// Nothing left to reorder against. Release the packet we just
			// held, on this same call.
			p, bypassed := q.releaseHeld()
			res.released = true
			res.bypassed = bypassed
			return p, res, true
		}
	}

	p := q.packets.PopFront()
	q.bytesInQueue -= p.Size()
	if q.hasHeld {
		q.holdCount++
	} else {
		q.inSequenceCount++
	}
	return p, res, true
}

// releaseHeld empties the held slot and resets the cycle.
// It must be called with the mutex held and hasHeld set.
func (q *Queue[T]) releaseHeld() (T, int) {
	p := q.held
	bypassed := q.holdCount
	var zero T
	q.held = zero
	q.hasHeld = false
	q.bytesInQueue -= p.Size()
	q.holdCount = 0
	q.inSequenceCount = 0
	return p, bypassed
}

// Peek returns the packet at the head of the buffer without removing it and
// without touching the reorder counters. It reports false if the buffer is
// empty. A held packet is never visible here: it has already left the
// buffer.
func (q *Queue[T]) Peek() (T, bool) {
	q.init()
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.packets.Empty() {
		var zero T
		return zero, false
	}
	return q.packets.PeekFront(), true
}

// Remove forcibly takes the packet at the head of the buffer, bypassing the
// reordering cycle: the counters and the held slot are untouched, and the
// call doesn't count as a delivery. It reports false if the buffer is empty.
//
// A held packet only ever leaves the queue through Dequeue. Repeated Remove
// calls drain the buffer, but not the held slot.
func (q *Queue[T]) Remove() (T, bool) {
	q.init()
	q.mu.Lock()
	if q.packets.Empty() {
		q.mu.Unlock()
		var zero T
		return zero, false
	}
	p := q.packets.PopFront()
	q.bytesInQueue -= p.Size()
	q.mu.Unlock()

	if q.Tracer != nil && q.Tracer.RemovedPacket != nil {
		q.Tracer.RemovedPacket(p.UID(), p.Size())
	}
	q.logger.Debugf("Removed packet %d (%d bytes).", p.UID(), p.Size())
	return p, true
}

// Len returns the number of packets in the buffer.
// A held packet is not counted; it has left the buffer.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.packets.Len()
}

// Bytes returns the byte total of all packets currently owned by the queue,
// including a held packet.
func (q *Queue[T]) Bytes() protocol.ByteCount {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.bytesInQueue
}

// Stats returns a snapshot of the queue's aggregate counters.
func (q *Queue[T]) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stats
}
