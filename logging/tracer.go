// Package logging defines a logging interface for reorderqueue.
// This package should not be considered stable
package logging

// A Tracer records events happening on a reordering queue. Packets are
// identified by their UID. Every callback is optional.
type Tracer struct {
	// EnqueuedPacket is called when a packet is admitted to the buffer.
	EnqueuedPacket func(uid uint64, size ByteCount)
	// DequeuedPacket is called when a packet is delivered in arrival order.
	DequeuedPacket func(uid uint64, size ByteCount)
	// DroppedPacket is called when a packet is rejected at admission.
	DroppedPacket func(uid uint64, size ByteCount, reason PacketDropReason)
	// HeldPacket is called when a packet is pulled out of sequence into the
	// held slot.
	HeldPacket func(uid uint64, size ByteCount)
	// ReleasedPacket is called when a held packet is delivered out of order.
	// bypassed is the number of later packets that were delivered past it.
	ReleasedPacket func(uid uint64, size ByteCount, bypassed int)
	// RemovedPacket is called when a packet is forcibly removed from the
	// head of the buffer, outside of the reordering cycle.
	RemovedPacket func(uid uint64, size ByteCount)
	// Close is called when the tracer is no longer needed.
	// Tracers that buffer events flush them here.
	Close func()
}

// NewMultiplexedTracer creates a new tracer that multiplexes events to
// multiple tracers.
func NewMultiplexedTracer(tracers ...*Tracer) *Tracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &Tracer{
		EnqueuedPacket: func(uid uint64, size ByteCount) {
			for _, t := range tracers {
				if t.EnqueuedPacket != nil {
					t.EnqueuedPacket(uid, size)
				}
			}
		},
		DequeuedPacket: func(uid uint64, size ByteCount) {
			for _, t := range tracers {
				if t.DequeuedPacket != nil {
					t.DequeuedPacket(uid, size)
				}
			}
		},
		DroppedPacket: func(uid uint64, size ByteCount, reason PacketDropReason) {
			for _, t := range tracers {
				if t.DroppedPacket != nil {
					t.DroppedPacket(uid, size, reason)
				}
			}
		},
		HeldPacket: func(uid uint64, size ByteCount) {
			for _, t := range tracers {
				if t.HeldPacket != nil {
					t.HeldPacket(uid, size)
				}
			}
		},
		ReleasedPacket: func(uid uint64, size ByteCount, bypassed int) {
			for _, t := range tracers {
				if t.ReleasedPacket != nil {
					t.ReleasedPacket(uid, size, bypassed)
				}
			}
		},
		RemovedPacket: func(uid uint64, size ByteCount) {
			for _, t := range tracers {
				if t.RemovedPacket != nil {
					t.RemovedPacket(uid, size)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
