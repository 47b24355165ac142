// Package reorderqueue implements a bounded FIFO packet queue with a
// deterministic reordering discipline, used to inject controlled, repeatable
// packet reordering into a (simulated) network path.
//
// After a configurable number of in-order deliveries, the next packet is
// pulled aside into a held slot, a configurable number of later packets are
// delivered past it, and then it is released out of order. Admission stays
// strictly FIFO; only the dequeue order is perturbed.
package reorderqueue

import "github.com/quic-go/reorderqueue/internal/protocol"

// An Item is anything the queue can buffer: an opaque payload with a byte
// size and a stable identity. The queue never inspects anything else.
type Item interface {
	// Size returns the size of the item in bytes.
	Size() protocol.ByteCount
	// UID returns a stable identifier for the item.
	// It is only used for logging and tracing.
	UID() uint64
}
