// Package protocol contains types and constants shared across the module.
package protocol

// A ByteCount in reorderqueue
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// MaxPacketBufferSize is the maximum payload size of a pooled packet buffer.
// Larger packets are backed by one-off allocations.
const MaxPacketBufferSize ByteCount = 1452
