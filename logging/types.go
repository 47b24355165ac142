package logging

import "github.com/quic-go/reorderqueue/internal/protocol"

// A ByteCount is a count of bytes
type ByteCount = protocol.ByteCount

// PacketDropReason is the reason a packet is rejected at admission
type PacketDropReason uint8

const (
	// PacketDropQueueFullPackets is used when the buffer already contains its limit's worth of packets
	PacketDropQueueFullPackets PacketDropReason = iota
	// PacketDropQueueFullBytes is used when admitting the packet would reach the byte limit
	PacketDropQueueFullBytes
)

func (r PacketDropReason) String() string {
	switch r {
	case PacketDropQueueFullPackets:
		return "queue_full_packets"
	case PacketDropQueueFullBytes:
		return "queue_full_bytes"
	default:
		panic("unknown packet drop reason")
	}
}
