package reorderqueue

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/quic-go/reorderqueue/internal/protocol"
)

var packetUID atomic.Uint64

// A Packet is a raw datagram with an opaque payload.
// The payload is backed by a pooled buffer; Release returns it to the pool.
type Packet struct {
	uid uint64
	buf *packetBuffer
}

var _ Item = &Packet{}

// NewPacket creates a packet holding a copy of data.
func NewPacket(data []byte) *Packet {
	buf := getPacketBuffer(protocol.ByteCount(len(data)))
	buf.Data = append(buf.Data, data...)
	return &Packet{
		uid: packetUID.Add(1),
		buf: buf,
	}
}

// Size returns the payload size in bytes.
func (p *Packet) Size() protocol.ByteCount { return protocol.ByteCount(len(p.buf.Data)) }

// UID returns the packet's unique identifier.
// UIDs are assigned in creation order and never reused.
func (p *Packet) UID() uint64 { return p.uid }

// Data returns the payload. The returned slice is only valid until Release
// is called.
func (p *Packet) Data() []byte { return p.buf.Data }

// Release returns the payload buffer to the pool.
// The packet must not be used afterwards.
func (p *Packet) Release() {
	p.buf.Release()
	p.buf = nil
}

// A QueueDiscItem wraps an item together with the destination address and
// the time it entered the queueing layer. It is the item type used when the
// queue sits below a queueing discipline rather than directly on a link.
type QueueDiscItem struct {
	Item Item
	// Addr is the destination the wrapped item is headed for.
	Addr net.Addr
	// EnqueueTime is when the item entered the queueing layer.
	EnqueueTime time.Time
}

var _ Item = &QueueDiscItem{}

// Size returns the size of the wrapped item.
func (i *QueueDiscItem) Size() protocol.ByteCount { return i.Item.Size() }

// UID returns the UID of the wrapped item.
func (i *QueueDiscItem) UID() uint64 { return i.Item.UID() }
