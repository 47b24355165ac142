package reorderqueue

import (
	"sync"

	"github.com/quic-go/reorderqueue/internal/protocol"
)

type packetBuffer struct {
	Data []byte
}

// Release puts the buffer back into the pool.
// It must not be used afterwards.
func (b *packetBuffer) Release() {
	// one-off allocations for oversized packets are not pooled
	if cap(b.Data) != int(protocol.MaxPacketBufferSize) {
		return
	}
	b.Data = b.Data[:0]
	bufferPool.Put(b)
}

var bufferPool sync.Pool

func getPacketBuffer(size protocol.ByteCount) *packetBuffer {
	if size > protocol.MaxPacketBufferSize {
		return &packetBuffer{Data: make([]byte, 0, size)}
	}
	return bufferPool.Get().(*packetBuffer)
}

func init() {
	bufferPool.New = func() any {
		return &packetBuffer{Data: make([]byte, 0, protocol.MaxPacketBufferSize)}
	}
}
