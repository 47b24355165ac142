package reorderqueue

import (
	"testing"

	"github.com/quic-go/reorderqueue/internal/protocol"

	"github.com/stretchr/testify/require"
)

func TestBufferPoolSizes(t *testing.T) {
	buf := getPacketBuffer(100)
	require.Zero(t, len(buf.Data))
	require.Equal(t, int(protocol.MaxPacketBufferSize), cap(buf.Data))
	buf.Data = append(buf.Data, []byte("foobar")...)
	buf.Release()

	large := getPacketBuffer(2 * protocol.MaxPacketBufferSize)
	require.Equal(t, int(2*protocol.MaxPacketBufferSize), cap(large.Data))
	large.Release() // not pooled, must not panic
}
