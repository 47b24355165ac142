package reorderqueue

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPacket(t *testing.T) {
	data := []byte("foobar")
	p := NewPacket(data)
	require.EqualValues(t, 6, p.Size())
	require.Equal(t, data, p.Data())

	// the payload is a copy
	data[0] = 'x'
	require.Equal(t, []byte("foobar"), p.Data())

	p2 := NewPacket([]byte("lorem ipsum"))
	require.Greater(t, p2.UID(), p.UID())
	p.Release()
	p2.Release()
}

func TestPacketThroughQueue(t *testing.T) {
	q := New[*Packet](&Config{InSequenceLength: 1, ReorderDepth: 1}, nil)
	p1 := NewPacket([]byte("first"))
	p2 := NewPacket([]byte("second"))
	p3 := NewPacket([]byte("third"))
	require.True(t, q.Enqueue(p1))
	require.True(t, q.Enqueue(p2))
	require.True(t, q.Enqueue(p3))

	got, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, []byte("first"), got.Data())
	got, ok = q.Dequeue() // p2 held, p3 bypasses
	require.True(t, ok)
	require.Equal(t, []byte("third"), got.Data())
	got, ok = q.Dequeue()
	require.True(t, ok)
	require.Equal(t, []byte("second"), got.Data())

	for _, p := range []*Packet{p1, p2, p3} {
		p.Release()
	}
}

func TestQueueDiscItem(t *testing.T) {
	p := NewPacket([]byte("foobar"))
	defer p.Release()
	now := time.Now()
	item := &QueueDiscItem{
		Item:        p,
		Addr:        &net.UDPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 1234},
		EnqueueTime: now,
	}
	require.Equal(t, p.Size(), item.Size())
	require.Equal(t, p.UID(), item.UID())

	q := New[*QueueDiscItem](nil, nil)
	require.True(t, q.Enqueue(item))
	got, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, now, got.EnqueueTime)
}
