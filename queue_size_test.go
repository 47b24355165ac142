package reorderqueue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQueueSize(t *testing.T) {
	for _, tc := range []struct {
		str  string
		size QueueSize
	}{
		{"100p", PacketLimit(100)},
		{"0p", PacketLimit(0)},
		{"64000B", ByteLimit(64000)},
		{"64kB", ByteLimit(64000)},
		{"2KiB", ByteLimit(2048)},
		{"3MB", ByteLimit(3e6)},
		{"1MiB", ByteLimit(1 << 20)},
		{"1GB", ByteLimit(1e9)},
		{"1GiB", ByteLimit(1 << 30)},
	} {
		size, err := ParseQueueSize(tc.str)
		require.NoError(t, err, tc.str)
		require.Equal(t, tc.size, size, tc.str)
	}
}

func TestParseQueueSizeErrors(t *testing.T) {
	for _, str := range []string{"", "100", "p", "1.5p", "-1p", "100x", "B100", "99999999999999999999p"} {
		_, err := ParseQueueSize(str)
		require.Error(t, err, str)
	}
}

func TestQueueSizeStringer(t *testing.T) {
	require.Equal(t, "100p", PacketLimit(100).String())
	require.Equal(t, "64000B", ByteLimit(64000).String())
	s, err := ParseQueueSize(PacketLimit(42).String())
	require.NoError(t, err)
	require.Equal(t, PacketLimit(42), s)
}
