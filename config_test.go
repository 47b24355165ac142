package reorderqueue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c := populateConfig(nil)
	require.Equal(t, PacketLimit(100), c.MaxLength)
	require.Equal(t, 5, c.ReorderDepth)
	require.Equal(t, 3, c.InSequenceLength)

	c = populateConfig(&Config{})
	require.Equal(t, PacketLimit(100), c.MaxLength)
	require.Equal(t, 5, c.ReorderDepth)
	require.Equal(t, 3, c.InSequenceLength)
}

func TestConfigZeroValuesViaNegatives(t *testing.T) {
	c := populateConfig(&Config{ReorderDepth: -1, InSequenceLength: -1})
	require.Zero(t, c.ReorderDepth)
	require.Zero(t, c.InSequenceLength)
}

func TestConfigSetValuesKept(t *testing.T) {
	c := populateConfig(&Config{
		MaxLength:        ByteLimit(64000),
		ReorderDepth:     2,
		InSequenceLength: 7,
	})
	require.Equal(t, ByteLimit(64000), c.MaxLength)
	require.Equal(t, 2, c.ReorderDepth)
	require.Equal(t, 7, c.InSequenceLength)
}

func TestConfigClone(t *testing.T) {
	c := &Config{MaxLength: PacketLimit(10), ReorderDepth: 1, InSequenceLength: 2}
	clone := c.Clone()
	require.Equal(t, c, clone)
	clone.ReorderDepth = 9
	require.Equal(t, 1, c.ReorderDepth)
}
