package reorderqueue

import "github.com/quic-go/reorderqueue/internal/protocol"

// Config contains the configuration of a reordering queue.
type Config struct {
	// MaxLength is the capacity limit of the queue, expressed either as a
	// packet count or as a byte total. It governs admission only.
	// If not set, a limit of 100 packets is used.
	MaxLength QueueSize
	// ReorderDepth is the number of deliveries allowed to bypass a held
	// packet before it is released.
	// If not set, a depth of 5 is used.
	// Set to a negative value to release every held packet on the very next
	// delivery.
	ReorderDepth int
	// InSequenceLength is the number of consecutive in-order deliveries
	// after which the next packet is held.
	// If not set, a length of 3 is used.
	// Set to a negative value to start a new hold as soon as the previous
	// cycle ends.
	InSequenceLength int
}

// Clone clones a Config.
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

// populateConfig populates fields in the Config with their default values, if none are set
// it may be called with nil
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	maxLength := config.MaxLength
	if maxLength == (QueueSize{}) {
		maxLength = PacketLimit(protocol.DefaultMaxQueueLength)
	}
	reorderDepth := config.ReorderDepth
	if reorderDepth == 0 {
		reorderDepth = protocol.DefaultReorderDepth
	} else if reorderDepth < 0 {
		reorderDepth = 0
	}
	inSequenceLength := config.InSequenceLength
	if inSequenceLength == 0 {
		inSequenceLength = protocol.DefaultInSequenceLength
	} else if inSequenceLength < 0 {
		inSequenceLength = 0
	}
	return &Config{
		MaxLength:        maxLength,
		ReorderDepth:     reorderDepth,
		InSequenceLength: inSequenceLength,
	}
}
