package protocol

// DefaultMaxQueueLength is the queue capacity, in packets, used when the
// config doesn't specify a limit.
const DefaultMaxQueueLength = 100

// DefaultReorderDepth is the number of packets that bypass a held packet
// before it is released, used when the config doesn't specify a depth.
const DefaultReorderDepth = 5

// DefaultInSequenceLength is the number of in-order deliveries between
// reordering events, used when the config doesn't specify a length.
const DefaultInSequenceLength = 3
