package reorderqueue

import (
	"fmt"
	"strconv"
	"strings"
)

// QueueSizeUnit is the unit a capacity limit is expressed in.
type QueueSizeUnit uint8

const (
	// QueueSizeUnitPackets expresses the limit as a packet count.
	QueueSizeUnitPackets QueueSizeUnit = iota
	// QueueSizeUnitBytes expresses the limit as a byte total.
	QueueSizeUnitBytes
)

func (u QueueSizeUnit) String() string {
	switch u {
	case QueueSizeUnitPackets:
		return "p"
	case QueueSizeUnitBytes:
		return "B"
	default:
		panic("unknown queue size unit")
	}
}

// A QueueSize is a capacity limit: a value together with the unit it is
// expressed in. The two units are mutually exclusive; a queue is limited
// either by packet count or by byte total, never both.
type QueueSize struct {
	Unit  QueueSizeUnit
	Value uint64
}

// PacketLimit returns a QueueSize limiting the queue to n packets.
func PacketLimit(n uint64) QueueSize {
	return QueueSize{Unit: QueueSizeUnitPackets, Value: n}
}

// ByteLimit returns a QueueSize limiting the queue to n bytes.
func ByteLimit(n uint64) QueueSize {
	return QueueSize{Unit: QueueSizeUnitBytes, Value: n}
}

var byteSuffixes = []struct {
	suffix     string
	multiplier uint64
}{
	{"KiB", 1 << 10},
	{"MiB", 1 << 20},
	{"GiB", 1 << 30},
	{"kB", 1e3},
	{"MB", 1e6},
	{"GB", 1e9},
	{"B", 1},
}

// ParseQueueSize parses a capacity limit from its string form: a
// non-negative integer followed by a unit suffix, e.g. "100p", "64000B",
// "64kB" or "1MiB".
func ParseQueueSize(s string) (QueueSize, error) {
	if v, ok := strings.CutSuffix(s, "p"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return QueueSize{}, fmt.Errorf("invalid queue size %q: %w", s, err)
		}
		return PacketLimit(n), nil
	}
	for _, bs := range byteSuffixes {
		v, ok := strings.CutSuffix(s, bs.suffix)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return QueueSize{}, fmt.Errorf("invalid queue size %q: %w", s, err)
		}
		if n > 0 && bs.multiplier > (1<<64-1)/n {
			return QueueSize{}, fmt.Errorf("invalid queue size %q: overflows", s)
		}
		return ByteLimit(n * bs.multiplier), nil
	}
	return QueueSize{}, fmt.Errorf("invalid queue size %q: unknown unit", s)
}

func (s QueueSize) String() string {
	return fmt.Sprintf("%d%s", s.Value, s.Unit)
}
