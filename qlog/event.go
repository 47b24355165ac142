package qlog

import (
	"time"

	"github.com/quic-go/reorderqueue/logging"

	"github.com/francoispqt/gojay"
)

var eventFields = [4]string{"relative_time", "category", "event", "data"}

type events []event

var _ gojay.MarshalerJSONArray = events{}

func (e events) IsNil() bool { return e == nil }

func (e events) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ev := range e {
		enc.Array(ev)
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(milliseconds(e.RelativeTime))
	enc.String(e.Category().String())
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventPacketEnqueued struct {
	UID  uint64
	Size logging.ByteCount
}

var _ eventDetails = eventPacketEnqueued{}

func (e eventPacketEnqueued) Category() category { return categoryQueue }
func (e eventPacketEnqueued) Name() string       { return "packet_enqueued" }
func (e eventPacketEnqueued) IsNil() bool        { return false }

func (e eventPacketEnqueued) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("uid", e.UID)
	enc.Int64Key("size", int64(e.Size))
}

type eventPacketDequeued struct {
	UID  uint64
	Size logging.ByteCount
}

var _ eventDetails = eventPacketDequeued{}

func (e eventPacketDequeued) Category() category { return categoryQueue }
func (e eventPacketDequeued) Name() string       { return "packet_dequeued" }
func (e eventPacketDequeued) IsNil() bool        { return false }

func (e eventPacketDequeued) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("uid", e.UID)
	enc.Int64Key("size", int64(e.Size))
}

type eventPacketDropped struct {
	UID    uint64
	Size   logging.ByteCount
	Reason logging.PacketDropReason
}

var _ eventDetails = eventPacketDropped{}

func (e eventPacketDropped) Category() category { return categoryQueue }
func (e eventPacketDropped) Name() string       { return "packet_dropped" }
func (e eventPacketDropped) IsNil() bool        { return false }

func (e eventPacketDropped) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("uid", e.UID)
	enc.Int64Key("size", int64(e.Size))
	enc.StringKey("trigger", e.Reason.String())
}

type eventPacketHeld struct {
	UID  uint64
	Size logging.ByteCount
}

var _ eventDetails = eventPacketHeld{}

func (e eventPacketHeld) Category() category { return categoryQueue }
func (e eventPacketHeld) Name() string       { return "packet_held" }
func (e eventPacketHeld) IsNil() bool        { return false }

func (e eventPacketHeld) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("uid", e.UID)
	enc.Int64Key("size", int64(e.Size))
}

type eventPacketReleased struct {
	UID      uint64
	Size     logging.ByteCount
	Bypassed int
}

var _ eventDetails = eventPacketReleased{}

func (e eventPacketReleased) Category() category { return categoryQueue }
func (e eventPacketReleased) Name() string       { return "packet_released" }
func (e eventPacketReleased) IsNil() bool        { return false }

func (e eventPacketReleased) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("uid", e.UID)
	enc.Int64Key("size", int64(e.Size))
	enc.IntKey("bypassed", e.Bypassed)
}

type eventPacketRemoved struct {
	UID  uint64
	Size logging.ByteCount
}

var _ eventDetails = eventPacketRemoved{}

func (e eventPacketRemoved) Category() category { return categoryQueue }
func (e eventPacketRemoved) Name() string       { return "packet_removed" }
func (e eventPacketRemoved) IsNil() bool        { return false }

func (e eventPacketRemoved) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("uid", e.UID)
	enc.Int64Key("size", int64(e.Size))
}
