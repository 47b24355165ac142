// Package qlog records reordering queue events in a qlog-like JSON format.
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/quic-go/reorderqueue/logging"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

type topLevel struct {
	trace trace
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (l topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKey("title", "reorderqueue qlog")
	enc.ObjectKey("trace", l.trace)
}

type trace struct {
	CommonFields commonFields
	EventFields  []string
	Events       events
}

var _ gojay.MarshalerJSONObject = trace{}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("common_fields", t.CommonFields)
	enc.ArrayKey("event_fields", gojay.EncodeArrayFunc(func(enc *gojay.Encoder) {
		for _, f := range t.EventFields {
			enc.String(f)
		}
	}))
	enc.ArrayKey("events", t.Events)
}

type commonFields struct {
	ReferenceTime time.Time
}

var _ gojay.MarshalerJSONObject = commonFields{}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
}

// A tracer records events to an io.WriteCloser. The JSON document's header
// is written up to the (still open) events array; events are then streamed
// as they are recorded, and the document is completed on Close.
type tracer struct {
	w             io.WriteCloser
	referenceTime time.Time

	suffix     []byte
	events     chan event
	encodeErr  error
	runStopped chan struct{}
}

// NewTracer creates a tracer that records queue events to w.
// Close must be called on the returned tracer to flush buffered events and
// complete the JSON document.
func NewTracer(w io.WriteCloser) *logging.Tracer {
	t := newTracer(w)
	return &logging.Tracer{
		EnqueuedPacket: func(uid uint64, size logging.ByteCount) {
			t.recordEvent(eventPacketEnqueued{UID: uid, Size: size})
		},
		DequeuedPacket: func(uid uint64, size logging.ByteCount) {
			t.recordEvent(eventPacketDequeued{UID: uid, Size: size})
		},
		DroppedPacket: func(uid uint64, size logging.ByteCount, reason logging.PacketDropReason) {
			t.recordEvent(eventPacketDropped{UID: uid, Size: size, Reason: reason})
		},
		HeldPacket: func(uid uint64, size logging.ByteCount) {
			t.recordEvent(eventPacketHeld{UID: uid, Size: size})
		},
		ReleasedPacket: func(uid uint64, size logging.ByteCount, bypassed int) {
			t.recordEvent(eventPacketReleased{UID: uid, Size: size, Bypassed: bypassed})
		},
		RemovedPacket: func(uid uint64, size logging.ByteCount) {
			t.recordEvent(eventPacketRemoved{UID: uid, Size: size})
		},
		Close: t.Close,
	}
}

func newTracer(w io.WriteCloser) *tracer {
	t := &tracer{
		w:             w,
		referenceTime: time.Now(),
		events:        make(chan event, eventChanSize),
		runStopped:    make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *tracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	tl := &topLevel{
		trace: trace{
			CommonFields: commonFields{ReferenceTime: t.referenceTime},
			EventFields:  eventFields[:],
		},
	}
	if err := enc.Encode(tl); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	// The document ends with the empty events array and the closing braces.
	// Split those off, so that events can be streamed into the array.
	data := buf.Bytes()
	t.suffix = data[buf.Len()-3:]
	if _, err := t.w.Write(data[:buf.Len()-3]); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	isFirst := true
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if !isFirst {
			t.w.Write([]byte(","))
		}
		if err := enc.Encode(ev); err != nil {
			t.encodeErr = err
		}
		isFirst = false
	}
}

func (t *tracer) recordEvent(details eventDetails) {
	t.events <- event{
		RelativeTime: time.Since(t.referenceTime),
		eventDetails: details,
	}
}

func (t *tracer) Close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

// export writes the end of the qlog and closes the writer.
func (t *tracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	if _, err := t.w.Write(t.suffix); err != nil {
		return err
	}
	return t.w.Close()
}
