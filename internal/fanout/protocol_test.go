package fanout

import (
	"bytes"
	"testing"

	"fly-the-w/internal/testutil"
)

func TestFrameEnvelopeRoundTrip(t *testing.T) {
	ts := testutil.MustParseRFC3339("2026-08-27T15:00:00Z")
	pix := bytes.Repeat([]byte{14, 51, 134}, 4)

	data, err := MarshalFrame(2, 2, pix, ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	env, err := UnmarshalEnvelope(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Type != TypeFrame || env.Width != 2 || env.Height != 2 {
		t.Fatalf("envelope = %+v", env)
	}
	if !bytes.Equal(env.Pix, pix) {
		t.Fatal("pixel payload corrupted in transit")
	}
	if !env.Timestamp.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", env.Timestamp, ts)
	}
}

func TestIdleEnvelopeRoundTrip(t *testing.T) {
	ts := testutil.MustParseRFC3339("2026-08-27T15:00:00Z")

	data, err := MarshalIdle(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	env, err := UnmarshalEnvelope(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Type != TypeIdle || len(env.Pix) != 0 {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestUnmarshalRejectsSizeMismatch(t *testing.T) {
	ts := testutil.MustParseRFC3339("2026-08-27T15:00:00Z")
	data, err := MarshalFrame(4, 4, []byte{1, 2, 3}, ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := UnmarshalEnvelope(data); err == nil {
		t.Fatal("undersized frame payload must be rejected")
	}
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	if _, err := UnmarshalEnvelope([]byte(`{"type":"confetti","ts":"2026-08-27T15:00:00Z"}`)); err == nil {
		t.Fatal("unknown message type must be rejected")
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalEnvelope([]byte("not json")); err == nil {
		t.Fatal("garbage must be rejected")
	}
}
