package fanout

import (
	"encoding/json"
	"fmt"
	"time"
)

// Message types carried over the fanout WebSocket.
const (
	TypeFrame = "frame"
	TypeIdle  = "idle"
)

// Envelope is the wire format for messages sent to remote matrix clients.
// Pix is base64-encoded by encoding/json; clients reconstruct the frame
// from Width*Height*3 packed RGB bytes.
type Envelope struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"ts"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
	Pix       []byte    `json:"pix,omitempty"`
}

// MarshalFrame serializes a frame Envelope.
func MarshalFrame(width, height int, pix []byte, ts time.Time) ([]byte, error) {
	env := Envelope{
		Type:      TypeFrame,
		Timestamp: ts,
		Width:     width,
		Height:    height,
		Pix:       pix,
	}
	return json.Marshal(env)
}

// MarshalIdle serializes the "nothing to show" Envelope.
func MarshalIdle(ts time.Time) ([]byte, error) {
	return json.Marshal(Envelope{Type: TypeIdle, Timestamp: ts})
}

// UnmarshalEnvelope parses a wire message and validates its shape.
func UnmarshalEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	switch env.Type {
	case TypeFrame:
		if len(env.Pix) != env.Width*env.Height*3 {
			return env, fmt.Errorf("frame payload size mismatch: %dx%d with %d bytes", env.Width, env.Height, len(env.Pix))
		}
	case TypeIdle:
	default:
		return env, fmt.Errorf("unknown message type: %s", env.Type)
	}
	return env, nil
}
