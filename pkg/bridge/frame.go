package bridge

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/floatkit-dev/floatkit/pkg/dom"
)

// Frame type discriminators, carried in the "t" field.
const (
	frameEvent   = "event"
	frameMount   = "mount"
	framePatch   = "patch"
	frameDestroy = "destroy"
)

// Frame errors.
var (
	ErrInvalidFrame  = errors.New("bridge: invalid frame")
	ErrUnknownFrame  = errors.New("bridge: unknown frame type")
	ErrMissingTarget = errors.New("bridge: event frame missing element id")
)

// eventFrame is a client-to-server DOM event report.
// The rect is optional; when present it refreshes the element's cached
// geometry before listeners fire.
type eventFrame struct {
	T    string    `json:"t"`
	El   string    `json:"el"`
	Name string    `json:"name"`
	Rect *dom.Rect `json:"rect,omitempty"`
}

// commandFrame is a server-to-client overlay command.
// Mount carries anchor, parent, label, and the pre-rendered body; patch
// carries the fields being replaced; destroy carries only the id.
type commandFrame struct {
	T      string  `json:"t"`
	ID     uint64  `json:"id"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Parent string  `json:"parent,omitempty"`
	Label  *string `json:"label,omitempty"`
	Body   any     `json:"body,omitempty"`
}

// decodeEventFrame parses and validates a client frame.
func decodeEventFrame(data []byte) (*eventFrame, error) {
	var f eventFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	if f.T != frameEvent {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrame, f.T)
	}
	if f.El == "" {
		return nil, ErrMissingTarget
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: event frame missing name", ErrInvalidFrame)
	}
	return &f, nil
}

func encodeCommandFrame(f commandFrame) ([]byte, error) {
	return json.Marshal(f)
}
