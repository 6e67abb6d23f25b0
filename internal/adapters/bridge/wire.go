package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/renato0307/tabstash/internal/domain"
)

// FrameType distinguishes the three frame kinds on the host connection
type FrameType string

const (
	FrameCall   FrameType = "call"
	FrameResult FrameType = "result"
	FrameEvent  FrameType = "event"
)

// Frame is one JSON text frame exchanged with the browser shim
type Frame struct {
	ID      string            `json:"id,omitempty"`
	Type    FrameType         `json:"type"`
	Method  domain.HostMethod `json:"method,omitempty"`
	Params  json.RawMessage   `json:"params,omitempty"`
	Result  json.RawMessage   `json:"result,omitempty"`
	Error   string            `json:"error,omitempty"`
	Event   domain.EventType  `json:"event,omitempty"`
	Payload json.RawMessage   `json:"payload,omitempty"`
}

type windowRef struct {
	WindowID int `json:"windowId"`
}

type tabRef struct {
	TabID int `json:"tabId"`
}

type bookmarkRef struct {
	ID string `json:"id"`
}

type windowUpdate struct {
	WindowID int `json:"windowId"`
	domain.WindowUpdateParams
}

// decodeEvent converts an event frame into a domain event. Dialog messages
// arrive over HTTP and are not accepted from the shim.
func decodeEvent(f Frame) (domain.Event, error) {
	var payload any
	var err error

	switch f.Event {
	case domain.EventInstalled:
		return domain.Event{Type: f.Event}, nil
	case domain.EventTabsHighlighted:
		var p domain.TabsHighlightedPayload
		err = unmarshalPayload(f.Payload, &p)
		payload = p
	case domain.EventWindowBoundsChanged:
		var p domain.WindowBoundsChangedPayload
		err = unmarshalPayload(f.Payload, &p)
		payload = p
	case domain.EventWindowRemoved:
		var p domain.WindowRemovedPayload
		err = unmarshalPayload(f.Payload, &p)
		payload = p
	case domain.EventMenuClicked:
		var p domain.MenuClickedPayload
		err = unmarshalPayload(f.Payload, &p)
		payload = p
	case domain.EventCommandInvoked:
		var p domain.CommandInvokedPayload
		err = unmarshalPayload(f.Payload, &p)
		payload = p
	default:
		return domain.Event{}, fmt.Errorf("unsupported event %q", f.Event)
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("invalid %s payload: %w", f.Event, err)
	}
	return domain.Event{Type: f.Event, Payload: payload}, nil
}

func unmarshalPayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing payload")
	}
	return json.Unmarshal(raw, v)
}
