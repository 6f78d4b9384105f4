package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/amirasaad/onboarding/pkg/domain/events"
)

// envelope is the wire format shared by the broker backed buses.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func encode(event events.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	out, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return out, nil
}

// decode rebuilds the concrete event using the factory for its type.
func decode(raw []byte, types map[events.EventType]func() events.Event) (events.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	constructor, ok := types[events.EventType(env.Type)]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", env.Type, err)
	}
	return evt, nil
}
