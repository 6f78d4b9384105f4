// Package events defines the domain events emitted by the registration lifecycle.
package events

import (
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
)

// Event is anything that can travel over the event bus.
type Event interface {
	Type() string
}

// EventType names an event on the wire.
type EventType string

const (
	EventTypeDraftSaved   EventType = "registration.draft_saved"
	EventTypeDraftUpdated EventType = "registration.draft_updated"
	EventTypeSubmitted    EventType = "registration.submitted"
)

func (et EventType) String() string { return string(et) }

// RequestEvent is the payload shared by every registration event.
type RequestEvent struct {
	RequestID   string    `json:"requestId"`
	Status      string    `json:"status"`
	AccountType string    `json:"accountType,omitempty"`
	HasDocument bool      `json:"hasDocument"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// DraftSaved is emitted after a new draft is persisted.
type DraftSaved struct{ RequestEvent }

func (DraftSaved) Type() string { return EventTypeDraftSaved.String() }

// DraftUpdated is emitted after an existing draft is modified.
type DraftUpdated struct{ RequestEvent }

func (DraftUpdated) Type() string { return EventTypeDraftUpdated.String() }

// Submitted is emitted when a request reaches SUBMITTED, either directly or
// from a draft.
type Submitted struct {
	RequestEvent
	FromDraft bool `json:"fromDraft"`
}

func (Submitted) Type() string { return EventTypeSubmitted.String() }

func newRequestEvent(r *registration.AccountRequest, at time.Time) RequestEvent {
	return RequestEvent{
		RequestID:   r.RequestID,
		Status:      string(r.Status),
		AccountType: string(r.AccountType),
		HasDocument: r.HasDocument(),
		OccurredAt:  at,
	}
}

// NewDraftSaved builds a DraftSaved event for r.
func NewDraftSaved(r *registration.AccountRequest, at time.Time) *DraftSaved {
	return &DraftSaved{newRequestEvent(r, at)}
}

// NewDraftUpdated builds a DraftUpdated event for r.
func NewDraftUpdated(r *registration.AccountRequest, at time.Time) *DraftUpdated {
	return &DraftUpdated{newRequestEvent(r, at)}
}

// NewSubmitted builds a Submitted event for r.
func NewSubmitted(r *registration.AccountRequest, fromDraft bool, at time.Time) *Submitted {
	return &Submitted{RequestEvent: newRequestEvent(r, at), FromDraft: fromDraft}
}

// EventTypes maps wire names to constructors used when decoding from a broker.
var EventTypes = map[EventType]func() Event{
	EventTypeDraftSaved:   func() Event { return &DraftSaved{} },
	EventTypeDraftUpdated: func() Event { return &DraftUpdated{} },
	EventTypeSubmitted:    func() Event { return &Submitted{} },
}
