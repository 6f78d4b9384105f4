package registration

import "strings"

// Intent tells SubmitOrRegister whether to create a new submitted request or
// finalize an existing draft.
type Intent struct {
	requestID string
}

// NewRegistration targets a brand new request.
func NewRegistration() Intent { return Intent{} }

// ExistingDraft targets the draft stored under requestID.
func ExistingDraft(requestID string) Intent { return Intent{requestID: requestID} }

// IntentFromRequestID maps a blank id to NewRegistration.
func IntentFromRequestID(requestID string) Intent {
	id := strings.TrimSpace(requestID)
	if id == "" {
		return NewRegistration()
	}
	return ExistingDraft(id)
}

// RequestID returns the draft id and whether the intent targets a draft.
func (i Intent) RequestID() (string, bool) {
	return i.requestID, i.requestID != ""
}

func (i Intent) String() string {
	if i.requestID == "" {
		return "new"
	}
	return "draft:" + i.requestID
}
