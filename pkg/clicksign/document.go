package clicksign

import "encoding/json"

// DocumentTemplate identifies a template registered in Clicksign and the
// values used to fill its placeholders.
type DocumentTemplate struct {
	Key  string            `json:"key"`
	Data map[string]string `json:"data"`
}

// NewDocumentTemplate returns a template reference with a non-nil data map.
func NewDocumentTemplate(key string, data map[string]string) DocumentTemplate {
	if data == nil {
		data = map[string]string{}
	}
	return DocumentTemplate{Key: key, Data: data}
}

// MarshalJSON always emits data as an object, even when it was never set.
func (t DocumentTemplate) MarshalJSON() ([]byte, error) {
	type wire DocumentTemplate
	w := wire(t)
	if w.Data == nil {
		w.Data = map[string]string{}
	}
	return json.Marshal(w)
}

// EventData is the payload of a document event. It is only ever produced by
// decoding a server response.
type EventData struct {
	user       map[string]string
	account    map[string]string
	deadlineAt *string
	autoClose  *bool
	locale     *string
}

type eventDataWire struct {
	User       map[string]string `json:"user,omitzero"`
	Account    map[string]string `json:"account,omitzero"`
	DeadlineAt *string           `json:"deadline_at,omitempty"`
	AutoClose  *bool             `json:"auto_close,omitempty"`
	Locale     *string           `json:"locale,omitempty"`
}

// User describes who created the document.
func (d EventData) User() map[string]string { return d.user }

// Account describes the Clicksign account the document belongs to.
func (d EventData) Account() map[string]string { return d.account }

func (d EventData) DeadlineAt() string { return deref(d.deadlineAt) }

// AutoClose reports whether the document is finalized once every signer signs.
func (d EventData) AutoClose() bool { return d.autoClose != nil && *d.autoClose }

func (d EventData) Locale() string { return deref(d.locale) }

func (d EventData) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventDataWire{
		User:       d.user,
		Account:    d.account,
		DeadlineAt: d.deadlineAt,
		AutoClose:  d.autoClose,
		Locale:     d.locale,
	})
}

func (d *EventData) UnmarshalJSON(b []byte) error {
	var w eventDataWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*d = EventData{
		user:       w.User,
		account:    w.Account,
		deadlineAt: w.DeadlineAt,
		autoClose:  w.AutoClose,
		locale:     w.Locale,
	}
	return nil
}

// DocumentEvent is one entry of a document's history.
type DocumentEvent struct {
	Name       string    `json:"name"`
	Data       EventData `json:"data"`
	OccurredAt string    `json:"occurred_at"`
}

// Document is the metadata Clicksign keeps about a document.
//
// Path and Template are the only fields sent when creating a document. Every
// other field is filled by the server and is optional: nil means the field was
// absent, a non-nil empty map or slice means it was present but empty.
type Document struct {
	Key             *string           `json:"key,omitempty"`
	Path            string            `json:"path"`
	Filename        *string           `json:"filename,omitempty"`
	UpdatedAt       *string           `json:"updated_at,omitempty"`
	FinishedAt      *string           `json:"finished_at,omitempty"`
	DeadlineAt      *string           `json:"deadline_at,omitempty"`
	Status          *string           `json:"status,omitempty"`
	AutoClose       *bool             `json:"auto_close,omitempty"`
	Locale          *string           `json:"locale,omitempty"`
	Metadata        map[string]string `json:"metadata,omitzero"`
	SequenceEnabled *bool             `json:"sequence_enabled,omitempty"`
	SignableGroup   *string           `json:"signable_group,omitempty"`
	RemindInterval  *string           `json:"remind_interval,omitempty"`
	Downloads       map[string]string `json:"downloads,omitzero"`
	Template        DocumentTemplate  `json:"template"`
	Signers         []string          `json:"signers,omitzero"`
	Events          []DocumentEvent   `json:"events,omitzero"`
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for filling optional fields.
func Bool(b bool) *bool { return &b }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
