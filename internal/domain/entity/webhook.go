package entity

import "clicksign-esign/pkg/clicksign"

// WebhookPayload represents the callback payload Clicksign posts when
// something happens to a document
type WebhookPayload struct {
	Event    clicksign.DocumentEvent `json:"event"`
	Document clicksign.Document      `json:"document"`
}

// DocumentKey returns the key of the document the event refers to, or an
// empty string when the payload carries none.
func (p *WebhookPayload) DocumentKey() string {
	if p.Document.Key == nil {
		return ""
	}
	return *p.Document.Key
}
