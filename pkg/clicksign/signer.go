package clicksign

// Signer is a person who can be asked to sign documents.
type Signer struct {
	Key                     *string  `json:"key,omitempty"`
	Email                   *string  `json:"email,omitempty"`
	PhoneNumber             *string  `json:"phone_number,omitempty"`
	Auths                   []string `json:"auths,omitzero"`
	Name                    *string  `json:"name,omitempty"`
	Documentation           *string  `json:"documentation,omitempty"`
	Birthday                *string  `json:"birthday,omitempty"`
	HasDocumentation        *bool    `json:"has_documentation,omitempty"`
	SelfieEnabled           *bool    `json:"selfie_enabled,omitempty"`
	HandwrittenEnabled      *bool    `json:"handwritten_enabled,omitempty"`
	OfficialDocumentEnabled *bool    `json:"official_document_enabled,omitempty"`
	LivenessEnabled         *bool    `json:"liveness_enabled,omitempty"`
	FacialBiometricsEnabled *bool    `json:"facial_biometrics_enabled,omitempty"`
	Delivery                *string  `json:"delivery,omitempty"`
	CreatedAt               *string  `json:"created_at,omitempty"`
	UpdatedAt               *string  `json:"updated_at,omitempty"`
}

// SignerToDocument links a signer to a document. Clicksign calls it a list.
type SignerToDocument struct {
	Key                 *string `json:"key,omitempty"`
	RequestSignatureKey *string `json:"request_signature_key,omitempty"`
	DocumentKey         *string `json:"document_key,omitempty"`
	SignerKey           *string `json:"signer_key,omitempty"`
	SignAs              *string `json:"sign_as,omitempty"`
	Refusable           *bool   `json:"refusable,omitempty"`
	Group               *int    `json:"group,omitempty"`
	Message             *string `json:"message,omitempty"`
	URL                 *string `json:"url,omitempty"`
	CreatedAt           *string `json:"created_at,omitempty"`
	UpdatedAt           *string `json:"updated_at,omitempty"`
}
