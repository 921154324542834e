package clicksign

// Every request and response body is an object with a single fixed key
// wrapping one entity. The keys below are dictated by the Clicksign API.

// DocumentEnvelope is the body of document creation: {"document": {...}}.
type DocumentEnvelope struct {
	Document Document `json:"document"`
}

// SignerEnvelope is the body of signer creation: {"signer": {...}}.
type SignerEnvelope struct {
	Signer Signer `json:"signer"`
}

// ListEnvelope is the body of the signer-to-document link: {"list": {...}}.
type ListEnvelope struct {
	List SignerToDocument `json:"list"`
}
