package model

// Lookup channels a contact can resolve through.
const (
	ChannelPhone = "phone"
	ChannelEmail = "email"
)

// ResolvedIdentity is the outcome of resolving a contact into canonical
// identifiers. When both channels resolve, Identifiers is ordered phone-first.
// SamePerson is true only when both channels independently returned the same
// identifier; a single-channel resolution leaves it false.
type ResolvedIdentity struct {
	Identifiers []string `json:"identifiers"`
	// Channels names the lookup channel that produced each identifier,
	// parallel to Identifiers.
	Channels   []string `json:"channels"`
	SamePerson bool     `json:"same_person"`
}

// LookupCandidate is one ranked match returned by the identity-lookup API.
type LookupCandidate struct {
	Name       string `json:"nome"`
	Identifier string `json:"cpf"`
}
