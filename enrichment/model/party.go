package model

import (
	"time"

	"github.com/google/uuid"
)

// Party is one real-world person, keyed by canonical identifier (national tax
// ID). Rows are created on first resolution and merged on later enrichments;
// they are never deleted by this service.
type Party struct {
	ID            uuid.UUID  `json:"id"`
	Identifier    string     `json:"identifier"`
	FullName      *string    `json:"full_name,omitempty"`
	CanonicalName *string    `json:"canonical_name,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Sex           *string    `json:"sex,omitempty"`
	MotherName    *string    `json:"mother_name,omitempty"`
	Enriched      bool       `json:"enriched"`
	EnrichedAt    *time.Time `json:"enriched_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ContactType string

const (
	ContactTypeEmail    ContactType = "email"
	ContactTypePhone    ContactType = "phone"
	ContactTypeWhatsApp ContactType = "whatsapp"
)

// PartyContact is one typed contact row owned by a party. Uniqueness on
// (party_id, contact_type, value) keeps repeated enrichments from duplicating
// rows.
type PartyContact struct {
	ID         int64       `json:"id"`
	PartyID    uuid.UUID   `json:"party_id"`
	Type       ContactType `json:"contact_type"`
	Value      string      `json:"value"`
	IsPrimary  bool        `json:"is_primary"`
	IsVerified bool        `json:"is_verified"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// PartyProfile is a party with everything hanging off it, as served by the
// read API.
type PartyProfile struct {
	Party    Party               `json:"party"`
	Contacts []PartyContact      `json:"contacts"`
	Snapshot *EnrichmentSnapshot `json:"snapshot,omitempty"`
}

// EnrichmentSnapshot is the single enrichment payload kept per party. Quality
// score only ever increases; the payload tracks the latest fetch.
type EnrichmentSnapshot struct {
	PartyID           uuid.UUID `json:"party_id"`
	SourceEventID     *string   `json:"source_event_id,omitempty"`
	RawPayload        []byte    `json:"raw_payload"`
	NormalizedPayload []byte    `json:"normalized_payload"`
	QualityScore      float64   `json:"quality_score"`
	EnrichedAt        time.Time `json:"enriched_at"`
}
