package party

import (
	"github.com/google/uuid"

	"encore.app/enrichment/model"
	"encore.app/enrichment/repository/parties"
)

// convertDBParty converts a database party to a domain model Party
func convertDBParty(row parties.Party) *model.Party {
	p := &model.Party{
		ID:         uuid.UUID(row.ID.Bytes),
		Identifier: row.Identifier,
		Enriched:   row.Enriched,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}

	if row.FullName.Valid {
		p.FullName = &row.FullName.String
	}
	if row.CanonicalName.Valid {
		p.CanonicalName = &row.CanonicalName.String
	}
	if row.BirthDate.Valid {
		t := row.BirthDate.Time
		p.BirthDate = &t
	}
	if row.Sex.Valid {
		p.Sex = &row.Sex.String
	}
	if row.MotherName.Valid {
		p.MotherName = &row.MotherName.String
	}
	if row.EnrichedAt.Valid {
		t := row.EnrichedAt.Time
		p.EnrichedAt = &t
	}

	return p
}

func convertDBContact(row parties.Contact) model.PartyContact {
	return model.PartyContact{
		ID:         row.ID,
		PartyID:    uuid.UUID(row.PartyID.Bytes),
		Type:       model.ContactType(row.ContactType),
		Value:      row.Value,
		IsPrimary:  row.IsPrimary,
		IsVerified: row.IsVerified,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}

func convertDBSnapshot(row parties.Snapshot) *model.EnrichmentSnapshot {
	s := &model.EnrichmentSnapshot{
		PartyID:           uuid.UUID(row.PartyID.Bytes),
		RawPayload:        row.RawPayload,
		NormalizedPayload: row.NormalizedPayload,
		QualityScore:      row.QualityScore,
		EnrichedAt:        row.EnrichedAt.Time,
	}
	if row.SourceEventID.Valid {
		s.SourceEventID = &row.SourceEventID.String
	}
	return s
}
