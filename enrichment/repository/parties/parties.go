// Package parties persists resolved people, their contact points, and the
// latest enrichment snapshot per party.
package parties

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=./parties.go -destination=../../mocks/repository/party_repo/parties.go -package=party_repo

type Querier interface {
	GetByIdentifier(ctx context.Context, identifier string) (Party, error)
	Insert(ctx context.Context, arg InsertParams) (Party, error)
	// MergeIdentity fills missing identity fields without overwriting
	// values already on the row, and stamps the enrichment markers.
	MergeIdentity(ctx context.Context, arg MergeIdentityParams) error
	UpsertContact(ctx context.Context, arg UpsertContactParams) error
	UpsertSnapshot(ctx context.Context, arg UpsertSnapshotParams) error
	ListContacts(ctx context.Context, partyID pgtype.UUID) ([]Contact, error)
	GetSnapshot(ctx context.Context, partyID pgtype.UUID) (Snapshot, error)
}

type Party struct {
	ID            pgtype.UUID
	Identifier    string
	FullName      pgtype.Text
	CanonicalName pgtype.Text
	BirthDate     pgtype.Date
	Sex           pgtype.Text
	MotherName    pgtype.Text
	Enriched      bool
	EnrichedAt    pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Contact struct {
	ID          int64
	PartyID     pgtype.UUID
	ContactType string
	Value       string
	IsPrimary   bool
	IsVerified  bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Snapshot struct {
	PartyID           pgtype.UUID
	SourceEventID     pgtype.Text
	RawPayload        []byte
	NormalizedPayload []byte
	QualityScore      float64
	EnrichedAt        pgtype.Timestamptz
}

type InsertParams struct {
	Identifier    string
	FullName      pgtype.Text
	CanonicalName pgtype.Text
	BirthDate     pgtype.Date
	Sex           pgtype.Text
	MotherName    pgtype.Text
}

type MergeIdentityParams struct {
	ID            pgtype.UUID
	FullName      pgtype.Text
	CanonicalName pgtype.Text
	BirthDate     pgtype.Date
	Sex           pgtype.Text
	MotherName    pgtype.Text
}

type UpsertContactParams struct {
	PartyID     pgtype.UUID
	ContactType string
	Value       string
	IsPrimary   bool
	IsVerified  bool
}

type UpsertSnapshotParams struct {
	PartyID           pgtype.UUID
	SourceEventID     pgtype.Text
	RawPayload        []byte
	NormalizedPayload []byte
	QualityScore      float64
}

type Queries struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}

const partyColumns = `id, identifier, full_name, canonical_name, birth_date, sex, mother_name, enriched, enriched_at, created_at, updated_at`

const getByIdentifierQuery = `
SELECT ` + partyColumns + `
FROM parties
WHERE identifier = $1`

func (q *Queries) GetByIdentifier(ctx context.Context, identifier string) (Party, error) {
	row := q.db.QueryRow(ctx, getByIdentifierQuery, identifier)
	return scanParty(row)
}

const insertQuery = `
INSERT INTO parties (identifier, full_name, canonical_name, birth_date, sex, mother_name)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + partyColumns

func (q *Queries) Insert(ctx context.Context, arg InsertParams) (Party, error) {
	row := q.db.QueryRow(ctx, insertQuery,
		arg.Identifier,
		arg.FullName,
		arg.CanonicalName,
		arg.BirthDate,
		arg.Sex,
		arg.MotherName,
	)
	return scanParty(row)
}

const mergeIdentityQuery = `
UPDATE parties
SET full_name      = COALESCE(full_name, $2),
    canonical_name = COALESCE(canonical_name, $3),
    birth_date     = COALESCE(birth_date, $4),
    sex            = COALESCE(sex, $5),
    mother_name    = COALESCE(mother_name, $6),
    enriched       = true,
    enriched_at    = now(),
    updated_at     = now()
WHERE id = $1`

func (q *Queries) MergeIdentity(ctx context.Context, arg MergeIdentityParams) error {
	_, err := q.db.Exec(ctx, mergeIdentityQuery,
		arg.ID,
		arg.FullName,
		arg.CanonicalName,
		arg.BirthDate,
		arg.Sex,
		arg.MotherName,
	)
	return err
}

const upsertContactQuery = `
INSERT INTO party_contacts (party_id, contact_type, value, is_primary, is_verified)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (party_id, contact_type, value) DO UPDATE
SET is_primary  = party_contacts.is_primary OR EXCLUDED.is_primary,
    is_verified = party_contacts.is_verified OR EXCLUDED.is_verified,
    updated_at  = now()`

func (q *Queries) UpsertContact(ctx context.Context, arg UpsertContactParams) error {
	_, err := q.db.Exec(ctx, upsertContactQuery,
		arg.PartyID,
		arg.ContactType,
		arg.Value,
		arg.IsPrimary,
		arg.IsVerified,
	)
	return err
}

const upsertSnapshotQuery = `
INSERT INTO party_enrichments (party_id, source_event_id, raw_payload, normalized_payload, quality_score, enriched_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (party_id) DO UPDATE
SET source_event_id    = EXCLUDED.source_event_id,
    raw_payload        = EXCLUDED.raw_payload,
    normalized_payload = EXCLUDED.normalized_payload,
    quality_score      = GREATEST(party_enrichments.quality_score, EXCLUDED.quality_score),
    enriched_at        = now()`

func (q *Queries) UpsertSnapshot(ctx context.Context, arg UpsertSnapshotParams) error {
	_, err := q.db.Exec(ctx, upsertSnapshotQuery,
		arg.PartyID,
		arg.SourceEventID,
		arg.RawPayload,
		arg.NormalizedPayload,
		arg.QualityScore,
	)
	return err
}

const listContactsQuery = `
SELECT id, party_id, contact_type, value, is_primary, is_verified, created_at, updated_at
FROM party_contacts
WHERE party_id = $1
ORDER BY contact_type, id`

func (q *Queries) ListContacts(ctx context.Context, partyID pgtype.UUID) ([]Contact, error) {
	rows, err := q.db.Query(ctx, listContactsQuery, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(
			&c.ID,
			&c.PartyID,
			&c.ContactType,
			&c.Value,
			&c.IsPrimary,
			&c.IsVerified,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

const getSnapshotQuery = `
SELECT party_id, source_event_id, raw_payload, normalized_payload, quality_score, enriched_at
FROM party_enrichments
WHERE party_id = $1`

func (q *Queries) GetSnapshot(ctx context.Context, partyID pgtype.UUID) (Snapshot, error) {
	var s Snapshot
	err := q.db.QueryRow(ctx, getSnapshotQuery, partyID).Scan(
		&s.PartyID,
		&s.SourceEventID,
		&s.RawPayload,
		&s.NormalizedPayload,
		&s.QualityScore,
		&s.EnrichedAt,
	)
	return s, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParty(row rowScanner) (Party, error) {
	var p Party
	err := row.Scan(
		&p.ID,
		&p.Identifier,
		&p.FullName,
		&p.CanonicalName,
		&p.BirthDate,
		&p.Sex,
		&p.MotherName,
		&p.Enriched,
		&p.EnrichedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
