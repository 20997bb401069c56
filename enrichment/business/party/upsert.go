package party

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/model"
	"encore.app/enrichment/repository/parties"
)

// The profile sections counted toward the snapshot quality score.
var scoredSections = []string{"DadosBasicos", "DadosEconomicos", "emails", "telefones", "enderecos", "empresas"}

func (b *business) Upsert(ctx context.Context, identifier string, doc model.Document, raw []byte, sourceEventID string) (*model.Party, error) {
	identity := extractIdentity(doc)

	row, err := b.findOrCreate(ctx, identifier, identity)
	if err != nil {
		return nil, err
	}

	if err := b.repo.MergeIdentity(ctx, parties.MergeIdentityParams{
		ID:            row.ID,
		FullName:      identity.FullName,
		CanonicalName: identity.CanonicalName,
		BirthDate:     identity.BirthDate,
		Sex:           identity.Sex,
		MotherName:    identity.MotherName,
	}); err != nil {
		rlog.Error("failed to merge party identity", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update party"}
	}

	b.upsertContacts(ctx, row.ID, doc)

	normalized, err := json.Marshal(normalizedPayload(doc))
	if err != nil {
		normalized = raw
	}
	if err := b.repo.UpsertSnapshot(ctx, parties.UpsertSnapshotParams{
		PartyID:           row.ID,
		SourceEventID:     textOrNull(sourceEventID),
		RawPayload:        raw,
		NormalizedPayload: normalized,
		QualityScore:      QualityScore(doc),
	}); err != nil {
		rlog.Error("failed to upsert enrichment snapshot", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to store enrichment snapshot"}
	}

	return convertDBParty(row), nil
}

// findOrCreate resolves the party row for an identifier. A unique violation
// on insert means a concurrent task created the row first; the existing row
// wins.
func (b *business) findOrCreate(ctx context.Context, identifier string, identity partyIdentity) (parties.Party, error) {
	row, err := b.repo.GetByIdentifier(ctx, identifier)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		rlog.Error("failed to look up party", "error", err)
		return parties.Party{}, &errs.Error{Code: errs.Internal, Message: "failed to look up party"}
	}

	row, err = b.repo.Insert(ctx, parties.InsertParams{
		Identifier:    identifier,
		FullName:      identity.FullName,
		CanonicalName: identity.CanonicalName,
		BirthDate:     identity.BirthDate,
		Sex:           identity.Sex,
		MotherName:    identity.MotherName,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return b.repo.GetByIdentifier(ctx, identifier)
		}
		rlog.Error("failed to create party", "error", err)
		return parties.Party{}, &errs.Error{Code: errs.Internal, Message: "failed to create party"}
	}
	return row, nil
}

// upsertContacts stores the profile's emails and phones. Contact failures
// are logged and skipped so one bad row cannot lose the rest of the profile.
func (b *business) upsertContacts(ctx context.Context, partyID pgtype.UUID, doc model.Document) {
	for i, email := range doc.Items("emails") {
		addr, ok := email.Str("email")
		if !ok {
			continue
		}
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr == "" {
			continue
		}
		// The provider grades each address; only "BOM" counts as verified.
		qualidade, _ := email.Str("qualidade")
		err := b.repo.UpsertContact(ctx, parties.UpsertContactParams{
			PartyID:     partyID,
			ContactType: string(model.ContactTypeEmail),
			Value:       addr,
			IsPrimary:   i == 0,
			IsVerified:  qualidade == "BOM",
		})
		if err != nil {
			rlog.Error("failed to upsert email contact", "error", err)
		}
	}

	for i, phone := range doc.Items("telefones") {
		number, ok := phone.Str("telefone")
		if !ok {
			continue
		}
		number = digitsOnly(number)
		if number == "" {
			continue
		}
		contactType := model.ContactTypePhone
		if whats, _ := phone.Str("whatsapp"); whats == "SIM" {
			contactType = model.ContactTypeWhatsApp
		}
		err := b.repo.UpsertContact(ctx, parties.UpsertContactParams{
			PartyID:     partyID,
			ContactType: string(contactType),
			Value:       number,
			IsPrimary:   i == 0,
		})
		if err != nil {
			rlog.Error("failed to upsert phone contact", "error", err)
		}
	}
}

// QualityScore is the fraction of scored profile sections present and
// non-empty. It only ever increases for a stored party.
func QualityScore(doc model.Document) float64 {
	present := 0
	for _, key := range scoredSections {
		if section, ok := doc.Section(key); ok && len(section) > 0 {
			present++
			continue
		}
		if items := doc.Items(key); len(items) > 0 {
			present++
		}
	}
	return float64(present) / float64(len(scoredSections))
}

type partyIdentity struct {
	FullName      pgtype.Text
	CanonicalName pgtype.Text
	BirthDate     pgtype.Date
	Sex           pgtype.Text
	MotherName    pgtype.Text
}

func extractIdentity(doc model.Document) partyIdentity {
	var identity partyIdentity
	basics, ok := doc.Section("DadosBasicos")
	if !ok {
		return identity
	}

	if nome, ok := basics.Str("nome"); ok && nome != "" {
		identity.FullName = pgtype.Text{String: nome, Valid: true}
		identity.CanonicalName = pgtype.Text{String: strings.ToUpper(nome), Valid: true}
	}
	if sexo, ok := basics.Str("sexo"); ok && sexo != "" {
		identity.Sex = pgtype.Text{String: sexo[:1], Valid: true}
	}
	if mae, ok := basics.Str("nomeMae"); ok && mae != "" {
		identity.MotherName = pgtype.Text{String: mae, Valid: true}
	}
	if nasc, ok := basics.Str("dataNascimento"); ok {
		if date, err := time.Parse("02/01/2006", nasc); err == nil {
			identity.BirthDate = pgtype.Date{Time: date, Valid: true}
		}
	}
	return identity
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
