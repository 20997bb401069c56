package party

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/model"
)

// Get assembles a party with its contacts and latest enrichment snapshot.
func (b *business) Get(ctx context.Context, identifier string) (*model.PartyProfile, error) {
	row, err := b.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "party not found"}
		}
		rlog.Error("failed to look up party", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up party"}
	}

	profile := &model.PartyProfile{Party: *convertDBParty(row)}

	contacts, err := b.repo.ListContacts(ctx, row.ID)
	if err != nil {
		rlog.Error("failed to list party contacts", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list party contacts"}
	}
	for _, contact := range contacts {
		profile.Contacts = append(profile.Contacts, convertDBContact(contact))
	}

	snapshot, err := b.repo.GetSnapshot(ctx, row.ID)
	switch {
	case err == nil:
		profile.Snapshot = convertDBSnapshot(snapshot)
	case errors.Is(err, pgx.ErrNoRows):
		// Party exists but was never enriched.
	default:
		rlog.Error("failed to load enrichment snapshot", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load enrichment snapshot"}
	}

	return profile, nil
}
