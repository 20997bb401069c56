package enrichment

import (
	"context"

	"encore.app/enrichment/model"
)

// GetParty returns the stored profile for one resolved person, including
// contact points and the latest enrichment snapshot.
//
//encore:api public path=/v1/parties/:identifier method=GET
func (s *Service) GetParty(ctx context.Context, identifier string) (*model.PartyProfile, error) {
	return s.parties.Get(ctx, identifier)
}
