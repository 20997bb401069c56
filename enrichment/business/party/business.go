package party

import (
	"context"

	"encore.app/enrichment/model"
	"encore.app/enrichment/repository/parties"
)

//go:generate mockgen -source=./business.go -destination=../../mocks/business/party_business/business.go -package=party_business

type Business interface {
	// Upsert persists one enriched profile under its identifier, merging
	// into any existing party row.
	Upsert(ctx context.Context, identifier string, doc model.Document, raw []byte, sourceEventID string) (*model.Party, error)
	Get(ctx context.Context, identifier string) (*model.PartyProfile, error)
}

type business struct {
	repo parties.Querier
}

func NewBusiness(repo parties.Querier) Business {
	return &business{repo: repo}
}
