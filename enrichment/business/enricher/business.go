package enricher

import (
	"context"

	"encore.app/enrichment/breaker"
	"encore.app/enrichment/cache"
	"encore.app/enrichment/integrations/workapi"
	"encore.app/enrichment/model"
)

//go:generate mockgen -source=./business.go -destination=../../mocks/business/enricher_business/business.go -package=enricher_business

// Enriched is one fetched profile: the exact bytes returned by the provider
// plus the parsed document. Raw is kept verbatim so storage and the cache
// seal operate on the provider's own serialization.
type Enriched struct {
	Identifier string
	Raw        []byte
	Doc        model.Document
}

type Business interface {
	Fetch(ctx context.Context, identifier string) (*Enriched, error)
	FetchModule(ctx context.Context, module, identifier string) (*Enriched, error)
	// FetchBatch fetches profiles concurrently. Individual failures are
	// dropped from the result; it errors only when every fetch fails.
	FetchBatch(ctx context.Context, identifiers []string) ([]*Enriched, error)
}

type business struct {
	api     workapi.Client
	caches  *cache.Set
	breaker *breaker.Breaker
}

func NewBusiness(api workapi.Client, caches *cache.Set, brk *breaker.Breaker) Business {
	return &business{
		api:     api,
		caches:  caches,
		breaker: brk,
	}
}
