package resolver

import (
	"context"

	"encore.app/enrichment/breaker"
	"encore.app/enrichment/cache"
	"encore.app/enrichment/integrations/lookup"
	"encore.app/enrichment/model"
)

//go:generate mockgen -source=./business.go -destination=../../mocks/business/resolver_business/business.go -package=resolver_business

type Business interface {
	Resolve(ctx context.Context, phone, email *string) (*model.ResolvedIdentity, error)
}

// business maps a lead's contact channels to national identifiers through
// the lookup provider, with a contact cache and circuit breaker in front.
type business struct {
	lookup  lookup.Client
	caches  *cache.Set
	breaker *breaker.Breaker
}

func NewBusiness(lookupClient lookup.Client, caches *cache.Set, brk *breaker.Breaker) Business {
	return &business{
		lookup:  lookupClient,
		caches:  caches,
		breaker: brk,
	}
}
