package enricher

import (
	"context"

	"golang.org/x/sync/errgroup"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/cache"
	"encore.app/enrichment/model"
)

func (b *business) Fetch(ctx context.Context, identifier string) (*Enriched, error) {
	return b.fetch(ctx, cache.AllModulesKey(identifier), identifier, func(ctx context.Context) ([]byte, error) {
		return b.api.FetchAll(ctx, identifier)
	})
}

func (b *business) FetchModule(ctx context.Context, module, identifier string) (*Enriched, error) {
	return b.fetch(ctx, cache.ModuleKey(module, identifier), identifier, func(ctx context.Context) ([]byte, error) {
		return b.api.FetchModule(ctx, module, identifier)
	})
}

func (b *business) FetchBatch(ctx context.Context, identifiers []string) ([]*Enriched, error) {
	results := make([]*Enriched, len(identifiers))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range identifiers {
		i, id := i, id
		g.Go(func() error {
			enriched, err := b.Fetch(gctx, id)
			if err != nil {
				rlog.Warn("enrichment fetch failed for identifier", "error", err)
				return nil
			}
			results[i] = enriched
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*Enriched, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, &errs.Error{Code: errs.Unavailable, Message: "no enrichment data available"}
	}
	return out, nil
}

// fetch serves from the sealed response cache when possible and falls back to
// the provider through the circuit breaker. A corrupt or unparseable cached
// entry is evicted and treated as a miss.
func (b *business) fetch(ctx context.Context, key, identifier string, call func(ctx context.Context) ([]byte, error)) (*Enriched, error) {
	if serialized, ok := b.caches.Responses.Get(key); ok {
		if content, valid := cache.Unseal(serialized); valid {
			if doc, err := model.ParseDocument([]byte(content)); err == nil {
				return &Enriched{Identifier: identifier, Raw: []byte(content), Doc: doc}, nil
			}
			rlog.Warn("cached enrichment payload no longer parses, refetching")
		}
		b.caches.Responses.Remove(key)
	}

	var raw []byte
	err := b.breaker.Call(ctx, func(ctx context.Context) error {
		var callErr error
		raw, callErr = call(ctx)
		return callErr
	})
	if err != nil {
		rlog.Error("enrichment provider call failed", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "enrichment provider unavailable"}
	}

	doc, err := model.ParseDocument(raw)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "enrichment payload is not a JSON object"}
	}

	b.caches.Responses.Add(key, cache.Seal(string(raw)).Serialize())
	return &Enriched{Identifier: identifier, Raw: raw, Doc: doc}, nil
}
