package resolver

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/cache"
	"encore.app/enrichment/model"
)

// Resolve maps the lead's contact channels to national identifiers and
// reconciles them into a single identity decision. Invalid channels are
// skipped; a lookup outage degrades that channel to unresolved rather than
// failing the whole resolution. Identifier order is phone first.
func (b *business) Resolve(ctx context.Context, phone, email *string) (*model.ResolvedIdentity, error) {
	var normPhone, normEmail string
	if phone != nil && strings.TrimSpace(*phone) != "" {
		p, ok := NormalizePhone(*phone)
		if !ok {
			rlog.Warn("skipping invalid phone number")
		} else {
			normPhone = p
		}
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		e, ok := NormalizeEmail(*email)
		if !ok {
			rlog.Warn("skipping invalid email address")
		} else {
			normEmail = e
		}
	}
	if normPhone == "" && normEmail == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "lead has no valid contact channel"}
	}

	var phoneID, emailID *string
	g, gctx := errgroup.WithContext(ctx)
	if normPhone != "" {
		g.Go(func() error {
			phoneID = b.resolveChannel(gctx, model.ChannelPhone, cache.PhoneKey(normPhone), func(ctx context.Context) ([]model.LookupCandidate, error) {
				return b.lookup.SearchByPhone(ctx, normPhone)
			})
			return nil
		})
	}
	if normEmail != "" {
		g.Go(func() error {
			emailID = b.resolveChannel(gctx, model.ChannelEmail, cache.EmailKey(normEmail), func(ctx context.Context) ([]model.LookupCandidate, error) {
				return b.lookup.SearchByEmail(ctx, normEmail)
			})
			return nil
		})
	}
	_ = g.Wait()

	switch {
	case phoneID != nil && emailID != nil:
		if *phoneID == *emailID {
			return &model.ResolvedIdentity{
				Identifiers: []string{*phoneID},
				Channels:    []string{model.ChannelPhone},
				SamePerson:  true,
			}, nil
		}
		return &model.ResolvedIdentity{
			Identifiers: []string{*phoneID, *emailID},
			Channels:    []string{model.ChannelPhone, model.ChannelEmail},
			SamePerson:  false,
		}, nil
	case phoneID != nil:
		return &model.ResolvedIdentity{
			Identifiers: []string{*phoneID},
			Channels:    []string{model.ChannelPhone},
		}, nil
	case emailID != nil:
		return &model.ResolvedIdentity{
			Identifiers: []string{*emailID},
			Channels:    []string{model.ChannelEmail},
		}, nil
	default:
		return nil, &errs.Error{Code: errs.NotFound, Message: "no identifier found for contact channels"}
	}
}

// resolveChannel returns the identifier for one contact channel, or nil when
// the channel is unresolved. A successful empty lookup is cached as a
// negative; a failed lookup is not cached at all.
func (b *business) resolveChannel(ctx context.Context, channel, key string, search func(ctx context.Context) ([]model.LookupCandidate, error)) *string {
	if cached, ok := b.caches.Contacts.Get(key); ok {
		if cached == nil {
			return nil
		}
		id := cached.Identifiers[0]
		return &id
	}

	var candidates []model.LookupCandidate
	err := b.breaker.Call(ctx, func(ctx context.Context) error {
		var callErr error
		candidates, callErr = search(ctx)
		return callErr
	})
	if err != nil {
		rlog.Warn("contact lookup degraded", "channel", channel, "error", err)
		return nil
	}

	if len(candidates) == 0 || candidates[0].Identifier == "" {
		b.caches.Contacts.Add(key, nil)
		return nil
	}

	id := candidates[0].Identifier
	b.caches.Contacts.Add(key, &model.ResolvedIdentity{Identifiers: []string{id}, Channels: []string{channel}})
	return &id
}
