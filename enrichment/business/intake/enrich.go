package intake

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/business/enricher"
	"encore.app/enrichment/domain/message"
	"encore.app/enrichment/model"
)

const (
	notifyAttempts = 3
	notifyDelay    = 2 * time.Second
)

// EnrichLead fetches the lead's contact data from the CRM and runs the
// pipeline synchronously. Used by the manual trigger endpoint.
func (b *business) EnrichLead(ctx context.Context, leadID string) error {
	lead, err := b.crm.GetLead(ctx, leadID)
	if err != nil {
		rlog.Error("failed to fetch lead", "lead_id", leadID, "error", err)
		return &errs.Error{Code: errs.NotFound, Message: "lead not found"}
	}
	return b.enrich(ctx, leadID, lead.Phone, lead.Email)
}

// enrichEvent runs the pipeline for one claimed webhook event, falling back
// to a CRM lead fetch when the event carries no customer contact block.
func (b *business) enrichEvent(ctx context.Context, event model.InboundEvent) error {
	var phone, email *string
	if customer := event.Attributes.Customer; customer != nil {
		phone = customer.Phone
		email = customer.Email
	}
	if emptyPtr(phone) && emptyPtr(email) {
		lead, err := b.crm.GetLead(ctx, event.ID)
		if err != nil {
			rlog.Error("failed to fetch lead for contactless event", "event_id", event.ID, "error", err)
			return &errs.Error{Code: errs.InvalidArgument, Message: "event has no customer contact information"}
		}
		phone = lead.Phone
		email = lead.Email
	}
	return b.enrich(ctx, event.ID, phone, email)
}

// enrich is the pipeline core: resolve identifiers, fetch profiles, post the
// reconciled message to the lead thread, then persist each profile.
func (b *business) enrich(ctx context.Context, leadID string, phone, email *string) error {
	identity, err := b.resolver.Resolve(ctx, phone, email)
	if err != nil {
		return err
	}

	pending := make([]string, 0, len(identity.Identifiers))
	for _, id := range identity.Identifiers {
		if _, recent := b.caches.Recent.Get(id); recent {
			continue
		}
		pending = append(pending, id)
	}
	if len(pending) == 0 {
		rlog.Info("all identifiers enriched recently, skipping", "lead_id", leadID)
		return nil
	}

	profiles, err := b.enricher.FetchBatch(ctx, pending)
	if err != nil {
		return err
	}

	channelOf := make(map[string]string, len(identity.Identifiers))
	for i, id := range identity.Identifiers {
		if i < len(identity.Channels) {
			channelOf[id] = identity.Channels[i]
		}
	}
	sections := make([]message.Profile, len(profiles))
	for i, p := range profiles {
		sections[i] = message.Profile{Doc: p.Doc, Channel: channelOf[p.Identifier]}
	}
	body := message.Compose(deref(phone), deref(email), sections, identity.SamePerson)

	if err := b.notify(ctx, leadID, body); err != nil {
		return err
	}

	return b.store(ctx, leadID, profiles)
}

// notify posts the message to the lead thread, retrying a fixed number of
// times with a flat delay.
func (b *business) notify(ctx context.Context, leadID, body string) error {
	var err error
	for attempt := 1; attempt <= notifyAttempts; attempt++ {
		if err = b.crm.SendMessage(ctx, leadID, body); err == nil {
			return nil
		}
		rlog.Warn("failed to post enrichment message", "lead_id", leadID, "attempt", attempt, "error", err)
		if attempt < notifyAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(notifyDelay):
			}
		}
	}
	return &errs.Error{Code: errs.Unavailable, Message: "failed to deliver enrichment message"}
}

// store persists every fetched profile. Each identifier is marked recently
// processed only after its upsert lands; the first storage error fails the
// task but does not stop the remaining upserts.
func (b *business) store(ctx context.Context, leadID string, profiles []*enricher.Enriched) error {
	var firstErr error
	for _, profile := range profiles {
		stored, err := b.parties.Upsert(ctx, profile.Identifier, profile.Doc, profile.Raw, leadID)
		if err != nil {
			rlog.Error("failed to store enriched party", "lead_id", leadID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		b.caches.Recent.Add(profile.Identifier, time.Now())
		rlog.Info("stored enriched party", "lead_id", leadID, "party_id", stored.ID)
	}
	return firstErr
}

func emptyPtr(s *string) bool {
	return s == nil || *s == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
