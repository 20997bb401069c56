package intake

import (
	"context"
	"time"

	"encore.app/enrichment/business/enricher"
	"encore.app/enrichment/business/party"
	"encore.app/enrichment/business/resolver"
	"encore.app/enrichment/cache"
	"encore.app/enrichment/integrations/crm"
	"encore.app/enrichment/model"
	"encore.app/enrichment/repository/receipts"
)

//go:generate mockgen -source=./business.go -destination=../../mocks/business/intake_business/business.go -package=intake_business

type Business interface {
	// Intake validates and records the events in one webhook delivery,
	// dispatching a background task per accepted event.
	Intake(ctx context.Context, payload model.WebhookPayload) (*model.WebhookSummary, error)
	// Process runs the enrichment pipeline for one claimed event.
	Process(ctx context.Context, event model.InboundEvent, versionTS time.Time) error
	// EnrichLead runs the pipeline synchronously for a lead fetched from
	// the CRM, without intake bookkeeping.
	EnrichLead(ctx context.Context, leadID string) error
	// Receipt reports the intake status of one recorded event version.
	Receipt(ctx context.Context, eventID, updatedAt string) (*model.IntakeReceipt, error)
}

type business struct {
	receiptRepo receipts.Querier
	resolver    resolver.Business
	enricher    enricher.Business
	parties     party.Business
	crm         crm.Client
	caches      *cache.Set
}

func NewBusiness(
	receiptRepo receipts.Querier,
	resolverBusiness resolver.Business,
	enricherBusiness enricher.Business,
	partyBusiness party.Business,
	crmClient crm.Client,
	caches *cache.Set,
) Business {
	return &business{
		receiptRepo: receiptRepo,
		resolver:    resolverBusiness,
		enricher:    enricherBusiness,
		parties:     partyBusiness,
		crm:         crmClient,
		caches:      caches,
	}
}
