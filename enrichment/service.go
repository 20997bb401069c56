package enrichment

import (
	"github.com/go-playground/validator/v10"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/enrichment/breaker"
	"encore.app/enrichment/business/enricher"
	"encore.app/enrichment/business/intake"
	"encore.app/enrichment/business/party"
	"encore.app/enrichment/business/resolver"
	"encore.app/enrichment/cache"
	"encore.app/enrichment/integrations/crm"
	"encore.app/enrichment/integrations/lookup"
	"encore.app/enrichment/integrations/workapi"
	"encore.app/enrichment/repository"
)

var enrichmentDB = sqldb.NewDatabase("enrichment", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	WebhookToken     string // shared secret expected in X-Webhook-Token
	CRMToken         string
	LookupUser       string
	LookupPassword   string
	EnrichmentAPIKey string
}

var validate = validator.New()

//encore:service
type Service struct {
	intake       intake.Business
	parties      party.Business
	webhookToken string
}

func initService() (*Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	pgxdb := sqldb.Driver(enrichmentDB)
	repo := repository.NewRepository(pgxdb)
	caches := cache.NewSet()

	lookupClient := lookup.NewClient(cfg.LookupBaseURL, secrets.LookupUser, secrets.LookupPassword)
	workClient := workapi.NewClient(cfg.WorkAPIBaseURL, secrets.EnrichmentAPIKey)
	crmClient := crm.NewClient(cfg.CRMBaseURL, secrets.CRMToken)

	resolverBusiness := resolver.NewBusiness(lookupClient, caches, breaker.New("identity-lookup"))
	enricherBusiness := enricher.NewBusiness(workClient, caches, breaker.New("profile-enrichment"))
	partyBusiness := party.NewBusiness(repo.Parties)
	intakeBusiness := intake.NewBusiness(
		repo.Receipts,
		resolverBusiness,
		enricherBusiness,
		partyBusiness,
		crmClient,
		caches,
	)

	if secrets.WebhookToken == "" {
		rlog.Warn("webhook token not configured, inbound deliveries will not be authenticated")
	}

	return &Service{
		intake:       intakeBusiness,
		parties:      partyBusiness,
		webhookToken: secrets.WebhookToken,
	}, nil
}
