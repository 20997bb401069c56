package enrichment

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type EnrichLeadRequest struct {
	LeadID string `json:"lead_id" validate:"required"`
}

type EnrichLeadResponse struct {
	LeadID   string `json:"lead_id"`
	Enriched bool   `json:"enriched"`
}

// EnrichLead manually triggers the enrichment pipeline for a CRM lead,
// bypassing webhook intake. Unlike webhook processing it runs synchronously,
// so automation callers see the real outcome.
//
//encore:api public path=/v1/leads/enrich method=POST
func (s *Service) EnrichLead(ctx context.Context, req *EnrichLeadRequest) (*EnrichLeadResponse, error) {
	if err := s.intake.EnrichLead(ctx, req.LeadID); err != nil {
		rlog.Error("manual lead enrichment failed", "lead_id", req.LeadID, "error", err)
		return nil, err
	}
	return &EnrichLeadResponse{LeadID: req.LeadID, Enriched: true}, nil
}

// Validate implements validation for EnrichLeadRequest using go-playground/validator
func (r *EnrichLeadRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
