package enrichment

import (
	"context"

	"encore.app/enrichment/model"
)

type ReceiptParams struct {
	// UpdatedAt is the event version timestamp the receipt was recorded under.
	UpdatedAt string `query:"updated_at"`
}

// GetReceipt reports the intake status of one recorded webhook event version,
// so operators can check whether a delivery was accepted and how its
// background task ended.
//
//encore:api public path=/v1/receipts/:eventID method=GET
func (s *Service) GetReceipt(ctx context.Context, eventID string, params *ReceiptParams) (*model.IntakeReceipt, error) {
	return s.intake.Receipt(ctx, eventID, params.UpdatedAt)
}
