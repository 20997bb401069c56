package intake

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/model"
	"encore.app/enrichment/repository/receipts"
)

func (b *business) Receipt(ctx context.Context, eventID, updatedAt string) (*model.IntakeReceipt, error) {
	versionTS, err := model.ParseEventTime(updatedAt)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "malformed updated_at"}
	}

	row, err := b.receiptRepo.Get(ctx, eventID, versionTS)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "receipt not found"}
		}
		rlog.Error("failed to load receipt", "event_id", eventID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load receipt"}
	}

	return convertDBReceipt(row), nil
}

func convertDBReceipt(row receipts.Receipt) *model.IntakeReceipt {
	receipt := &model.IntakeReceipt{
		EventID:         row.EventID,
		VersionTS:       row.VersionTS.Time,
		Status:          model.ReceiptStatus(row.Status),
		RecordedAt:      row.RecordedAt.Time,
		StatusChangedAt: row.StatusChangedAt.Time,
	}
	if row.HookAction.Valid {
		receipt.HookAction = &row.HookAction.String
	}
	if row.ErrorMessage.Valid {
		receipt.ErrorMessage = &row.ErrorMessage.String
	}
	return receipt
}
