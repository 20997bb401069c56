package intake

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/enrichment/mocks/repository/receipt_repo"
	"encore.app/enrichment/model"
	"encore.app/enrichment/repository/receipts"
)

func TestReceiptReturnsRecordedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReceipts := receipt_repo.NewMockQuerier(ctrl)
	b := &business{receiptRepo: mockReceipts}

	versionTS := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	errMsg := "enrichment provider unavailable"
	mockReceipts.EXPECT().
		Get(gomock.Any(), "lead-1", versionTS).
		Return(receipts.Receipt{
			EventID:      "lead-1",
			VersionTS:    pgtype.Timestamptz{Time: versionTS, Valid: true},
			HookAction:   pgtype.Text{String: "update", Valid: true},
			Status:       "failed",
			ErrorMessage: pgtype.Text{String: errMsg, Valid: true},
		}, nil)

	receipt, err := b.Receipt(context.Background(), "lead-1", "2025-06-01T12:00:00Z")

	assert.NoError(t, err)
	assert.Equal(t, model.ReceiptStatusFailed, receipt.Status)
	assert.Equal(t, versionTS, receipt.VersionTS)
	assert.Equal(t, "update", *receipt.HookAction)
	assert.Equal(t, errMsg, *receipt.ErrorMessage)
}

func TestReceiptRejectsMalformedTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := &business{receiptRepo: receipt_repo.NewMockQuerier(ctrl)}

	_, err := b.Receipt(context.Background(), "lead-1", "yesterday")

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidArgument, e.Code)
}

func TestReceiptNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReceipts := receipt_repo.NewMockQuerier(ctrl)
	b := &business{receiptRepo: mockReceipts}

	mockReceipts.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(receipts.Receipt{}, pgx.ErrNoRows)

	_, err := b.Receipt(context.Background(), "lead-1", "2025-06-01T12:00:00Z")

	var e *errs.Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, errs.NotFound, e.Code)
}
