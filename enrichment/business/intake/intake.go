package intake

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/model"
	"encore.app/enrichment/repository/receipts"
)

// Intake accepts a webhook delivery. Each event is deduplicated against its
// durable receipt and dispatched to a background task; the caller gets a
// summary immediately without waiting on enrichment.
func (b *business) Intake(ctx context.Context, payload model.WebhookPayload) (*model.WebhookSummary, error) {
	if len(payload.Events) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "webhook payload contains no events"}
	}

	summary := &model.WebhookSummary{
		Status:   "success",
		Received: len(payload.Events),
	}

	var lastInvalid error
	for _, event := range payload.Events {
		accepted, err := b.intakeEvent(ctx, event)
		if err != nil {
			rlog.Error("rejected webhook event", "event_id", event.ID, "error", err)
			lastInvalid = err
			continue
		}
		if !accepted {
			summary.Duplicates++
			continue
		}
		summary.Processed++
	}

	// Only refuse the delivery outright when nothing in it was usable.
	if summary.Processed == 0 && summary.Duplicates == 0 && lastInvalid != nil {
		return nil, lastInvalid
	}
	return summary, nil
}

func (b *business) intakeEvent(ctx context.Context, event model.InboundEvent) (bool, error) {
	if event.ID == "" {
		return false, &errs.Error{Code: errs.InvalidArgument, Message: "event is missing an id"}
	}
	if event.Attributes.UpdatedAt == nil || *event.Attributes.UpdatedAt == "" {
		return false, &errs.Error{Code: errs.InvalidArgument, Message: "event is missing updated_at"}
	}
	versionTS, err := model.ParseEventTime(*event.Attributes.UpdatedAt)
	if err != nil {
		return false, &errs.Error{Code: errs.InvalidArgument, Message: "event has malformed updated_at"}
	}

	exists, err := b.receiptRepo.Exists(ctx, event.ID, versionTS)
	if err != nil {
		rlog.Error("failed to check event receipt", "event_id", event.ID, "error", err)
		return false, &errs.Error{Code: errs.Internal, Message: "failed to check event receipt"}
	}
	if exists {
		rlog.Info("skipping duplicate event", "event_id", event.ID, "version_ts", versionTS)
		return false, nil
	}

	err = b.receiptRepo.Insert(ctx, receipts.InsertParams{
		EventID:    event.ID,
		VersionTS:  pgtype.Timestamptz{Time: versionTS, Valid: true},
		HookAction: textPtr(event.HookAction),
		PayloadRaw: event.Raw,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// Concurrent delivery of the same event won the insert race.
			rlog.Info("skipping concurrently recorded event", "event_id", event.ID)
			return false, nil
		}
		rlog.Error("failed to record event receipt", "event_id", event.ID, "error", err)
		return false, &errs.Error{Code: errs.Internal, Message: "failed to record event receipt"}
	}

	ev := event
	runAsync("process-webhook-event", func(ctx context.Context) error {
		return b.Process(ctx, ev, versionTS)
	})
	return true, nil
}

// Process claims the event's receipt and drives it to a terminal status.
// A zero-row claim means another task owns the event already.
func (b *business) Process(ctx context.Context, event model.InboundEvent, versionTS time.Time) error {
	rows, err := b.receiptRepo.MarkProcessing(ctx, event.ID, versionTS)
	if err != nil {
		rlog.Error("failed to claim event", "event_id", event.ID, "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to claim event"}
	}
	if rows == 0 {
		rlog.Warn("event already claimed, skipping", "event_id", event.ID, "version_ts", versionTS)
		return nil
	}

	if err := b.enrichEvent(ctx, event); err != nil {
		if _, markErr := b.receiptRepo.MarkFailed(ctx, event.ID, versionTS, err.Error()); markErr != nil {
			rlog.Error("failed to mark event failed", "event_id", event.ID, "error", markErr)
		}
		return err
	}

	if _, err := b.receiptRepo.MarkCompleted(ctx, event.ID, versionTS); err != nil {
		rlog.Error("failed to mark event completed", "event_id", event.ID, "error", err)
	}
	return nil
}

func textPtr(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
