package enrichment

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/enrichment/model"
)

const maxWebhookBody = 1 << 20 // 1 MiB

// Webhook receives CRM lead events. The body may be a single event object or
// an array of events, so this is a raw endpoint rather than a typed one.
// Accepted events are processed in the background; the response only reports
// intake counts.
//
//encore:api public raw method=POST path=/v1/webhooks/crm
func (s *Service) Webhook(w http.ResponseWriter, req *http.Request) {
	if err := s.authenticateWebhook(req); err != nil {
		errs.HTTPError(w, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(req.Body, maxWebhookBody))
	if err != nil {
		errs.HTTPError(w, &errs.Error{Code: errs.InvalidArgument, Message: "failed to read request body"})
		return
	}

	var payload model.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		rlog.Error("failed to decode webhook payload", "error", err)
		errs.HTTPError(w, &errs.Error{Code: errs.InvalidArgument, Message: "malformed webhook payload"})
		return
	}

	summary, err := s.intake.Intake(req.Context(), payload)
	if err != nil {
		errs.HTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		rlog.Error("failed to write webhook response", "error", err)
	}
}

// authenticateWebhook checks the shared-secret header. An unset token means
// authentication is disabled; that is warned about once at startup.
func (s *Service) authenticateWebhook(req *http.Request) error {
	if s.webhookToken == "" {
		return nil
	}
	provided := req.Header.Get("X-Webhook-Token")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(s.webhookToken)) != 1 {
		return &errs.Error{Code: errs.Unauthenticated, Message: "invalid webhook token"}
	}
	return nil
}
