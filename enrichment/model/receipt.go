package model

import (
	"time"
)

// IntakeReceipt is the durable record of one inbound event, keyed by
// (event_id, version_ts). It drives deduplication and carries the processing
// status of the detached background task. Receipts are never deleted.
type IntakeReceipt struct {
	EventID         string        `json:"event_id"`
	VersionTS       time.Time     `json:"version_ts"`
	HookAction      *string       `json:"hook_action,omitempty"`
	Status          ReceiptStatus `json:"status"`
	ErrorMessage    *string       `json:"error_message,omitempty"`
	RecordedAt      time.Time     `json:"recorded_at"`
	StatusChangedAt time.Time     `json:"status_changed_at"`
}

type ReceiptStatus string

const (
	ReceiptStatusReceived   ReceiptStatus = "received"
	ReceiptStatusProcessing ReceiptStatus = "processing"
	ReceiptStatusCompleted  ReceiptStatus = "completed"
	ReceiptStatusFailed     ReceiptStatus = "failed"
)
