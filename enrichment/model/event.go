package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// WebhookPayload is the body of a CRM webhook delivery. The CRM sends either a
// single event object or an array of events; both decode into Events.
type WebhookPayload struct {
	Events []InboundEvent
}

func (p *WebhookPayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return err
		}
		p.Events = make([]InboundEvent, 0, len(raws))
		for _, raw := range raws {
			var event InboundEvent
			if err := json.Unmarshal(raw, &event); err != nil {
				return err
			}
			event.Raw = raw
			p.Events = append(p.Events, event)
		}
		return nil
	}

	var event InboundEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return err
	}
	event.Raw = append(json.RawMessage(nil), data...)
	p.Events = []InboundEvent{event}
	return nil
}

// InboundEvent is one CRM change notification. Immutable after receipt; Raw
// holds the verbatim payload for durable storage.
type InboundEvent struct {
	ID         string          `json:"id"`
	HookAction *string         `json:"hook_action,omitempty"`
	Attributes EventAttributes `json:"attributes"`
	Raw        json.RawMessage `json:"-"`
}

// The CRM emits lead ids as both JSON strings and numbers.
func (e *InboundEvent) UnmarshalJSON(data []byte) error {
	type alias InboundEvent
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.ID = coerceID(aux.ID)
	return nil
}

func coerceID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

type EventAttributes struct {
	UpdatedAt *string        `json:"updated_at,omitempty"`
	Customer  *EventCustomer `json:"customer,omitempty"`
}

type EventCustomer struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// WebhookSummary is the synchronous response to a webhook delivery. It reports
// intake outcome only; background processing is never reflected here.
type WebhookSummary struct {
	Status     string `json:"status"`
	Received   int    `json:"received"`
	Processed  int    `json:"processed"`
	Duplicates int    `json:"duplicates"`
}

var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02 15:04:05.999999999",
}

// ParseEventTime parses the CRM's updated_at field. RFC3339 is the documented
// format; the CRM has historically emitted space-separated variants, with and
// without a zone (naive timestamps are taken as UTC).
func ParseEventTime(value string) (time.Time, error) {
	var lastErr error
	for i, layout := range eventTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			if i == len(eventTimeLayouts)-1 {
				t = t.UTC()
			}
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
