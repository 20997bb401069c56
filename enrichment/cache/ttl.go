package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"encore.app/enrichment/model"
)

// Cache sizing mirrors observed production traffic: contacts are stable for a
// day, re-enrichment of the same identifier is pointless within minutes, and
// raw API responses age out within the hour.
const (
	contactTTL      = 24 * time.Hour
	contactCapacity = 50_000

	recentTTL      = 5 * time.Minute
	recentCapacity = 10_000

	responseTTL      = time.Hour
	responseCapacity = 100_000
)

// Set holds the three process-local caches shared by all background tasks.
// All are LRU-bounded with per-entry TTL and safe for concurrent use. They
// only save external calls; nothing here is a source of truth.
//
// Contacts maps "phone:<e164>" / "email:<addr>" to the identity resolved from
// that channel. A stored nil is a confirmed negative ("looked up, absent"),
// distinct from a plain miss.
type Set struct {
	Contacts  *expirable.LRU[string, *model.ResolvedIdentity]
	Recent    *expirable.LRU[string, time.Time]
	Responses *expirable.LRU[string, string]
}

func NewSet() *Set {
	return &Set{
		Contacts:  expirable.NewLRU[string, *model.ResolvedIdentity](contactCapacity, nil, contactTTL),
		Recent:    expirable.NewLRU[string, time.Time](recentCapacity, nil, recentTTL),
		Responses: expirable.NewLRU[string, string](responseCapacity, nil, responseTTL),
	}
}

// PhoneKey is the contact-cache key for a normalized phone number.
func PhoneKey(phone string) string { return "phone:" + phone }

// EmailKey is the contact-cache key for an email address.
func EmailKey(email string) string { return "email:" + email }

// AllModulesKey is the response-cache key for a full-profile fetch.
func AllModulesKey(identifier string) string { return "all:" + identifier }

// ModuleKey is the response-cache key for a single-module fetch.
func ModuleKey(module, identifier string) string { return "module:" + module + ":" + identifier }
