package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/enrichment/repository/parties"
	"encore.app/enrichment/repository/receipts"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Receipts receipts.Querier
	Parties  parties.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Receipts: receipts.New(db),
		Parties:  parties.New(db),
	}
}
