package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/parcelado-app/parcelado_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CardRepo:      NewCardRepository(pool),
		PurchaseRepo:  NewPurchaseRepository(pool),
		BillStateRepo: NewBillStateRepository(pool),
		ExpenseRepo:   NewExpenseRepository(pool),
		ProfileRepo:   NewProfileRepository(pool),
	}
}
