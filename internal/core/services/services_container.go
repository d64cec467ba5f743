package services

import (
	portsrepo "github.com/parcelado-app/parcelado_backend/internal/core/ports/repositories"
	portssvc "github.com/parcelado-app/parcelado_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the card service first since other services depend on it
	// for ownership checks
	container.Card = NewCardService(repos.CardRepo)

	container.Purchase = NewPurchaseService(repos.PurchaseRepo, container.Card)
	container.BillState = NewBillStateService(repos.BillStateRepo, container.Card)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Profile = NewProfileService(repos.ProfileRepo)

	// Derivation services recompute from raw records on every query
	container.Statement = NewStatementService(repos.CardRepo, repos.PurchaseRepo, repos.BillStateRepo)
	container.Summary = NewSummaryService(container.Statement, container.Expense, container.Profile)

	return container
}
