package domain

// CreditCard represents a credit card tracked by a user. A card owns zero or
// more installment purchases and zero or more per-period bill states.
type CreditCard struct {
	CardID   string `json:"cardID"`   // Primary key (UUID)
	UserID   string `json:"userID"`   // Owning user (JWT subject)
	BankName string `json:"bankName"` // User-facing display name
	AuditFields
}
