package interfaces

import "context"

// CustomerDraft is the minimal payload sent to the customer service when a
// lead without a linked customer converts.
type CustomerDraft struct {
	Name        string
	CompanyName string
	Phone       string
	Email       string
	IsProspect  bool
}

// CustomerRef is what the customer service returns on create.
type CustomerRef struct {
	ID          string
	Name        string
	CompanyName string
}

// ICustomerService is the boundary to the external customer service. Only
// create is needed here, and only during Lead → Offer conversion.

type ICustomerService interface {
	Create(ctx context.Context, draft CustomerDraft) (CustomerRef, error)
}
