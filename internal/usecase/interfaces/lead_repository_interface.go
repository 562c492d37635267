package interfaces

import (
	"context"

	"crm_pipeline/internal/domain/entities"
)

// ILeadRepository abstracts lead persistence. Leads are managed by another
// service; the conversion engine only reads them and stamps status changes.

type ILeadRepository interface {
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	MarkConverted(ctx context.Context, id string, customerID string) (entities.Lead, error)
	SetStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}
