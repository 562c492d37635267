package entities

import "time"

// LeadStatus represents the lifecycle of a sales lead.
//
// Domain notes:
//   - A lead reaches "converted" only through the conversion engine, and only
//     from a status that is neither "converted" nor "lost".
//   - Reverting a lead conversion puts it back to "qualified".

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusConverted   LeadStatus = "converted"
	LeadStatusLost        LeadStatus = "lost"
)

// Lead is the top of the pipeline. It shares its PipelineRef with every
// offer and sale generated from it.
//
// Storage model (DynamoDB):
//   - PK: id
type Lead struct {
	ID          string
	PipelineRef string
	Status      LeadStatus
	CustomerID  string
	Name        string
	CompanyName string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Convertible reports whether the lead may still be promoted to an offer.
func (l Lead) Convertible() bool {
	return l.Status != LeadStatusConverted && l.Status != LeadStatusLost
}
