package entities

import "time"

// SaleStatus is modeled with the same stage-history machinery as offers so
// status edits audit identically, but no transitions are enforced.

type SaleStatus string

const SaleStatusCreated SaleStatus = "created"

// Sale is created from a converting offer. It reuses the offer's pipeline
// ref and receives a fresh unique No from the "sale-no" counter.
//
// Storage model (DynamoDB):
//   - PK: id
//   - No uniqueness via marker items, same scheme as offers.
type Sale struct {
	ID           string
	No           int64
	OfferID      string
	LeadID       string
	CustomerID   string
	PipelineRef  string
	Title        string
	Status       SaleStatus
	StageHistory []StageEntry
	Totals       *Totals
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NextStageEntry builds the history entry for moving this sale to "to".
func (s Sale) NextStageEntry(to SaleStatus, by string, now time.Time) StageEntry {
	return NextStageEntry(s.StageHistory, s.CreatedAt, string(s.Status), string(to), by, now)
}
