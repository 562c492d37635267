package entities

import "time"

// OfferStatus represents the offer stage of the pipeline.
//
// draft → sent → revised → waiting → approved → {rejected | won | lost | converted}
//
// Transitions are not enforced as a table; any status write goes through the
// usecase layer, which appends stage history. "converted" is set by the
// conversion engine only, and reverting a conversion returns the offer to
// "approved".

type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "draft"
	OfferStatusSent      OfferStatus = "sent"
	OfferStatusRevised   OfferStatus = "revised"
	OfferStatusWaiting   OfferStatus = "waiting"
	OfferStatusApproved  OfferStatus = "approved"
	OfferStatusRejected  OfferStatus = "rejected"
	OfferStatusWon       OfferStatus = "won"
	OfferStatusLost      OfferStatus = "lost"
	OfferStatusConverted OfferStatus = "converted"
)

// Offer is a parent document. Its line items live in the four shared
// sub-collections keyed by (parentId, parentType) and are never embedded.
//
// Storage model (DynamoDB):
//   - PK: id
//   - No is globally unique, enforced with a marker item in the unique-keys
//     table written in the same transaction as the offer.
type Offer struct {
	ID             string
	No             int64
	LeadID         string
	CustomerID     string
	PipelineRef    string
	Title          string
	Status         OfferStatus
	ConversionInfo ConversionInfo
	StageHistory   []StageEntry
	Totals         *Totals
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NextStageEntry builds the history entry for moving this offer to "to".
func (o Offer) NextStageEntry(to OfferStatus, by string, now time.Time) StageEntry {
	return NextStageEntry(o.StageHistory, o.CreatedAt, string(o.Status), string(to), by, now)
}
