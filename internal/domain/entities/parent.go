package entities

import (
	"errors"
	"time"
)

// ParentType distinguishes the two documents that can own line items.

type ParentType string

const (
	ParentTypeOffer ParentType = "offer"
	ParentTypeSale  ParentType = "sale"
)

// ErrNotFound is returned by repositories when an id does not resolve to a
// stored document.
var ErrNotFound = errors.New("not found")

// ErrDuplicateNo is returned by parent repositories when a create collides
// with an already-assigned numeric "no" (unique-key violation). The offer
// creation path treats it as recoverable and resyncs the counter.
var ErrDuplicateNo = errors.New("duplicate no")

// Actor identifies who performed a state change, for audit stamping.
type Actor struct {
	ID   string
	Name string
}

// StageEntry is one record of the append-only stage-history trail.
//
// DurationInStage is the wall-clock time spent in FromStatus, in whole
// seconds, measured from the previous entry's ChangedAt (or document
// creation), floored at zero so clock skew never produces a negative value.
type StageEntry struct {
	FromStatus      string
	ToStatus        string
	ChangedBy       string
	ChangedAt       time.Time
	DurationInStage int64
}

// NextStageEntry builds the history entry for a status change away from
// "from". history and createdAt belong to the document being changed.
func NextStageEntry(history []StageEntry, createdAt time.Time, from, to string, by string, now time.Time) StageEntry {
	since := createdAt
	if n := len(history); n > 0 {
		since = history[n-1].ChangedAt
	}
	d := now.Sub(since)
	if d < 0 {
		d = 0
	}
	return StageEntry{
		FromStatus:      from,
		ToStatus:        to,
		ChangedBy:       by,
		ChangedAt:       now,
		DurationInStage: int64(d.Seconds()),
	}
}

// ConversionInfo records the Offer → Sale promotion on the offer document.
type ConversionInfo struct {
	SaleID          string
	Converted       bool
	ConvertedBy     string
	ConvertedByName string
	ConvertedAt     time.Time
}
