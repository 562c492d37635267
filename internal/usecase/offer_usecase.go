package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOfferID    = errors.New("invalid offer id")
	ErrOfferNotFound     = errors.New("offer not found")
	ErrOfferCreateFailed = errors.New("offer creation failed")
)

// maxCreateAttempts bounds the optimistic no-assignment loop: insert with a
// fresh no, on a duplicate resync the counter from the stored max and retry.
const maxCreateAttempts = 3

// OfferDraft carries the caller-supplied parent fields of a new offer.
type OfferDraft struct {
	LeadID      string
	CustomerID  string
	PipelineRef string
	Title       string
	Status      entities.OfferStatus
}

// OfferPatch is a partial offer update. Nil fields are left untouched.
type OfferPatch struct {
	Title      *string
	CustomerID *string
	Status     *entities.OfferStatus
}

// OfferWriteResult reports both phases of a non-transactional offer write.
// The parent write and the item sync are sequential store calls; when the
// second fails the offer still exists and ItemsSynced is false, so callers
// can retry the sync instead of treating the offer as lost.
type OfferWriteResult struct {
	Offer       entities.Offer
	Items       ItemBundle
	ItemsSynced bool
}

type IOfferUseCase interface {
	Create(ctx context.Context, draft OfferDraft, items entities.ItemSet, actor entities.Actor) (OfferWriteResult, error)
	GetWithItems(ctx context.Context, id string) (entities.Offer, ItemBundle, error)
	Update(ctx context.Context, id string, patch OfferPatch, items entities.ItemSet, actor entities.Actor) (OfferWriteResult, error)
	ChangeStatus(ctx context.Context, id string, status entities.OfferStatus, actor entities.Actor) (entities.Offer, error)
	Delete(ctx context.Context, id string) error
}

type OfferUseCase struct {
	offers interfaces.IOfferRepository
	seq    ISequenceUseCase
	sync   IPipelineSyncUseCase
	totals ITotalsUseCase
	now    func() time.Time
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(offers interfaces.IOfferRepository, seq ISequenceUseCase, sync IPipelineSyncUseCase, totals ITotalsUseCase) *OfferUseCase {
	return &OfferUseCase{offers: offers, seq: seq, sync: sync, totals: totals, now: time.Now}
}

func (u *OfferUseCase) Create(ctx context.Context, draft OfferDraft, items entities.ItemSet, actor entities.Actor) (OfferWriteResult, error) {
	pipelineRef := strings.TrimSpace(draft.PipelineRef)
	if pipelineRef == "" {
		ref, err := u.seq.GeneratePipelineRef(ctx)
		if err != nil {
			return OfferWriteResult{}, err
		}
		pipelineRef = ref
	}

	status := draft.Status
	if status == "" {
		status = entities.OfferStatusDraft
	}

	now := u.now().UTC()
	offer := entities.Offer{
		LeadID:      strings.TrimSpace(draft.LeadID),
		CustomerID:  strings.TrimSpace(draft.CustomerID),
		PipelineRef: pipelineRef,
		Title:       strings.TrimSpace(draft.Title),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.createWithUniqueNo(ctx, offer)
	if err != nil {
		return OfferWriteResult{}, err
	}

	return u.syncAndRecalculate(ctx, created, items, pipelineRef)
}

// createWithUniqueNo assigns a no from the counter and inserts. A duplicate
// no means the counter drifted behind the collection (manual imports); the
// repair is to force it past the stored max and try again.
func (u *OfferUseCase) createWithUniqueNo(ctx context.Context, offer entities.Offer) (entities.Offer, error) {
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		no, err := u.seq.GenerateOfferNo(ctx)
		if err != nil {
			return entities.Offer{}, err
		}
		offer.ID = uuid.NewString()
		offer.No = no

		created, err := u.offers.Create(ctx, offer)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, entities.ErrDuplicateNo) {
			return entities.Offer{}, err
		}
		log.Printf("[offer][usecase] duplicate no=%d on attempt %d, resyncing counter", no, attempt)

		maxNo, err := u.offers.MaxNo(ctx)
		if err != nil {
			return entities.Offer{}, err
		}
		if err := u.seq.SyncOfferNo(ctx, maxNo); err != nil {
			return entities.Offer{}, err
		}
	}
	return entities.Offer{}, ErrOfferCreateFailed
}

func (u *OfferUseCase) syncAndRecalculate(ctx context.Context, offer entities.Offer, items entities.ItemSet, pipelineRef string) (OfferWriteResult, error) {
	result := OfferWriteResult{Offer: offer}
	if items == (entities.ItemSet{}) {
		result.ItemsSynced = true
		return result, nil
	}

	bundle, err := u.sync.SyncItems(ctx, offer.ID, entities.ParentTypeOffer, pipelineRef, items)
	if err != nil {
		return result, err
	}
	result.Items = bundle
	result.ItemsSynced = true

	totals, err := u.totals.RecalculateAndStore(ctx, offer.ID, entities.ParentTypeOffer)
	if err != nil {
		return result, err
	}
	result.Offer.Totals = &totals
	return result, nil
}

func (u *OfferUseCase) GetWithItems(ctx context.Context, id string) (entities.Offer, ItemBundle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, ItemBundle{}, ErrInvalidOfferID
	}
	offer, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, ItemBundle{}, err
	}
	if offer.ID == "" {
		return entities.Offer{}, ItemBundle{}, ErrOfferNotFound
	}
	bundle, err := u.sync.GetAllItems(ctx, offer.ID, entities.ParentTypeOffer)
	if err != nil {
		return entities.Offer{}, ItemBundle{}, err
	}
	return offer, bundle, nil
}

func (u *OfferUseCase) Update(ctx context.Context, id string, patch OfferPatch, items entities.ItemSet, actor entities.Actor) (OfferWriteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OfferWriteResult{}, ErrInvalidOfferID
	}
	offer, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return OfferWriteResult{}, err
	}
	if offer.ID == "" {
		return OfferWriteResult{}, ErrOfferNotFound
	}

	var entry *entities.StageEntry
	if patch.Status != nil && *patch.Status != offer.Status {
		e := offer.NextStageEntry(*patch.Status, actor.ID, u.now().UTC())
		entry = &e
		offer.Status = *patch.Status
	}
	if patch.Title != nil {
		offer.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.CustomerID != nil {
		offer.CustomerID = strings.TrimSpace(*patch.CustomerID)
	}
	offer.UpdatedAt = u.now().UTC()

	updated, err := u.offers.Update(ctx, offer, entry)
	if err != nil {
		return OfferWriteResult{}, err
	}
	if updated.ID == "" {
		return OfferWriteResult{}, ErrOfferNotFound
	}

	return u.syncAndRecalculate(ctx, updated, items, updated.PipelineRef)
}

func (u *OfferUseCase) ChangeStatus(ctx context.Context, id string, status entities.OfferStatus, actor entities.Actor) (entities.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}
	offer, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if offer.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	if offer.Status == status {
		return offer, nil
	}
	entry := offer.NextStageEntry(status, actor.ID, u.now().UTC())
	updated, err := u.offers.UpdateStatus(ctx, id, status, &entry)
	if err != nil {
		return entities.Offer{}, err
	}
	if updated.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	return updated, nil
}

// Delete cascades: line items first, then the parent. If item deletion
// fails the offer document stays, so no item can outlive the record of the
// parent it belonged to.
func (u *OfferUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOfferID
	}
	offer, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offer.ID == "" {
		return ErrOfferNotFound
	}
	if _, err := u.sync.DeleteAllItems(ctx, offer.ID, entities.ParentTypeOffer); err != nil {
		return err
	}
	return u.offers.Delete(ctx, offer.ID)
}
