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
	ErrInvalidLeadID         = errors.New("invalid lead id")
	ErrLeadNotFound          = errors.New("lead not found")
	ErrLeadNotConvertible    = errors.New("lead is converted or lost and cannot be converted")
	ErrLeadOfferNotFound     = errors.New("no offer found for lead")
	ErrOfferAlreadyConverted = errors.New("offer is already converted")
	ErrOfferNotConverted     = errors.New("offer is not converted")
	ErrSaleCreateFailed      = errors.New("sale creation failed")
	ErrCustomerServiceDown   = errors.New("customer service is not configured")
)

// IConversionUseCase drives the Lead → Offer → Sale state machine,
// including reversals.

type IConversionUseCase interface {
	ConvertLead(ctx context.Context, leadID string, extra OfferDraft, actor entities.Actor) (entities.Offer, error)
	RevertLead(ctx context.Context, leadID string) (entities.Lead, error)
	ConvertOffer(ctx context.Context, offerID string, actor entities.Actor) (entities.Sale, error)
	RevertOffer(ctx context.Context, offerID string, actor entities.Actor) (entities.Offer, error)
}

type ConversionUseCase struct {
	leads     interfaces.ILeadRepository
	offers    interfaces.IOfferRepository
	sales     interfaces.ISaleRepository
	customers interfaces.ICustomerService
	offerUC   IOfferUseCase
	seq       ISequenceUseCase
	sync      IPipelineSyncUseCase
	totals    ITotalsUseCase
	now       func() time.Time
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(
	leads interfaces.ILeadRepository,
	offers interfaces.IOfferRepository,
	sales interfaces.ISaleRepository,
	customers interfaces.ICustomerService,
	offerUC IOfferUseCase,
	seq ISequenceUseCase,
	sync IPipelineSyncUseCase,
	totals ITotalsUseCase,
) *ConversionUseCase {
	return &ConversionUseCase{
		leads:     leads,
		offers:    offers,
		sales:     sales,
		customers: customers,
		offerUC:   offerUC,
		seq:       seq,
		sync:      sync,
		totals:    totals,
		now:       time.Now,
	}
}

// ConvertLead promotes a lead to an offer. The lead's pipeline ref is
// reused, never regenerated. A lead without a linked customer gets a
// prospect customer created from its contact fields first.
func (u *ConversionUseCase) ConvertLead(ctx context.Context, leadID string, extra OfferDraft, actor entities.Actor) (entities.Offer, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Offer{}, ErrInvalidLeadID
	}
	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		return entities.Offer{}, err
	}
	if lead.ID == "" {
		return entities.Offer{}, ErrLeadNotFound
	}
	if !lead.Convertible() {
		return entities.Offer{}, ErrLeadNotConvertible
	}

	customerID := lead.CustomerID
	customerCreated := false
	if customerID == "" {
		if u.customers == nil {
			return entities.Offer{}, ErrCustomerServiceDown
		}
		ref, err := u.customers.Create(ctx, interfaces.CustomerDraft{
			Name:        lead.Name,
			CompanyName: lead.CompanyName,
			Phone:       lead.Phone,
			Email:       lead.Email,
			IsProspect:  true,
		})
		if err != nil {
			return entities.Offer{}, err
		}
		customerID = ref.ID
		customerCreated = true
		log.Printf("[conversion][usecase] prospect customer created lead_id=%s customer_id=%s", leadID, customerID)
	}

	draft := extra
	draft.LeadID = lead.ID
	draft.CustomerID = customerID
	draft.PipelineRef = lead.PipelineRef

	result, err := u.offerUC.Create(ctx, draft, entities.ItemSet{}, actor)
	if err != nil {
		return entities.Offer{}, err
	}

	newCustomerID := ""
	if customerCreated {
		newCustomerID = customerID
	}
	if _, err := u.leads.MarkConverted(ctx, lead.ID, newCustomerID); err != nil {
		return entities.Offer{}, err
	}
	log.Printf("[conversion][usecase] lead converted lead_id=%s offer_id=%s no=%d", leadID, result.Offer.ID, result.Offer.No)
	return result.Offer, nil
}

// RevertLead unwinds the most recent Lead → Offer conversion: the offer and
// its line items are removed and the lead goes back to "qualified". An
// offer that already became a sale cannot be unwound this way.
func (u *ConversionUseCase) RevertLead(ctx context.Context, leadID string) (entities.Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	offer, err := u.offers.GetLatestByLeadID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if offer.ID == "" {
		return entities.Lead{}, ErrLeadOfferNotFound
	}
	if offer.Status == entities.OfferStatusConverted {
		return entities.Lead{}, ErrOfferAlreadyConverted
	}

	if err := u.offerUC.Delete(ctx, offer.ID); err != nil {
		return entities.Lead{}, err
	}
	reverted, err := u.leads.SetStatus(ctx, leadID, entities.LeadStatusQualified)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[conversion][usecase] lead conversion reverted lead_id=%s offer_id=%s", leadID, offer.ID)
	return reverted, nil
}

// ConvertOffer promotes an offer to a sale: a sale is created with a fresh
// sale no, every line item is cloned over (payments come out unpaid), and
// the offer is stamped converted.
func (u *ConversionUseCase) ConvertOffer(ctx context.Context, offerID string, actor entities.Actor) (entities.Sale, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Sale{}, ErrInvalidOfferID
	}
	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return entities.Sale{}, err
	}
	if offer.ID == "" {
		return entities.Sale{}, ErrOfferNotFound
	}
	if offer.ConversionInfo.Converted {
		return entities.Sale{}, ErrOfferAlreadyConverted
	}

	now := u.now().UTC()
	sale := entities.Sale{
		OfferID:     offer.ID,
		LeadID:      offer.LeadID,
		CustomerID:  offer.CustomerID,
		PipelineRef: offer.PipelineRef,
		Title:       offer.Title,
		Status:      entities.SaleStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.createSaleWithUniqueNo(ctx, sale)
	if err != nil {
		return entities.Sale{}, err
	}

	if _, err := u.sync.CloneAllItems(ctx, offer.ID, entities.ParentTypeOffer, created.ID, entities.ParentTypeSale, offer.PipelineRef); err != nil {
		return entities.Sale{}, err
	}
	if totals, err := u.totals.RecalculateAndStore(ctx, created.ID, entities.ParentTypeSale); err == nil {
		created.Totals = &totals
	} else {
		log.Printf("[conversion][usecase] totals recalculation failed sale_id=%s err=%v", created.ID, err)
	}

	info := entities.ConversionInfo{
		SaleID:          created.ID,
		Converted:       true,
		ConvertedBy:     actor.ID,
		ConvertedByName: actor.Name,
		ConvertedAt:     now,
	}
	var entry *entities.StageEntry
	if offer.Status != entities.OfferStatusConverted {
		e := offer.NextStageEntry(entities.OfferStatusConverted, actor.ID, now)
		entry = &e
	}
	if _, err := u.offers.SetConverted(ctx, offer.ID, info, entry); err != nil {
		return entities.Sale{}, err
	}
	log.Printf("[conversion][usecase] offer converted offer_id=%s sale_id=%s no=%d", offer.ID, created.ID, created.No)
	return created, nil
}

// RevertOffer unwinds an Offer → Sale conversion on the offer document:
// status back to "approved", conversion info cleared. The sale itself is
// left in place.
func (u *ConversionUseCase) RevertOffer(ctx context.Context, offerID string, actor entities.Actor) (entities.Offer, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}
	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	if offer.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	if !offer.ConversionInfo.Converted {
		return entities.Offer{}, ErrOfferNotConverted
	}

	var entry *entities.StageEntry
	if offer.Status != entities.OfferStatusApproved {
		e := offer.NextStageEntry(entities.OfferStatusApproved, actor.ID, u.now().UTC())
		entry = &e
	}
	reverted, err := u.offers.ClearConversion(ctx, offer.ID, entry)
	if err != nil {
		return entities.Offer{}, err
	}
	log.Printf("[conversion][usecase] offer conversion reverted offer_id=%s", offer.ID)
	return reverted, nil
}

func (u *ConversionUseCase) createSaleWithUniqueNo(ctx context.Context, sale entities.Sale) (entities.Sale, error) {
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		no, err := u.seq.GenerateSaleNo(ctx)
		if err != nil {
			return entities.Sale{}, err
		}
		sale.ID = uuid.NewString()
		sale.No = no

		created, err := u.sales.Create(ctx, sale)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, entities.ErrDuplicateNo) {
			return entities.Sale{}, err
		}
		log.Printf("[conversion][usecase] duplicate sale no=%d on attempt %d, resyncing counter", no, attempt)

		maxNo, err := u.sales.MaxNo(ctx)
		if err != nil {
			return entities.Sale{}, err
		}
		if err := u.seq.SyncSaleNo(ctx, maxNo); err != nil {
			return entities.Sale{}, err
		}
	}
	return entities.Sale{}, ErrSaleCreateFailed
}
