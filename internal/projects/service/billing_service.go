package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/projects/domain"
)

const maxNotesLength = 500

// BillingView is the projection returned by ledger reads.
type BillingView struct {
	ProjectName string                `json:"projectName"`
	ClientName  string                `json:"clientName"`
	Billing     []domain.BillingEntry `json:"billing"`
}

// BillingEntryInput is a new ledger entry. Status defaults to pending and
// the date to now.
type BillingEntryInput struct {
	BillingAmount   float64
	Recipient       string
	Status          domain.BillingStatus
	Date            time.Time
	AdditionalNotes string
}

func (in *BillingEntryInput) validate() error {
	if in.BillingAmount < 0 {
		return domain.Invalid("billingAmount must be a non-negative number")
	}
	if in.Status != "" && !in.Status.Valid() {
		return domain.Invalid("Invalid billing status")
	}
	if len(in.AdditionalNotes) > maxNotesLength {
		return domain.Invalid("additionalNotes must be at most 500 characters")
	}
	return nil
}

// AddBillingEntry validates before any store access, then appends. The
// created entry is returned by its server-generated id rather than by list
// position, so concurrent appends cannot misattribute it.
func (s *Service) AddBillingEntry(ctx context.Context, adminID, projectID uuid.UUID, in BillingEntryInput) (*domain.BillingEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	entry := domain.BillingEntry{
		ID:              uuid.New(),
		Date:            in.Date,
		BillingAmount:   in.BillingAmount,
		Recipient:       in.Recipient,
		Status:          in.Status,
		AdditionalNotes: in.AdditionalNotes,
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	if entry.Status == "" {
		entry.Status = domain.BillingPending
	}

	p, err := s.store.AddBillingEntry(ctx, adminID, projectID, entry)
	if err != nil {
		return nil, err
	}
	for i := range p.Billing {
		if p.Billing[i].ID == entry.ID {
			return &p.Billing[i], nil
		}
	}
	return &entry, nil
}

func (s *Service) GetBillingEntries(ctx context.Context, adminID, projectID uuid.UUID) (*BillingView, error) {
	p, err := s.store.GetByID(ctx, adminID, projectID)
	if err != nil {
		return nil, err
	}
	return &BillingView{
		ProjectName: p.ProjectName,
		ClientName:  p.ClientName,
		Billing:     p.Billing,
	}, nil
}

func (s *Service) UpdateBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID, patch domain.BillingPatch) (*domain.Project, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Invalid("Invalid billing status")
	}
	if patch.BillingAmount != nil && *patch.BillingAmount < 0 {
		return nil, domain.Invalid("billingAmount must be a non-negative number")
	}
	if patch.AdditionalNotes != nil && len(*patch.AdditionalNotes) > maxNotesLength {
		return nil, domain.Invalid("additionalNotes must be at most 500 characters")
	}
	return s.store.UpdateBillingEntry(ctx, adminID, projectID, entryID, patch)
}

func (s *Service) DeleteBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID) error {
	_, err := s.store.DeleteBillingEntry(ctx, adminID, projectID, entryID)
	return err
}

// GetBillingSummary recomputes the summary from the full ledger on every
// call; there is no cached aggregate to fall out of sync.
func (s *Service) GetBillingSummary(ctx context.Context, adminID, projectID uuid.UUID) (*domain.BillingSummary, error) {
	p, err := s.store.GetByID(ctx, adminID, projectID)
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeBilling(p.ProjectName, p.Billing)
	return &summary, nil
}
