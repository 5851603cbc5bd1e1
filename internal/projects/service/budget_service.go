package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/projects/domain"
)

// BudgetView is the projection returned by budget reads.
type BudgetView struct {
	ProjectName string         `json:"projectName"`
	ClientName  string         `json:"clientName"`
	Budget      *domain.Budget `json:"budget"`
}

// BudgetItemInput is a new work item. Percentage must sit in [0,100] and
// the amount must be non-negative; the sum of percentages across items is
// deliberately not enforced here.
type BudgetItemInput struct {
	CumulativeWork       string
	CumulativePercentage float64
	Amount               float64
}

func (in *BudgetItemInput) validate() error {
	if in.CumulativePercentage < 0 || in.CumulativePercentage > 100 {
		return domain.Invalid("cumulativePercentage must be between 0 and 100")
	}
	if in.Amount < 0 {
		return domain.Invalid("amount must be a non-negative number")
	}
	return nil
}

func validateBudgetPatch(patch domain.BudgetPatch) error {
	if patch.AreaInSqFeet != nil && *patch.AreaInSqFeet < 0 {
		return domain.Invalid("areaInSqFeet must be a non-negative number")
	}
	if patch.TotalAmount != nil && *patch.TotalAmount < 0 {
		return domain.Invalid("totalAmount must be a non-negative number")
	}
	if patch.Items != nil {
		for _, item := range *patch.Items {
			if item.CumulativePercentage < 0 || item.CumulativePercentage > 100 {
				return domain.Invalid("cumulativePercentage must be between 0 and 100")
			}
			if item.Amount < 0 {
				return domain.Invalid("amount must be a non-negative number")
			}
		}
	}
	return nil
}

// SetBudget is a wholesale replace: any supplied field overwrites the
// stored one, and a supplied item list lands verbatim. The caller is
// trusted to ship a total that matches its items; nothing is re-derived.
func (s *Service) SetBudget(ctx context.Context, adminID, projectID uuid.UUID, patch domain.BudgetPatch) (*domain.Project, error) {
	if err := validateBudgetPatch(patch); err != nil {
		return nil, err
	}
	if patch.Items != nil {
		items := *patch.Items
		for i := range items {
			if items[i].ID == uuid.Nil {
				items[i].ID = uuid.New()
			}
		}
	}
	return s.store.SetBudget(ctx, adminID, projectID, patch)
}

func (s *Service) GetBudget(ctx context.Context, adminID, projectID uuid.UUID) (*BudgetView, error) {
	p, err := s.store.GetByID(ctx, adminID, projectID)
	if err != nil {
		return nil, err
	}
	return &BudgetView{
		ProjectName: p.ProjectName,
		ClientName:  p.ClientName,
		Budget:      p.Budget,
	}, nil
}

func (s *Service) AddBudgetItem(ctx context.Context, adminID, projectID uuid.UUID, in BudgetItemInput) (*domain.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := domain.BudgetItem{
		ID:                   uuid.New(),
		CumulativeWork:       in.CumulativeWork,
		CumulativePercentage: in.CumulativePercentage,
		Amount:               in.Amount,
	}
	return s.store.AddBudgetItem(ctx, adminID, projectID, item)
}

func (s *Service) UpdateBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID, patch domain.BudgetItemPatch) (*domain.Project, error) {
	if patch.CumulativePercentage != nil && (*patch.CumulativePercentage < 0 || *patch.CumulativePercentage > 100) {
		return nil, domain.Invalid("cumulativePercentage must be between 0 and 100")
	}
	if patch.Amount != nil && *patch.Amount < 0 {
		return nil, domain.Invalid("amount must be a non-negative number")
	}
	return s.store.UpdateBudgetItem(ctx, adminID, projectID, itemID, patch)
}

func (s *Service) DeleteBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID) (*domain.Project, error) {
	return s.store.DeleteBudgetItem(ctx, adminID, projectID, itemID)
}
