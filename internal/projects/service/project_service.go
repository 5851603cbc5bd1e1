package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/projects/domain"
)

// Store is the persistence surface the service needs. *repository.Repo
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, adminID, projectID uuid.UUID) (*domain.Project, error)
	ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]domain.Project, error)
	Update(ctx context.Context, adminID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, adminID, projectID uuid.UUID) error

	SetBudget(ctx context.Context, adminID, projectID uuid.UUID, patch domain.BudgetPatch) (*domain.Project, error)
	AddBudgetItem(ctx context.Context, adminID, projectID uuid.UUID, item domain.BudgetItem) (*domain.Project, error)
	UpdateBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID, patch domain.BudgetItemPatch) (*domain.Project, error)
	DeleteBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID) (*domain.Project, error)

	AddBillingEntry(ctx context.Context, adminID, projectID uuid.UUID, entry domain.BillingEntry) (*domain.Project, error)
	UpdateBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID, patch domain.BillingPatch) (*domain.Project, error)
	DeleteBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID) (*domain.Project, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

var (
	emailRe = regexp.MustCompile(`^.+@.+\..+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// CreateProjectInput carries the required client descriptors for a new
// project. StartDate defaults to now when zero.
type CreateProjectInput struct {
	ClientName  string
	ProjectName string
	ClientEmail string
	ClientPhone string
	StartDate   time.Time
}

func (in *CreateProjectInput) validate() error {
	if strings.TrimSpace(in.ClientName) == "" {
		return domain.Invalid("clientName is required")
	}
	if strings.TrimSpace(in.ProjectName) == "" {
		return domain.Invalid("projectName is required")
	}
	if !emailRe.MatchString(in.ClientEmail) {
		return domain.Invalid("Please provide a valid email address")
	}
	if !phoneRe.MatchString(in.ClientPhone) {
		return domain.Invalid("Please provide a valid 10-digit phone number")
	}
	return nil
}

func (s *Service) CreateProject(ctx context.Context, adminID uuid.UUID, in CreateProjectInput) (*domain.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	start := in.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	p := &domain.Project{
		ID:          uuid.New(),
		AdminID:     adminID,
		ClientName:  strings.TrimSpace(in.ClientName),
		ProjectName: strings.TrimSpace(in.ProjectName),
		ClientEmail: strings.ToLower(strings.TrimSpace(in.ClientEmail)),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		StartDate:   start,
		Status:      domain.StatusActive,
	}
	return s.store.Create(ctx, p)
}

func (s *Service) GetProject(ctx context.Context, adminID, projectID uuid.UUID) (*domain.Project, error) {
	return s.store.GetByID(ctx, adminID, projectID)
}

func (s *Service) ListProjects(ctx context.Context, adminID uuid.UUID) ([]domain.Project, error) {
	return s.store.ListByAdmin(ctx, adminID)
}

func (s *Service) UpdateProject(ctx context.Context, adminID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Invalid("Invalid status value")
	}
	if patch.ClientEmail != nil && !emailRe.MatchString(*patch.ClientEmail) {
		return nil, domain.Invalid("Please provide a valid email address")
	}
	if patch.ClientPhone != nil && !phoneRe.MatchString(*patch.ClientPhone) {
		return nil, domain.Invalid("Please provide a valid 10-digit phone number")
	}
	if patch.Empty() {
		return s.store.GetByID(ctx, adminID, projectID)
	}
	return s.store.Update(ctx, adminID, projectID, patch)
}

func (s *Service) DeleteProject(ctx context.Context, adminID, projectID uuid.UUID) error {
	return s.store.Delete(ctx, adminID, projectID)
}
