package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construware/construct-backend/internal/auth"
	"github.com/construware/construct-backend/internal/projects/domain"
	projservice "github.com/construware/construct-backend/internal/projects/service"
)

// stubService embeds the interface so each test overrides only the
// methods it exercises; anything else panics loudly.
type stubService struct {
	ProjectService

	createProject     func(ctx context.Context, adminID uuid.UUID, in projservice.CreateProjectInput) (*domain.Project, error)
	getProject        func(ctx context.Context, adminID, projectID uuid.UUID) (*domain.Project, error)
	listProjects      func(ctx context.Context, adminID uuid.UUID) ([]domain.Project, error)
	deleteProject     func(ctx context.Context, adminID, projectID uuid.UUID) error
	addBudgetItem     func(ctx context.Context, adminID, projectID uuid.UUID, in projservice.BudgetItemInput) (*domain.Project, error)
	addBillingEntry   func(ctx context.Context, adminID, projectID uuid.UUID, in projservice.BillingEntryInput) (*domain.BillingEntry, error)
	getBillingSummary func(ctx context.Context, adminID, projectID uuid.UUID) (*domain.BillingSummary, error)
	deleteBilling     func(ctx context.Context, adminID, projectID, entryID uuid.UUID) error
}

func (s *stubService) CreateProject(ctx context.Context, adminID uuid.UUID, in projservice.CreateProjectInput) (*domain.Project, error) {
	return s.createProject(ctx, adminID, in)
}

func (s *stubService) GetProject(ctx context.Context, adminID, projectID uuid.UUID) (*domain.Project, error) {
	return s.getProject(ctx, adminID, projectID)
}

func (s *stubService) ListProjects(ctx context.Context, adminID uuid.UUID) ([]domain.Project, error) {
	return s.listProjects(ctx, adminID)
}

func (s *stubService) DeleteProject(ctx context.Context, adminID, projectID uuid.UUID) error {
	return s.deleteProject(ctx, adminID, projectID)
}

func (s *stubService) AddBudgetItem(ctx context.Context, adminID, projectID uuid.UUID, in projservice.BudgetItemInput) (*domain.Project, error) {
	return s.addBudgetItem(ctx, adminID, projectID, in)
}

func (s *stubService) AddBillingEntry(ctx context.Context, adminID, projectID uuid.UUID, in projservice.BillingEntryInput) (*domain.BillingEntry, error) {
	return s.addBillingEntry(ctx, adminID, projectID, in)
}

func (s *stubService) GetBillingSummary(ctx context.Context, adminID, projectID uuid.UUID) (*domain.BillingSummary, error) {
	return s.getBillingSummary(ctx, adminID, projectID)
}

func (s *stubService) DeleteBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID) error {
	return s.deleteBilling(ctx, adminID, projectID, entryID)
}

func setupRouter(svc ProjectService, adminID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1/projects")
	group.Use(func(c *gin.Context) {
		c.Set(auth.CtxAdminID, adminID)
		c.Next()
	})
	Register(group, svc)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateProjectHandler(t *testing.T) {
	adminID := uuid.New()
	svc := &stubService{
		createProject: func(_ context.Context, gotAdmin uuid.UUID, in projservice.CreateProjectInput) (*domain.Project, error) {
			assert.Equal(t, adminID, gotAdmin)
			assert.Equal(t, "Riverside Villa", in.ProjectName)
			return &domain.Project{ID: uuid.New(), AdminID: gotAdmin, ProjectName: in.ProjectName, Status: domain.StatusActive}, nil
		},
	}
	r := setupRouter(svc, adminID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
		"clientName":  "Jordan Reyes",
		"projectName": "Riverside Villa",
		"clientEmail": "jordan@example.com",
		"clientPhone": "0771234567",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Project created successfully", body["message"])
	assert.NotNil(t, body["project"])
}

func TestCreateProjectHandler_ValidationError(t *testing.T) {
	svc := &stubService{
		createProject: func(context.Context, uuid.UUID, projservice.CreateProjectInput) (*domain.Project, error) {
			return nil, domain.Invalid("Please provide a valid email address")
		},
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{"clientEmail": "nope"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please provide a valid email address", body["message"])
}

func TestGetProjectHandler_NotFound(t *testing.T) {
	svc := &stubService{
		getProject: func(context.Context, uuid.UUID, uuid.UUID) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
}

func TestGetProjectHandler_MalformedID(t *testing.T) {
	r := setupRouter(&stubService{}, uuid.New())

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/not-a-uuid", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjectsHandler(t *testing.T) {
	svc := &stubService{
		listProjects: func(context.Context, uuid.UUID) ([]domain.Project, error) {
			return []domain.Project{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["projects"], 2)
}

func TestDeleteProjectHandler(t *testing.T) {
	svc := &stubService{
		deleteProject: func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Project deleted successfully", decode(t, w)["message"])
}

func TestAddBudgetItemHandler(t *testing.T) {
	svc := &stubService{
		addBudgetItem: func(_ context.Context, _, _ uuid.UUID, in projservice.BudgetItemInput) (*domain.Project, error) {
			assert.Equal(t, "Foundation", in.CumulativeWork)
			assert.Equal(t, 100.0, in.Amount)
			b := &domain.Budget{}
			b.AddItem(domain.BudgetItem{ID: uuid.New(), CumulativeWork: in.CumulativeWork, Amount: in.Amount})
			return &domain.Project{ID: uuid.New(), Budget: b}, nil
		},
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/"+uuid.NewString()+"/budget/items", gin.H{
		"cumulativeWork":       "Foundation",
		"cumulativePercentage": 20,
		"amount":               100,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
}

func TestAddBillingHandler(t *testing.T) {
	entryID := uuid.New()
	svc := &stubService{
		addBillingEntry: func(_ context.Context, _, _ uuid.UUID, in projservice.BillingEntryInput) (*domain.BillingEntry, error) {
			assert.Equal(t, 500.0, in.BillingAmount)
			return &domain.BillingEntry{ID: entryID, BillingAmount: in.BillingAmount, Status: domain.BillingPending}, nil
		},
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/"+uuid.NewString()+"/billing", gin.H{
		"billingAmount": 500,
		"recipient":     "Acme Cement",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	entry, ok := body["billingEntry"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, entryID.String(), entry["id"])
	assert.Equal(t, "pending", entry["status"])
}

func TestDeleteBillingHandler_MissingEntryIsSuccess(t *testing.T) {
	svc := &stubService{
		deleteBilling: func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) error { return nil },
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodDelete,
		"/api/v1/projects/"+uuid.NewString()+"/billing/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Billing entry deleted successfully", decode(t, w)["message"])
}

func TestBillingSummaryHandler(t *testing.T) {
	svc := &stubService{
		getBillingSummary: func(context.Context, uuid.UUID, uuid.UUID) (*domain.BillingSummary, error) {
			s := domain.SummarizeBilling("Riverside Villa", []domain.BillingEntry{
				{ID: uuid.New(), BillingAmount: 500, Status: domain.BillingCredited},
				{ID: uuid.New(), BillingAmount: 200, Status: domain.BillingPending},
			})
			return &s, nil
		},
	}
	r := setupRouter(svc, uuid.New())

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/"+uuid.NewString()+"/billing/summary", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 700.0, summary["totalBillingAmount"])
	breakdown, ok := summary["breakdown"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, breakdown, "debited")
}
