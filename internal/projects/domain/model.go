package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

// BillingStatus tags a billing entry as money in, money out, or not yet settled.
type BillingStatus string

const (
	BillingCredited BillingStatus = "credited"
	BillingDebited  BillingStatus = "debited"
	BillingPending  BillingStatus = "pending"
)

func (s BillingStatus) Valid() bool {
	return s == BillingCredited || s == BillingDebited || s == BillingPending
}

// Project is the aggregate root: one client engagement with its embedded
// budget document and billing ledger. Budget and billing live on the
// project row itself so a single row update covers the whole aggregate.
type Project struct {
	ID          uuid.UUID      `json:"id"`
	AdminID     uuid.UUID      `json:"adminId"`
	ClientName  string         `json:"clientName"`
	ProjectName string         `json:"projectName"`
	ClientEmail string         `json:"clientEmail"`
	ClientPhone string         `json:"clientPhone"`
	StartDate   time.Time      `json:"startDate"`
	Status      ProjectStatus  `json:"status"`
	Budget      *Budget        `json:"budget,omitempty"`
	Billing     []BillingEntry `json:"billing"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Budget is the embedded budget document. TotalAmount must track
// sum(Items[].Amount) across every item-level mutation; the wholesale
// set-budget path trusts the caller's total instead.
type Budget struct {
	AreaInSqFeet float64     `json:"areaInSqFeet"`
	WorkDetails  WorkDetails `json:"workDetails"`
}

type WorkDetails struct {
	TotalAmount float64      `json:"totalAmount"`
	Items       []BudgetItem `json:"items"`
}

type BudgetItem struct {
	ID                   uuid.UUID `json:"id"`
	CumulativeWork       string    `json:"cumulativeWork"`
	CumulativePercentage float64   `json:"cumulativePercentage"`
	Amount               float64   `json:"amount"`
}

type BillingEntry struct {
	ID              uuid.UUID     `json:"id"`
	Date            time.Time     `json:"date"`
	BillingAmount   float64       `json:"billingAmount"`
	Recipient       string        `json:"recipient"`
	Status          BillingStatus `json:"status"`
	AdditionalNotes string        `json:"additionalNotes,omitempty"`
}

// ProjectPatch carries a sparse project update: nil means "leave as is".
type ProjectPatch struct {
	ClientName  *string
	ProjectName *string
	ClientEmail *string
	ClientPhone *string
	StartDate   *time.Time
	Status      *ProjectStatus
}

func (p ProjectPatch) Empty() bool {
	return p.ClientName == nil && p.ProjectName == nil && p.ClientEmail == nil &&
		p.ClientPhone == nil && p.StartDate == nil && p.Status == nil
}

// BudgetPatch is the wholesale "set budget" payload. Items, when present,
// replaces the stored list verbatim; TotalAmount is taken as supplied and
// never re-derived from Items in this path.
type BudgetPatch struct {
	AreaInSqFeet *float64
	TotalAmount  *float64
	Items        *[]BudgetItem
}

// BudgetItemPatch is a sparse item update. The running total is adjusted
// only when Amount is present.
type BudgetItemPatch struct {
	CumulativeWork       *string
	CumulativePercentage *float64
	Amount               *float64
}

// BillingPatch is a sparse billing-entry update.
type BillingPatch struct {
	Date            *time.Time
	BillingAmount   *float64
	Recipient       *string
	Status          *BillingStatus
	AdditionalNotes *string
}
